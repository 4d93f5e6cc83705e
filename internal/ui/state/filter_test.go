package state

import (
	"testing"

	"github.com/atomicstack/flyout/internal/links"
)

func titles(list []links.Link) []string {
	out := make([]string, len(list))
	for i, l := range list {
		out[i] = l.Title
	}
	return out
}

func TestSetFilterRestoresCursorWhenCleared(t *testing.T) {
	l := newTestLevel("one", "two", "three")
	l.Cursor = 2
	l.SetFilter("two", 3)
	if len(l.Items) != 1 || l.Items[0].ID != "two" || l.Cursor != 0 {
		t.Fatalf("expected only two selected, got %v cursor %d", titles(l.Items), l.Cursor)
	}
	l.SetFilter("tw", 2)
	if l.LastCursor != 2 {
		t.Fatalf("expected saved cursor kept while filtering, got %d", l.LastCursor)
	}
	l.SetFilter("", 0)
	if l.Cursor != 2 || l.LastCursor != -1 {
		t.Fatalf("expected cursor 2 restored, got %d (last %d)", l.Cursor, l.LastCursor)
	}
}

func TestSetFilterClampsCaret(t *testing.T) {
	l := newTestLevel("a")
	l.SetFilter("abc", 10)
	if l.FilterCursor != 3 {
		t.Fatalf("expected caret clamped to 3, got %d", l.FilterCursor)
	}
	l.SetFilter("abc", -4)
	if l.FilterCursor != 0 {
		t.Fatalf("expected caret clamped to 0, got %d", l.FilterCursor)
	}
}

func TestFilterItemsKeepsOrder(t *testing.T) {
	items := []links.Link{
		{ID: "1", Title: "Release notes"},
		{ID: "2", Title: "Blog"},
		{ID: "3", Title: "Reference"},
	}
	got := titles(FilterItems(items, "re"))
	if len(got) != 2 || got[0] != "Release notes" || got[1] != "Reference" {
		t.Fatalf("expected fuzzy matches in tree order, got %v", got)
	}
	if len(FilterItems(items, "   ")) != 3 {
		t.Fatalf("expected blank query to keep every link")
	}
	if len(FilterItems(items, "zzz")) != 0 {
		t.Fatalf("expected no matches")
	}
}

func TestFilterItemsFallsBackToURL(t *testing.T) {
	items := []links.Link{
		{ID: "1", Title: "Home", URL: "/index"},
		{ID: "2", Title: "Guide", URL: "/docs/guide"},
	}
	got := FilterItems(items, "/docs")
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected url match, got %v", titles(got))
	}
}

func TestFilterItemsDoesNotAliasInput(t *testing.T) {
	items := []links.Link{{ID: "1", Title: "Alpha"}, {ID: "2", Title: "Beta"}}
	out := FilterItems(items, "")
	out[0].Title = "changed"
	if items[0].Title != "Alpha" {
		t.Fatalf("expected input untouched")
	}
}

func TestBestMatchIndexTiers(t *testing.T) {
	items := []links.Link{
		{ID: "one", Title: "First"},
		{ID: "two", Title: "Second"},
		{ID: "three", Title: "Third"},
	}
	cases := map[string]int{
		"Second": 1,
		"two":    1,
		"th":     2,
		"con":    1,
		"zzz":    0,
	}
	for query, want := range cases {
		if got := BestMatchIndex(items, query); got != want {
			t.Fatalf("%q: expected %d, got %d", query, want, got)
		}
	}
	if got := BestMatchIndex(nil, "x"); got != -1 {
		t.Fatalf("expected -1 for no items, got %d", got)
	}
}

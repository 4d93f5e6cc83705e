package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/flyout/internal/backend"
	"github.com/atomicstack/flyout/internal/links"
	"github.com/atomicstack/flyout/internal/state"
)

func TestHandleLinksEventUpdatesStore(t *testing.T) {
	store := state.NewLinkStore([]links.Link{{ID: "old"}}, "links.yaml")
	d := New(store)
	res := d.Handle(backend.Event{Kind: backend.KindLinks, Data: []links.Link{{ID: "new"}}})
	if !res.LinksUpdated {
		t.Fatalf("expected links update")
	}
	if got := store.Links(); len(got) != 1 || got[0].ID != "new" {
		t.Fatalf("unexpected store contents %#v", got)
	}
}

func TestHandleErrorKeepsPreviousTree(t *testing.T) {
	store := state.NewLinkStore([]links.Link{{ID: "old"}}, "links.yaml")
	d := New(store)
	res := d.Handle(backend.Event{Kind: backend.KindLinks, Err: errors.New("bad yaml")})
	if res.LinksUpdated || res.Err == nil {
		t.Fatalf("expected error result, got %#v", res)
	}
	if got := store.Links(); got[0].ID != "old" {
		t.Fatalf("expected previous tree to survive, got %#v", got)
	}
	if store.LastError() == nil {
		t.Fatalf("expected error recorded on store")
	}
}

func TestHandleEmptyTreeIgnored(t *testing.T) {
	store := state.NewLinkStore([]links.Link{{ID: "old"}}, "links.yaml")
	res := New(store).Handle(backend.Event{Kind: backend.KindLinks})
	if res.LinksUpdated {
		t.Fatalf("expected empty reload to be ignored")
	}
}

package state

import (
	"slices"
	"strings"

	"github.com/atomicstack/flyout/internal/links"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter replaces the query and places the caret at cursor. The cursor
// position from before filtering is restored once the query is cleared.
func (l *Level) SetFilter(query string, cursor int) {
	wasFiltering := strings.TrimSpace(l.Filter) != ""
	trimmed := strings.TrimSpace(query)
	l.Filter = query
	l.FilterCursor = clamp(cursor, 0, len([]rune(query)))

	switch {
	case trimmed != "":
		if !wasFiltering {
			l.LastCursor = l.Cursor
		}
		l.applyFilter()
		l.Cursor = max(BestMatchIndex(l.Items, trimmed), 0)
	case wasFiltering:
		restore := l.LastCursor
		l.LastCursor = -1
		l.applyFilter()
		switch {
		case restore >= 0 && restore < len(l.Items):
			l.Cursor = restore
		case len(l.Items) > 0:
			l.Cursor = len(l.Items) - 1
		}
	default:
		l.applyFilter()
	}
}

func (l *Level) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	if l.ViewportOffset >= len(l.Items) {
		l.ViewportOffset = 0
	}
}

// FilterItems returns the links whose title fuzzily matches query, keeping
// their original order. When nothing matches fuzzily, a plain substring
// match on the id or url is tried.
func FilterItems(items []links.Link, query string) []links.Link {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return slices.Clone(items)
	}
	matched := make(map[int]bool)
	for _, rank := range fuzzy.RankFindNormalizedFold(trimmed, labels(items)) {
		matched[rank.OriginalIndex] = true
	}
	if len(matched) == 0 {
		lower := strings.ToLower(trimmed)
		for i, item := range items {
			if strings.Contains(strings.ToLower(item.ID), lower) || strings.Contains(strings.ToLower(item.URL), lower) {
				matched[i] = true
			}
		}
	}
	out := make([]links.Link, 0, len(matched))
	for i, item := range items {
		if matched[i] {
			out = append(out, item)
		}
	}
	return out
}

// BestMatchIndex picks the link the cursor should land on for query: an
// exact title or id match first, then a title prefix, then a substring,
// then the closest fuzzy match.
func BestMatchIndex(items []links.Link, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	tiers := []func(links.Link) bool{
		func(l links.Link) bool { return strings.EqualFold(l.Label(), trimmed) || strings.EqualFold(l.ID, trimmed) },
		func(l links.Link) bool { return strings.HasPrefix(strings.ToLower(l.Label()), lower) },
		func(l links.Link) bool { return strings.Contains(strings.ToLower(l.Label()), lower) },
		func(l links.Link) bool { return strings.Contains(strings.ToLower(l.ID), lower) },
	}
	for _, match := range tiers {
		for i, item := range items {
			if match(item) {
				return i
			}
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels(items))
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}

func labels(items []links.Link) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label()
	}
	return out
}

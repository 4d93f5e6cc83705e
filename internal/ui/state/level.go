package state

import (
	"slices"

	"github.com/atomicstack/flyout/internal/links"
)

// Level is the view state of one pane. Full holds every link of the pane and
// Items the subset matching Filter, in tree order.
type Level struct {
	ID    string
	Title string
	Items []links.Link
	Full  []links.Link

	Filter       string
	FilterCursor int

	// Cursor indexes Items, or is -1 when Items is empty. LastCursor keeps
	// the pre-filter cursor so clearing the filter can restore it.
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel returns a level over items with the cursor on the first link.
func NewLevel(id, title string, items []links.Link) *Level {
	l := &Level{ID: id, Title: title, Cursor: -1, LastCursor: -1}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the position of id among the visible items, or -1.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(l.Items, func(item links.Link) bool { return item.ID == id })
}

// Current returns the link under the cursor.
func (l *Level) Current() (links.Link, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return links.Link{}, false
	}
	return l.Items[l.Cursor], true
}

// Focus moves the cursor onto the link with id. A filter hiding that link is
// cleared first.
func (l *Level) Focus(id string) bool {
	idx := l.IndexOf(id)
	if idx < 0 && l.Filter != "" {
		l.SetFilter("", 0)
		idx = l.IndexOf(id)
	}
	if idx < 0 {
		return false
	}
	l.Cursor = idx
	return true
}

// UpdateItems swaps in a new link list. The cursor follows the link it was
// on when that link survives, and the scroll offset is kept while it still
// points inside the list.
func (l *Level) UpdateItems(items []links.Link) {
	offset := max(l.ViewportOffset, 0)
	cur, hadCurrent := l.Current()

	l.Full = slices.Clone(items)
	l.applyFilter()

	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if hadCurrent {
		if idx := l.IndexOf(cur.ID); idx >= 0 {
			l.Cursor = idx
		}
	}
	l.Cursor = max(l.Cursor, 0)
	if offset >= len(l.Items) {
		offset = 0
	}
	l.ViewportOffset = offset
}

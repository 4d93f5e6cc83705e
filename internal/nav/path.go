// Package nav tracks which link is expanded at each depth of a flyout menu
// and lays out the cascade of panes that follows from it.
package nav

import "github.com/atomicstack/flyout/internal/links"

// Entry records the link expanded at a given depth.
type Entry struct {
	Level int
	Link  links.Link
}

// Path is the chain of expanded links from the root list downwards. Entry i
// sits at level i and its link is one of the sublinks of entry i-1.
type Path []Entry

// Toggle returns the path that results from toggling link at level. The
// receiver is never modified. Toggling the link that is already the entry at
// level closes it together with everything deeper; any other link replaces
// the entry at level and discards deeper entries.
func (p Path) Toggle(link links.Link, level int) Path {
	if level < 0 {
		level = 0
	}
	cut := level
	if cut > len(p) {
		cut = len(p)
	}
	prefix := make(Path, cut, cut+1)
	copy(prefix, p[:cut])

	if level < len(p) && p[level].Link.ID == link.ID {
		return prefix
	}
	return append(prefix, Entry{Level: level, Link: link})
}

// IsActive reports whether a link with id is part of the path.
func (p Path) IsActive(id string) bool {
	for _, e := range p {
		if e.Link.ID == id {
			return true
		}
	}
	return false
}

// ActiveAt returns the entry at level when one exists.
func (p Path) ActiveAt(level int) (Entry, bool) {
	if level < 0 || level >= len(p) {
		return Entry{}, false
	}
	return p[level], true
}

// Deepest returns the last entry of the path.
func (p Path) Deepest() (Entry, bool) {
	if len(p) == 0 {
		return Entry{}, false
	}
	return p[len(p)-1], true
}

// IDs lists the link ids in path order.
func (p Path) IDs() []string {
	ids := make([]string, len(p))
	for i, e := range p {
		ids[i] = e.Link.ID
	}
	return ids
}

// Titles lists the link titles in path order.
func (p Path) Titles() []string {
	titles := make([]string, len(p))
	for i, e := range p {
		titles[i] = e.Link.Title
	}
	return titles
}

// Equal compares paths by level and link id.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i].Level != other[i].Level || p[i].Link.ID != other[i].Link.ID {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	dup := make(Path, len(p))
	copy(dup, p)
	return dup
}

package links

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyID     = errors.New("link id is empty")
	ErrDuplicateID = errors.New("duplicate link id")
)

// Link is a navigable entry. Sublinks form the next level of the tree.
type Link struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	URL      string `yaml:"url"`
	Sublinks []Link `yaml:"sublinks,omitempty"`
}

// HasSublinks reports whether the link opens a deeper pane. An empty list
// counts as none.
func (l Link) HasSublinks() bool {
	return len(l.Sublinks) > 0
}

// Label returns the title, falling back to the URL and then the ID.
func (l Link) Label() string {
	if t := strings.TrimSpace(l.Title); t != "" {
		return t
	}
	if u := strings.TrimSpace(l.URL); u != "" {
		return u
	}
	return l.ID
}

// Validate checks that every link in the tree carries a unique, non-empty ID.
func Validate(list []Link) error {
	seen := make(map[string]struct{})
	var err error
	Walk(list, func(l Link, level int) bool {
		if strings.TrimSpace(l.ID) == "" {
			err = fmt.Errorf("%w (title %q, level %d)", ErrEmptyID, l.Title, level)
			return false
		}
		if _, ok := seen[l.ID]; ok {
			err = fmt.Errorf("%w: %s", ErrDuplicateID, l.ID)
			return false
		}
		seen[l.ID] = struct{}{}
		return true
	})
	return err
}

// Walk visits links depth-first in display order. Level 0 is the root list.
// Returning false from fn stops the walk.
func Walk(list []Link, fn func(Link, int) bool) {
	walk(list, 0, fn)
}

func walk(list []Link, level int, fn func(Link, int) bool) bool {
	for _, l := range list {
		if !fn(l, level) {
			return false
		}
		if !walk(l.Sublinks, level+1, fn) {
			return false
		}
	}
	return true
}

// MaxDepth returns the number of levels in the tree; a flat list has depth 1.
func MaxDepth(list []Link) int {
	if len(list) == 0 {
		return 0
	}
	depth := 1
	for _, l := range list {
		if d := MaxDepth(l.Sublinks) + 1; d > depth {
			depth = d
		}
	}
	return depth
}

// Find returns the link with the given id together with its ancestors,
// ordered from the root list downwards.
func Find(list []Link, id string) (Link, []Link, bool) {
	for _, l := range list {
		if l.ID == id {
			return l, nil, true
		}
		if found, ancestors, ok := Find(l.Sublinks, id); ok {
			return found, append([]Link{l}, ancestors...), true
		}
	}
	return Link{}, nil, false
}

// Contains reports whether a link with the given id is a direct member of list.
func Contains(list []Link, id string) bool {
	for _, l := range list {
		if l.ID == id {
			return true
		}
	}
	return false
}

// Count returns the total number of links in the tree.
func Count(list []Link) int {
	n := 0
	Walk(list, func(Link, int) bool {
		n++
		return true
	})
	return n
}

// Row is a flattened view of one link for listing.
type Row struct {
	Level    int
	ID       string
	Title    string
	URL      string
	Children int
}

// Flatten lists every link in display order.
func Flatten(list []Link) []Row {
	rows := make([]Row, 0, Count(list))
	Walk(list, func(l Link, level int) bool {
		rows = append(rows, Row{Level: level, ID: l.ID, Title: l.Title, URL: l.URL, Children: len(l.Sublinks)})
		return true
	})
	return rows
}

package nav

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/atomicstack/flyout/internal/links"
)

var (
	ErrInvalidLevel  = errors.New("level outside the active path")
	ErrNotDescendant = errors.New("link is not a child of the active link above it")
)

// Listener receives the path after every transition.
type Listener func(Path)

// State owns the active path of one navigation widget. Transitions replace
// the path wholesale and notify listeners synchronously.
type State struct {
	mu        sync.Mutex
	root      []links.Link
	path      Path
	listeners map[int]Listener
	nextID    int
	trusting  bool
}

// Option configures a State.
type Option func(*State)

// WithoutAncestryCheck makes Toggle trust its caller the way a rendered
// toggle button can be trusted.
func WithoutAncestryCheck() Option {
	return func(s *State) { s.trusting = true }
}

// NewState creates an empty path over the given root list.
func NewState(root []links.Link, opts ...Option) *State {
	s := &State{root: root, path: Path{}, listeners: make(map[int]Listener)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the root link list.
func (s *State) Root() []links.Link {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.root
}

// Path returns a copy of the active path.
func (s *State) Path() Path {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path.Clone()
}

// IsActive reports whether id is expanded at any level.
func (s *State) IsActive(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path.IsActive(id)
}

// Toggle opens or closes link at level.
func (s *State) Toggle(link links.Link, level int) error {
	s.mu.Lock()
	if !s.trusting {
		if err := s.checkAncestry(link, level); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	next := s.path.Toggle(link, level)
	s.path = next
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	notify(listeners, next)
	return nil
}

// CloseAll empties the path.
func (s *State) CloseAll() {
	s.mu.Lock()
	if len(s.path) == 0 {
		s.mu.Unlock()
		return
	}
	s.path = Path{}
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	notify(listeners, Path{})
}

// Reset swaps in a new root list. The active path is kept only as far as it
// still resolves against the new tree, matched by id.
func (s *State) Reset(root []links.Link) {
	s.mu.Lock()
	s.root = root
	kept := make(Path, 0, len(s.path))
	candidates := root
	for _, e := range s.path {
		found := false
		for _, l := range candidates {
			if l.ID == e.Link.ID {
				kept = append(kept, Entry{Level: e.Level, Link: l})
				candidates = l.Sublinks
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	changed := !kept.Equal(s.path)
	s.path = kept
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	if changed {
		notify(listeners, kept.Clone())
	}
}

// Subscribe registers fn for transitions. The returned function removes it.
func (s *State) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *State) checkAncestry(link links.Link, level int) error {
	if level < 0 || level > len(s.path) {
		return fmt.Errorf("%w: level %d, path depth %d", ErrInvalidLevel, level, len(s.path))
	}
	siblings := s.root
	if level > 0 {
		siblings = s.path[level-1].Link.Sublinks
	}
	if !links.Contains(siblings, link.ID) {
		return fmt.Errorf("%w: %s at level %d", ErrNotDescendant, link.ID, level)
	}
	return nil
}

func (s *State) snapshotListeners() []Listener {
	if len(s.listeners) == 0 {
		return nil
	}
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]Listener, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.listeners[id])
	}
	return out
}

func notify(listeners []Listener, p Path) {
	for _, fn := range listeners {
		fn(p.Clone())
	}
}

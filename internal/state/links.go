package state

import (
	"sync"

	"github.com/atomicstack/flyout/internal/links"
)

// LinkStore holds the current link tree and where it was loaded from.
type LinkStore interface {
	Links() []links.Link
	SetLinks([]links.Link)
	Source() string
	SetSource(string)
	Version() int
	LastError() error
	SetError(error)
}

type linkStore struct {
	mu      sync.RWMutex
	links   []links.Link
	source  string
	version int
	err     error
}

func NewLinkStore(initial []links.Link, source string) LinkStore {
	return &linkStore{links: initial, source: source}
}

func (s *linkStore) Links() []links.Link {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneLinks(s.links)
}

// SetLinks replaces the tree, bumps the version and clears the last error.
func (s *linkStore) SetLinks(list []links.Link) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links = cloneLinks(list)
	s.version++
	s.err = nil
}

func (s *linkStore) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

func (s *linkStore) SetSource(source string) {
	s.mu.Lock()
	s.source = source
	s.mu.Unlock()
}

func (s *linkStore) Version() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *linkStore) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *linkStore) SetError(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func cloneLinks(list []links.Link) []links.Link {
	if len(list) == 0 {
		return nil
	}
	dup := make([]links.Link, len(list))
	copy(dup, list)
	return dup
}

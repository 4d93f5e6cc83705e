// Package viewport exposes the terminal size and scroll position as
// observable values, updated at a throttled rate.
package viewport

import (
	"sort"
	"sync"
	"time"
)

// UpdateInterval is the throttle window applied to resize and scroll input.
const UpdateInterval = 50 * time.Millisecond

type subscribers[T any] struct {
	mu   sync.Mutex
	fns  map[int]func(T)
	next int
}

func (s *subscribers[T]) add(fn func(T)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fns == nil {
		s.fns = make(map[int]func(T))
	}
	id := s.next
	s.next++
	s.fns[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.fns, id)
	}
}

func (s *subscribers[T]) publish(v T) {
	s.mu.Lock()
	ids := make([]int, 0, len(s.fns))
	for id := range s.fns {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(T), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.fns[id])
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(v)
	}
}

func (s *subscribers[T]) clear() {
	s.mu.Lock()
	s.fns = nil
	s.mu.Unlock()
}

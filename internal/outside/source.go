// Package outside detects pointer and keyboard interaction that happens
// outside a widget's root region and dismisses the widget in response.
package outside

import (
	"sort"
	"sync"
)

// Kind names a window-level event.
type Kind string

const (
	MouseDown Kind = "mousedown"
	MouseUp   Kind = "mouseup"
	KeyUp     Kind = "keyup"
)

// Key names used by the detector.
const (
	KeyEscape = "Escape"
	KeyTab    = "Tab"
)

// Target identifies what an event landed on. Roots decide containment.
type Target interface{}

// Event is a window-level event.
type Event struct {
	Kind   Kind
	Target Target
	Key    string
}

// Handler consumes events from a Source.
type Handler func(Event)

// Source fans window-level events out to registered handlers.
type Source struct {
	mu       sync.Mutex
	handlers map[Kind]map[int]Handler
	next     int
}

// NewSource returns an empty event source.
func NewSource() *Source {
	return &Source{handlers: make(map[Kind]map[int]Handler)}
}

// On registers fn for kind. The returned function removes the registration;
// calling it more than once is harmless.
func (s *Source) On(kind Kind, fn Handler) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handlers[kind] == nil {
		s.handlers[kind] = make(map[int]Handler)
	}
	id := s.next
	s.next++
	s.handlers[kind][id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.handlers[kind], id)
	}
}

// Dispatch delivers ev to every handler registered for its kind, in
// registration order.
func (s *Source) Dispatch(ev Event) {
	s.mu.Lock()
	registered := s.handlers[ev.Kind]
	ids := make([]int, 0, len(registered))
	for id := range registered {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]Handler, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, registered[id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// MouseDownAt dispatches a mousedown on target.
func (s *Source) MouseDownAt(target Target) {
	s.Dispatch(Event{Kind: MouseDown, Target: target})
}

// MouseUpAt dispatches a mouseup on target.
func (s *Source) MouseUpAt(target Target) {
	s.Dispatch(Event{Kind: MouseUp, Target: target})
}

// KeyUpOn dispatches a keyup for key with focus on target.
func (s *Source) KeyUpOn(key string, target Target) {
	s.Dispatch(Event{Kind: KeyUp, Key: key, Target: target})
}

// Listeners returns the number of registered handlers across all kinds.
func (s *Source) Listeners() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, m := range s.handlers {
		n += len(m)
	}
	return n
}

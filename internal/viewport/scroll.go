package viewport

import (
	"sync"

	"github.com/atomicstack/flyout/internal/timing"
)

// Direction is the vertical scroll direction.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// Position is the latest scroll offset and direction.
type Position struct {
	Direction Direction
	X         int
	Y         int
}

// ScrollPosition tracks scroll offsets and derives the direction of travel.
type ScrollPosition struct {
	mu       sync.Mutex
	current  Position
	pendingX int
	pendingY int
	last     int
	seeded   bool
	closed   bool

	throttle *timing.Throttled[struct{}]
	subs     subscribers[Position]
}

// NewScrollPosition starts at the given offsets, direction Up.
func NewScrollPosition(x, y int) *ScrollPosition {
	return NewScrollPositionWithClock(timing.SystemClock, x, y)
}

// NewScrollPositionWithClock is NewScrollPosition with an explicit clock.
func NewScrollPositionWithClock(clock timing.Clock, x, y int) *ScrollPosition {
	s := &ScrollPosition{current: Position{Direction: Up, X: x, Y: y}, pendingX: x, pendingY: y}
	s.throttle = timing.ThrottleWithOptions(clock, func() struct{} {
		s.apply()
		return struct{}{}
	}, UpdateInterval, timing.DefaultThrottleOptions)
	return s
}

// Position returns the latest published position.
func (s *ScrollPosition) Position() Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Scroll records new offsets. Publication is throttled.
func (s *ScrollPosition) Scroll(x, y int) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.pendingX, s.pendingY = x, y
	s.mu.Unlock()
	s.throttle.Call()
}

// Subscribe registers fn for position changes.
func (s *ScrollPosition) Subscribe(fn func(Position)) func() {
	return s.subs.add(fn)
}

// Close stops updates and drops subscribers.
func (s *ScrollPosition) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.throttle.Cancel()
	s.subs.clear()
}

func (s *ScrollPosition) apply() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	x, y := s.pendingX, s.pendingY
	// negative offsets come from overscroll and are not updates
	if y < 0 {
		s.mu.Unlock()
		return
	}
	// the first observation only records where scrolling starts from
	if !s.seeded {
		s.seeded = true
		s.last = y
		s.mu.Unlock()
		return
	}
	if s.last == y {
		s.mu.Unlock()
		return
	}
	dir := Up
	if s.last < y {
		dir = Down
	}
	s.last = y
	s.current = Position{Direction: dir, X: x, Y: y}
	pos := s.current
	s.mu.Unlock()
	s.subs.publish(pos)
}

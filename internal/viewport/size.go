package viewport

import (
	"sync"

	"github.com/atomicstack/flyout/internal/timing"
)

// Size is a terminal size in cells.
type Size struct {
	Width  int
	Height int
}

// WindowSize tracks the latest terminal size.
type WindowSize struct {
	mu      sync.Mutex
	current Size
	pending Size
	closed  bool

	throttle *timing.Throttled[struct{}]
	subs     subscribers[Size]
}

// NewWindowSize seeds the observer with the initial size.
func NewWindowSize(initial Size) *WindowSize {
	return NewWindowSizeWithClock(timing.SystemClock, initial)
}

// NewWindowSizeWithClock is NewWindowSize with an explicit clock.
func NewWindowSizeWithClock(clock timing.Clock, initial Size) *WindowSize {
	w := &WindowSize{current: initial, pending: initial}
	w.throttle = timing.ThrottleWithOptions(clock, func() struct{} {
		w.apply()
		return struct{}{}
	}, UpdateInterval, timing.DefaultThrottleOptions)
	return w
}

// Size returns the latest published size.
func (w *WindowSize) Size() Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Resize records a new size. Publication is throttled.
func (w *WindowSize) Resize(s Size) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.pending = s
	w.mu.Unlock()
	w.throttle.Call()
}

// Subscribe registers fn for size changes.
func (w *WindowSize) Subscribe(fn func(Size)) func() {
	return w.subs.add(fn)
}

// Close stops updates and drops subscribers.
func (w *WindowSize) Close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	w.throttle.Cancel()
	w.subs.clear()
}

func (w *WindowSize) apply() {
	w.mu.Lock()
	if w.closed || w.pending == w.current {
		w.mu.Unlock()
		return
	}
	w.current = w.pending
	s := w.current
	w.mu.Unlock()
	w.subs.publish(s)
}

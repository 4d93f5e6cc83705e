package timing

import (
	"sync"
	"time"
)

// ThrottleOptions control which edges of the window invoke the function.
type ThrottleOptions struct {
	Leading  bool
	Trailing bool
}

// DefaultThrottleOptions fire on both edges.
var DefaultThrottleOptions = ThrottleOptions{Leading: true, Trailing: true}

// Throttled runs a function at most once per wait window.
type Throttled[T any] struct {
	fn    func() T
	wait  time.Duration
	opts  ThrottleOptions
	clock Clock

	mu       sync.Mutex
	previous time.Time
	timer    Timer
	gen      uint64
	result   T
}

// Throttle wraps fn with DefaultThrottleOptions.
func Throttle[T any](fn func() T, wait time.Duration) *Throttled[T] {
	return ThrottleWithOptions(SystemClock, fn, wait, DefaultThrottleOptions)
}

// ThrottleWithOptions wraps fn with explicit clock and options.
func ThrottleWithOptions[T any](clock Clock, fn func() T, wait time.Duration, opts ThrottleOptions) *Throttled[T] {
	if clock == nil {
		clock = SystemClock
	}
	return &Throttled[T]{fn: fn, wait: wait, opts: opts, clock: clock}
}

// ThrottleFunc adapts a func() for Throttle.
func ThrottleFunc(fn func(), wait time.Duration) *Throttled[struct{}] {
	return Throttle(func() struct{} {
		fn()
		return struct{}{}
	}, wait)
}

// Call invokes fn if the window allows it, otherwise coalesces the call into
// one trailing invocation. The most recent result is returned; it is stale
// while a trailing call is pending.
func (t *Throttled[T]) Call() T {
	t.mu.Lock()
	now := t.clock.Now()
	if t.previous.IsZero() && !t.opts.Leading {
		t.previous = now
	}
	remaining := t.wait - now.Sub(t.previous)
	if t.previous.IsZero() || remaining <= 0 || remaining > t.wait {
		if t.timer != nil {
			t.timer.Stop()
			t.timer = nil
			t.gen++
		}
		t.previous = now
		t.mu.Unlock()
		return t.run()
	}
	if t.timer == nil && t.opts.Trailing {
		t.gen++
		gen := t.gen
		t.timer = t.clock.AfterFunc(remaining, func() { t.later(gen) })
	}
	result := t.result
	t.mu.Unlock()
	return result
}

func (t *Throttled[T]) later(gen uint64) {
	t.mu.Lock()
	if gen != t.gen {
		t.mu.Unlock()
		return
	}
	if t.opts.Leading {
		t.previous = t.clock.Now()
	} else {
		t.previous = time.Time{}
	}
	t.timer = nil
	t.mu.Unlock()
	t.run()
}

func (t *Throttled[T]) run() T {
	var result T
	if t.fn != nil {
		result = t.fn()
	}
	t.mu.Lock()
	t.result = result
	t.mu.Unlock()
	return result
}

// Pending reports whether a trailing call is scheduled.
func (t *Throttled[T]) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}

// Cancel drops a scheduled trailing call and resets the window.
func (t *Throttled[T]) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.gen++
	t.previous = time.Time{}
}

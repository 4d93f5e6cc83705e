package timing

import (
	"sync"
	"time"
)

// Debounced wraps a function so bursts of calls collapse into one.
type Debounced struct {
	fn        func()
	wait      time.Duration
	immediate bool
	clock     Clock

	mu    sync.Mutex
	timer Timer
	gen   uint64
}

// Debounce returns a wrapper around fn. Without immediate, each Call restarts
// the wait and fn runs once the calls have been quiet for wait. With
// immediate, the first call of an idle period runs fn synchronously and later
// calls inside the window are dropped while extending it.
func Debounce(fn func(), wait time.Duration, immediate bool) *Debounced {
	return DebounceWithClock(SystemClock, fn, wait, immediate)
}

// DebounceWithClock is Debounce with an explicit clock.
func DebounceWithClock(clock Clock, fn func(), wait time.Duration, immediate bool) *Debounced {
	if clock == nil {
		clock = SystemClock
	}
	return &Debounced{fn: fn, wait: wait, immediate: immediate, clock: clock}
}

// Call schedules (or, in immediate mode, may run) the wrapped function.
func (d *Debounced) Call() {
	d.mu.Lock()
	callNow := d.immediate && d.timer == nil
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.wait, func() { d.later(gen) })
	d.mu.Unlock()

	if callNow && d.fn != nil {
		d.fn()
	}
}

func (d *Debounced) later(gen uint64) {
	d.mu.Lock()
	// a stopped timer may still fire if it raced with Stop
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	run := !d.immediate
	d.mu.Unlock()

	if run && d.fn != nil {
		d.fn()
	}
}

// Pending reports whether a wait window is open.
func (d *Debounced) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Cancel drops any pending invocation.
func (d *Debounced) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

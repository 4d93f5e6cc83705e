package timing

import "time"

// Timer is the subset of *time.Timer used by the wrappers.
type Timer interface {
	Stop() bool
}

// Clock supplies the current time and delayed execution.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

type systemClock struct{}

// SystemClock is backed by the time package.
var SystemClock Clock = systemClock{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

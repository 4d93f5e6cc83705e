// Package events names every trace event the program emits. Each tracer
// groups the events of one subsystem.
package events

import "github.com/atomicstack/flyout/internal/logging"

type fields map[string]interface{}

func emit(event string, f fields) {
	logging.Trace(event, f)
}

func withError(f fields, err error) fields {
	f["error"] = err.Error()
	return f
}

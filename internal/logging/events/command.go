package events

import "time"

type CommandTracer struct{}

var Command = CommandTracer{}

// Queue, Skip, NoOp and Result share the request identity so one command's
// lifecycle can be followed by id.
func (CommandTracer) Queue(id, label string) {
	emit("command.queue", fields{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	emit("command.skip", fields{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	emit("command.noop", fields{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string, elapsed time.Duration) {
	emit("command.result", fields{"id": id, "label": label, "msg": msgType, "elapsed_ms": elapsed.Milliseconds()})
}

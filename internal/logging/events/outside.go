package events

type OutsideTracer struct{}

var Outside = OutsideTracer{}

func (OutsideTracer) Fire(reason string) {
	emit("outside.fire", fields{"reason": reason})
}

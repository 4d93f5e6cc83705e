package events

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Toggle(id string, level int, path []string) {
	emit("nav.toggle", fields{"id": id, "level": level, "path": path})
}

func (NavTracer) Close(reason string) {
	emit("nav.close", fields{"reason": reason})
}

func (NavTracer) Reject(id string, level int, err error) {
	if err != nil {
		emit("nav.reject", withError(fields{"id": id, "level": level}, err))
	}
}

func (NavTracer) Focus(element string) {
	emit("nav.focus", fields{"element": element})
}

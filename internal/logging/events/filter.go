package events

type FilterTracer struct{}

var Filter = FilterTracer{}

func filterText(level, filter string) fields {
	return fields{"level": level, "filter": filter}
}

func filterCaret(level string, pos int) fields {
	return fields{"level": level, "cursor": pos}
}

func (FilterTracer) Cleared(levelID string) {
	emit("filter.clear", fields{"level": levelID})
}

func (FilterTracer) Append(levelID, filter string) {
	emit("filter.append", filterText(levelID, filter))
}

func (FilterTracer) Backspace(levelID, filter string) {
	emit("filter.backspace", filterText(levelID, filter))
}

func (FilterTracer) WordBackspace(levelID, filter string) {
	emit("filter.word-backspace", filterText(levelID, filter))
}

func (FilterTracer) Cursor(levelID string, pos int) {
	emit("filter.cursor", filterCaret(levelID, pos))
}

func (FilterTracer) CursorWord(levelID string, pos int) {
	emit("filter.cursor-word", filterCaret(levelID, pos))
}

package events

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Activate(paneID, linkID, url, filter string) {
	emit("pane.activate", fields{"pane": paneID, "link": linkID, "url": url, "filter": filter})
}

func (UITracer) PaneCursor(paneID string, cursor int) {
	emit("pane.cursor", fields{"pane": paneID, "cursor": cursor})
}

func (UITracer) Scroll(paneID string, offset int, direction string) {
	emit("pane.scroll", fields{"pane": paneID, "offset": offset, "direction": direction})
}

func (UITracer) Resize(width, height int) {
	emit("ui.resize", fields{"width": width, "height": height})
}

type ActionTracer struct{}

var Action = ActionTracer{}

func (ActionTracer) Error(err error) {
	if err != nil {
		emit("action.error", withError(fields{}, err))
	}
}

func (ActionTracer) Success(info string) {
	emit("action.success", fields{"info": info})
}

func (ActionTracer) Copied(url string) {
	emit("action.copy", fields{"url": url})
}

package events

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	emit("app.start", fields(payload))
}

func (AppTracer) Exit(url string) {
	emit("app.exit", fields{"url": url})
}

package events

type LinksTracer struct{}

var Links = LinksTracer{}

func (LinksTracer) Load(source string, count int) {
	emit("links.load", fields{"source": source, "count": count})
}

func (LinksTracer) Reload(path string, count int) {
	emit("links.reload", fields{"path": path, "count": count})
}

func (LinksTracer) Error(path string, err error) {
	if err != nil {
		emit("links.error", withError(fields{"path": path}, err))
	}
}

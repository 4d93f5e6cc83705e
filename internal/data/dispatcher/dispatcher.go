package dispatcher

import (
	"github.com/atomicstack/flyout/internal/backend"
	"github.com/atomicstack/flyout/internal/logging"
	"github.com/atomicstack/flyout/internal/logging/events"
	"github.com/atomicstack/flyout/internal/state"
)

type Result struct {
	LinksUpdated bool
	Err          error
}

type Dispatcher struct {
	links state.LinkStore
}

func New(l state.LinkStore) *Dispatcher {
	return &Dispatcher{links: l}
}

// Handle applies a backend event to the stores. A failed reload keeps the
// previous tree.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		d.links.SetError(evt.Err)
		events.Links.Error(d.links.Source(), evt.Err)
		logging.Error(evt.Err)
		res.Err = evt.Err
		return res
	}
	switch evt.Kind {
	case backend.KindLinks:
		if len(evt.Data) == 0 {
			return res
		}
		d.links.SetLinks(evt.Data)
		events.Links.Reload(d.links.Source(), len(evt.Data))
		res.LinksUpdated = true
	}
	return res
}

package command

import (
	"fmt"
	"time"

	"github.com/atomicstack/flyout/internal/links"
	"github.com/atomicstack/flyout/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Action turns a link into a Bubble Tea command.
type Action func(links.Link) tea.Cmd

// Request names one action invocation for tracing.
type Request struct {
	ID      string
	Label   string
	Handler Action
	Link    links.Link
}

// Bus runs link actions and traces their lifecycle.
type Bus struct {
	now func() time.Time
}

// New returns a Bus timed by the wall clock.
func New() *Bus {
	return &Bus{now: time.Now}
}

// Execute defers req until Bubble Tea runs the returned command. A nil
// handler, or one that yields no command, produces a nil message.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		start := b.now()
		cmd := req.Handler(req.Link)
		if cmd == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		msg := cmd()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg), b.now().Sub(start))
		return msg
	}
}

package ui

import (
	"github.com/atomicstack/flyout/internal/backend"
	tea "github.com/charmbracelet/bubbletea"
)

// backendEventMsg carries one watcher event into Update.
type backendEventMsg struct {
	event backend.Event
}

// backendDoneMsg reports that the watcher closed its event channel.
type backendDoneMsg struct{}

// waitForBackendEvent blocks on the next watcher event. Update re-arms it
// after every event until the channel closes.
func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		if evt, ok := <-w.Events(); ok {
			return backendEventMsg{event: evt}
		}
		return backendDoneMsg{}
	}
}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	evt, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(evt.event)
	if m.backend == nil {
		return nil
	}
	return waitForBackendEvent(m.backend)
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent swaps in a reloaded link tree. The open path is kept as
// far as its ids still resolve; a failed reload leaves the old tree in place
// and surfaces the error in the footer.
func (m *Model) applyBackendEvent(evt backend.Event) {
	res := m.dispatcher.Handle(evt)
	switch {
	case res.Err != nil:
		m.backendLastErr = res.Err.Error()
	case res.LinksUpdated:
		m.backendLastErr = ""
		before := m.nav.Path()
		m.nav.Reset(m.store.Links())
		// Reset notifies listeners only when the path changed.
		if m.nav.Path().Equal(before) {
			m.syncLayout()
		}
		m.setInfo("Links reloaded")
	}
}

package ui

import (
	"github.com/atomicstack/flyout/internal/links"
	"github.com/atomicstack/flyout/internal/logging/events"
	"github.com/atomicstack/flyout/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// activate runs the activation action for link through the command bus.
func (m *Model) activate(depth int, link links.Link) tea.Cmd {
	paneID := rootLevelID
	filter := ""
	if lvl := m.levelAt(depth); lvl != nil {
		paneID = lvl.ID
		filter = lvl.Filter
	}
	events.UI.Activate(paneID, link.ID, link.URL, filter)
	m.loading = true
	m.errMsg = ""
	m.forceClearInfo()
	return m.bus.Execute(command.Request{
		ID:      "link:activate",
		Label:   link.Label(),
		Handler: command.Activate(m.clipboard),
		Link:    link,
	})
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	m.loading = false
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	m.activated = &result
	events.Action.Success(result.Info)
	return tea.Quit
}

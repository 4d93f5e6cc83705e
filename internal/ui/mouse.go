package ui

import (
	"github.com/atomicstack/flyout/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

const wheelStep = 3

// handleMouseMsg feeds presses and releases to the outside detector and
// turns a press and release on the same element into a click.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.scrollPaneAt(ev.X, -wheelStep)
		return nil
	case tea.MouseButtonWheelDown:
		m.scrollPaneAt(ev.X, wheelStep)
		return nil
	}
	t := m.hitTest(ev.X, ev.Y)
	switch ev.Action {
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft {
			return nil
		}
		m.pressed = &t
		m.source.MouseDownAt(t)
	case tea.MouseActionRelease:
		pressed := m.pressed
		m.pressed = nil
		m.source.MouseUpAt(t)
		if pressed == nil || *pressed != t || t.zone != zoneElement {
			return nil
		}
		if m.loading {
			return nil
		}
		m.focusKey = ""
		return m.activateElement(t.el)
	}
	return nil
}

// scrollPaneAt scrolls the pane under the pointer. Only the deepest open pane
// reports to the scroll observer.
func (m *Model) scrollPaneAt(x, delta int) {
	for _, c := range m.columns() {
		if x < c.x || x >= c.x+c.width {
			continue
		}
		lvl := m.levelAt(c.pane)
		if lvl == nil {
			return
		}
		offset := lvl.ScrollBy(delta, m.maxVisibleItems())
		if c.pane == m.deepestOpenPane() {
			m.scroll.Scroll(0, offset)
			m.drainViewportEvents()
			events.UI.Scroll(lvl.ID, offset, m.scroll.Position().Direction.String())
		}
		return
	}
}

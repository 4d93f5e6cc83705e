package ui

import (
	"github.com/atomicstack/flyout/internal/logging/events"
	"github.com/atomicstack/flyout/internal/nav"
	"github.com/atomicstack/flyout/internal/outside"
)

// focusRing is the tab order: tabbable elements of every open pane followed
// by the page itself. A collapsed pane contributes only the toggle of its
// active link, so tabbing walks the open path.
func (m *Model) focusRing() []target {
	order := nav.FocusOrder(m.panes)
	ring := make([]target, 0, len(order)+1)
	for _, el := range order {
		ring = append(ring, target{zone: zoneElement, el: el})
	}
	return append(ring, pageTarget)
}

func (m *Model) focusedTarget() target {
	if m.focusKey == "" {
		return target{zone: zoneNav}
	}
	for _, t := range m.focusRing() {
		if t.key() == m.focusKey {
			return t
		}
	}
	return target{zone: zoneNav}
}

func (m *Model) focusedElement() (nav.Element, bool) {
	t := m.focusedTarget()
	if t.zone != zoneElement {
		return nav.Element{}, false
	}
	return t.el, true
}

// cycleFocus moves tab focus by delta and reports the keyup to the outside
// detector, which closes the flyout when focus has left it.
func (m *Model) cycleFocus(delta int) {
	ring := m.focusRing()
	idx := -1
	for i, t := range ring {
		if t.key() == m.focusKey {
			idx = i
			break
		}
	}
	var next int
	switch {
	case idx < 0 && delta < 0:
		next = len(ring) - 1
	case idx < 0:
		next = 0
	default:
		next = ((idx+delta)%len(ring) + len(ring)) % len(ring)
	}
	t := ring[next]
	m.focusKey = t.key()
	if t.zone == zoneElement {
		m.focusElement(t.el)
	}
	events.Nav.Focus(m.focusKey)
	m.source.KeyUpOn(outside.KeyTab, t)
}

func (m *Model) focusElement(el nav.Element) {
	if el.Pane < 0 || el.Pane >= len(m.panes) {
		return
	}
	pane := m.panes[el.Pane]
	if el.Item < 0 || el.Item >= len(pane.Items) {
		return
	}
	// cursor keys keep acting on the last expanded pane
	if !pane.Collapsed {
		m.focusPane = el.Pane
	}
	if lvl := m.levelAt(el.Pane); lvl != nil {
		lvl.Focus(pane.Items[el.Item].Link.ID)
		m.syncViewport(lvl)
	}
}

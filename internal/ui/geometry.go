package ui

import (
	"github.com/atomicstack/flyout/internal/nav"
	"github.com/atomicstack/flyout/internal/outside"
)

const (
	fullPaneWidth      = 30
	collapsedPaneWidth = 3
	toggleWidth        = 3
	paneSeparator      = "│"
)

type zone int

const (
	zonePage zone = iota
	zoneNav
	zoneElement
)

// target is what a pointer or focus event lands on.
type target struct {
	zone zone
	el   nav.Element
}

var pageTarget = target{zone: zonePage}

func (t target) key() string {
	switch t.zone {
	case zonePage:
		return "page"
	case zoneNav:
		return "nav"
	default:
		return t.el.ID()
	}
}

type column struct {
	pane  int
	x     int
	width int
}

// columns lays the open panes out left to right, one separator column apart.
func (m *Model) columns() []column {
	cols := make([]column, 0, len(m.panes))
	x := 0
	for d, pane := range m.panes {
		if !pane.Open {
			continue
		}
		w := fullPaneWidth
		if pane.Collapsed {
			w = collapsedPaneWidth
		}
		cols = append(cols, column{pane: d, x: x, width: w})
		x += w + 1
	}
	return cols
}

// navTop is the screen row holding the pane titles.
func (m *Model) navTop() int {
	rows := 1
	if m.showPath {
		rows++
	}
	return rows
}

// hitTest resolves a screen cell to a target. Everything outside the pane
// columns is the page.
func (m *Model) hitTest(x, y int) target {
	top := m.navTop()
	visible := m.maxVisibleItems()
	if y < top || x < 0 {
		return pageTarget
	}
	if visible > 0 && y > top+visible {
		return pageTarget
	}
	if m.width > 0 && x >= m.width {
		return pageTarget
	}
	for _, c := range m.columns() {
		if x < c.x {
			break
		}
		if x >= c.x+c.width {
			if x == c.x+c.width {
				return target{zone: zoneNav}
			}
			continue
		}
		pane := m.panes[c.pane]
		row := y - top
		if row == 0 || pane.Collapsed {
			if c.pane == 0 {
				return target{zone: zoneNav}
			}
			return target{zone: zoneElement, el: nav.Element{Kind: nav.ElementHeader, Pane: c.pane, Item: -1}}
		}
		lvl := m.levelAt(c.pane)
		if lvl == nil {
			return target{zone: zoneNav}
		}
		idx := lvl.ViewportOffset + row - 1
		if idx < 0 || idx >= len(lvl.Items) {
			return target{zone: zoneNav}
		}
		itemIdx := paneItemIndex(pane, lvl.Items[idx].ID)
		if itemIdx < 0 {
			return target{zone: zoneNav}
		}
		kind := nav.ElementAnchor
		if pane.Items[itemIdx].HasToggle && x >= c.x+c.width-toggleWidth {
			kind = nav.ElementToggle
		}
		return target{zone: zoneElement, el: nav.Element{Kind: kind, Pane: c.pane, Item: itemIdx}}
	}
	return pageTarget
}

// outsideRoot reports the nav region as the detector's root. A closed model
// has no root.
func (m *Model) outsideRoot() outside.Root {
	if m.closed {
		return nil
	}
	return outside.RootFunc(func(t outside.Target) bool {
		tg, ok := t.(target)
		return ok && tg.zone != zonePage
	})
}

func paneItemIndex(pane nav.Pane, id string) int {
	for i, it := range pane.Items {
		if it.Link.ID == id {
			return i
		}
	}
	return -1
}

package ui

import (
	"github.com/atomicstack/flyout/internal/links"
	"github.com/atomicstack/flyout/internal/logging/events"
	"github.com/atomicstack/flyout/internal/nav"
	"github.com/atomicstack/flyout/internal/outside"
	tea "github.com/charmbracelet/bubbletea"
)

// syncLayout recomputes the panes for the current path and keeps one level
// per open pane, reusing levels whose pane still shows the same list.
func (m *Model) syncLayout() {
	root := m.nav.Root()
	m.panes = nav.Layout(root, m.nav.Path(), m.maxPanes)
	levels := make([]*level, len(m.panes))
	for d, pane := range m.panes {
		if !pane.Open {
			continue
		}
		id, title, list := rootLevelID, m.rootTitle, root
		if pane.Parent != nil {
			id, title, list = pane.Parent.ID, pane.Parent.Label(), pane.Parent.Sublinks
		}
		if d < len(m.levels) && m.levels[d] != nil && m.levels[d].ID == id {
			lvl := m.levels[d]
			lvl.Title = title
			lvl.UpdateItems(list)
			levels[d] = lvl
		} else {
			levels[d] = newLevel(id, title, list)
		}
		m.syncViewport(levels[d])
	}
	m.levels = levels
	if m.levelAt(m.focusPane) == nil {
		m.focusPane = m.deepestOpenPane()
	}
}

func (m *Model) handlePathChange(nav.Path) {
	m.syncLayout()
}

func (m *Model) levelAt(depth int) *level {
	if depth < 0 || depth >= len(m.levels) {
		return nil
	}
	return m.levels[depth]
}

func (m *Model) currentLevel() *level {
	return m.levelAt(m.focusPane)
}

func (m *Model) deepestOpenPane() int {
	deepest := 0
	for d, pane := range m.panes {
		if pane.Open {
			deepest = d
		}
	}
	return deepest
}

// toggleLink opens or closes link at depth and moves keyboard focus to
// follow it.
func (m *Model) toggleLink(link links.Link, depth int) {
	if err := m.nav.Toggle(link, depth); err != nil {
		events.Nav.Reject(link.ID, depth, err)
		m.errMsg = err.Error()
		return
	}
	path := m.nav.Path()
	events.Nav.Toggle(link.ID, depth, path.Titles())
	m.errMsg = ""
	m.forceClearInfo()
	if path.IsActive(link.ID) && m.levelAt(depth+1) != nil {
		m.focusPane = depth + 1
		return
	}
	m.focusPane = depth
	if lvl := m.levelAt(depth); lvl != nil {
		lvl.Focus(link.ID)
		m.syncViewport(lvl)
	}
}

// closeFromOutside is the outside detector's callback.
func (m *Model) closeFromOutside() {
	path := m.nav.Path()
	if len(path) == 0 {
		return
	}
	events.Nav.Close("outside")
	m.nav.CloseAll()
	m.focusPane = 0
	if lvl := m.levelAt(0); lvl != nil {
		lvl.Focus(path[0].Link.ID)
		m.syncViewport(lvl)
	}
}

func (m *Model) handleEscapeKey() tea.Cmd {
	wasOpen := len(m.nav.Path()) > 0
	m.source.KeyUpOn(outside.KeyEscape, m.focusedTarget())
	if !wasOpen {
		return tea.Quit
	}
	m.errMsg = ""
	m.forceClearInfo()
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.loading {
		return nil
	}
	if el, ok := m.focusedElement(); ok {
		return m.activateElement(el)
	}
	if m.focusKey == pageTarget.key() {
		return nil
	}
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	link, ok := current.Current()
	if !ok {
		return nil
	}
	if link.HasSublinks() {
		m.clearFilter(current)
		m.toggleLink(link, m.focusPane)
		return nil
	}
	return m.activate(m.focusPane, link)
}

// activateElement performs the default action of a focused or clicked
// element.
func (m *Model) activateElement(el nav.Element) tea.Cmd {
	if el.Pane < 0 || el.Pane >= len(m.panes) {
		return nil
	}
	pane := m.panes[el.Pane]
	if el.Kind == nav.ElementHeader {
		if pane.Parent != nil {
			m.toggleLink(*pane.Parent, pane.ParentLevel())
		}
		return nil
	}
	if el.Item < 0 || el.Item >= len(pane.Items) {
		return nil
	}
	link := pane.Items[el.Item].Link
	m.focusPane = el.Pane
	if lvl := m.levelAt(el.Pane); lvl != nil {
		lvl.Focus(link.ID)
	}
	if el.Kind == nav.ElementToggle {
		m.toggleLink(link, el.Pane)
		return nil
	}
	return m.activate(el.Pane, link)
}

// openCurrent expands the link under the cursor, or steps into its pane when
// it is already expanded.
func (m *Model) openCurrent() {
	current := m.currentLevel()
	if current == nil {
		return
	}
	link, ok := current.Current()
	if !ok || !link.HasSublinks() {
		return
	}
	if m.nav.IsActive(link.ID) {
		if m.levelAt(m.focusPane+1) != nil {
			m.focusPane++
		}
		return
	}
	m.clearFilter(current)
	m.toggleLink(link, m.focusPane)
}

// closeFocusedPane collapses the focused pane by toggling the link that
// opened it.
func (m *Model) closeFocusedPane() {
	if m.focusPane <= 0 || m.focusPane >= len(m.panes) {
		return
	}
	pane := m.panes[m.focusPane]
	if pane.Parent == nil {
		return
	}
	m.toggleLink(*pane.Parent, pane.ParentLevel())
}

func (m *Model) moveCursorUp() {
	if current := m.currentLevel(); current != nil {
		if n := len(current.Items); n > 0 {
			if current.Cursor > 0 {
				current.Cursor--
			} else {
				current.Cursor = n - 1
			}
			events.UI.PaneCursor(current.ID, current.Cursor)
			m.syncViewport(current)
		}
	}
}

func (m *Model) moveCursorDown() {
	if current := m.currentLevel(); current != nil {
		if n := len(current.Items); n > 0 {
			if current.Cursor < n-1 {
				current.Cursor++
			} else {
				current.Cursor = 0
			}
			events.UI.PaneCursor(current.ID, current.Cursor)
			m.syncViewport(current)
		}
	}
}

func (m *Model) moveCursorPageUp() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageUp(m.maxVisibleItems()); moved {
			events.UI.PaneCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageDown() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageDown(m.maxVisibleItems()); moved {
			events.UI.PaneCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorHome() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorHome(); moved {
			events.UI.PaneCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorEnd() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorEnd(); moved {
			events.UI.PaneCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "tab":
		m.cycleFocus(1)
		return nil
	case "shift+tab":
		m.cycleFocus(-1)
		return nil
	case "enter":
		return m.handleEnterKey()
	}
	m.focusKey = ""
	switch keyMsg.String() {
	case "up":
		m.moveCursorUp()
	case "down":
		m.moveCursorDown()
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	case "right":
		m.openCurrent()
	case "left", "backspace":
		m.closeFocusedPane()
	}
	return nil
}

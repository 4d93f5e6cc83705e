package ui

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/flyout/internal/nav"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const footerHint = "↑/↓ move  →/enter open  ← close  tab focus  esc close all  ctrl+c quit"

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.menuHeader(), style: styles.Header})
	if m.showPath {
		lines = append(lines, styledLine{text: m.pathDebugLine(), style: styles.Debug})
	}
	for _, row := range m.renderPanes() {
		lines = append(lines, styledLine{text: row, raw: true})
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.footerVisible() {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerHint, style: styles.Footer})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	// Bottom bar: error/status line + filter prompt.
	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	} else if m.backendLastErr != "" {
		statusLine = styledLine{text: fmt.Sprintf("Reload failed: %s", m.backendLastErr), style: styles.Error}
	}
	promptText := m.filterPrompt()
	bottomLines := []styledLine{
		statusLine,
		{text: promptText},
	}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

func (m *Model) footerVisible() bool {
	return m.showFooter && !m.footerHidden
}

// pathDebugLine is the JSON array of active link titles.
func (m *Model) pathDebugLine() string {
	titles := m.nav.Path().Titles()
	if titles == nil {
		titles = []string{}
	}
	data, err := json.Marshal(titles)
	if err != nil {
		return err.Error()
	}
	return string(data)
}

// renderPanes draws the open panes side by side. Row 0 holds the pane titles,
// the following rows the visible links.
func (m *Model) renderPanes() []string {
	cols := m.columns()
	visible := m.maxVisibleItems()
	if visible < 1 {
		visible = m.tallestPane()
	}
	rows := make([]string, visible+1)
	sep := paneSeparator
	if styles.PaneSeparator != nil {
		sep = styles.PaneSeparator.Render(paneSeparator)
	}
	for i, c := range cols {
		cells := m.renderColumn(c, visible)
		for r := range rows {
			if i > 0 {
				rows[r] += sep
			}
			rows[r] += cells[r]
		}
	}
	return rows
}

func (m *Model) tallestPane() int {
	tallest := 1
	for _, lvl := range m.levels {
		if lvl != nil && len(lvl.Items) > tallest {
			tallest = len(lvl.Items)
		}
	}
	return tallest
}

func (m *Model) renderColumn(c column, visible int) []string {
	pane := m.panes[c.pane]
	cells := make([]string, visible+1)
	if pane.Collapsed {
		return m.renderCollapsedColumn(pane, c.width, cells)
	}
	title := m.rootTitle
	if pane.Parent != nil {
		title = "‹ " + pane.Parent.Label()
	}
	cells[0] = renderCell(title, c.width, styles.PaneTitle)

	lvl := m.levelAt(c.pane)
	if lvl == nil {
		for r := 1; r < len(cells); r++ {
			cells[r] = renderCell("", c.width, nil)
		}
		return cells
	}
	if len(lvl.Items) == 0 {
		msg := "(no links)"
		if lvl.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", lvl.Filter)
		}
		cells[1] = renderCell(msg, c.width, styles.Info)
		for r := 2; r < len(cells); r++ {
			cells[r] = renderCell("", c.width, nil)
		}
		return cells
	}
	start := lvl.ViewportOffset
	if start < 0 {
		start = 0
	}
	focused, hasFocus := m.focusedElement()
	for r := 1; r < len(cells); r++ {
		idx := start + r - 1
		if idx >= len(lvl.Items) {
			cells[r] = renderCell("", c.width, nil)
			continue
		}
		link := lvl.Items[idx]
		itemIdx := paneItemIndex(pane, link.ID)
		if itemIdx < 0 {
			cells[r] = renderCell(link.Label(), c.width, styles.Item)
			continue
		}
		item := pane.Items[itemIdx]
		focus := nav.ElementKind(-1)
		if hasFocus && focused.Pane == c.pane && focused.Item == itemIdx {
			focus = focused.Kind
		}
		selected := c.pane == m.focusPane && idx == lvl.Cursor
		cells[r] = m.renderItem(item, c.width, selected, focus, pane.Classes)
	}
	return cells
}

// renderCollapsedColumn shows the opening link's title one rune per row, the
// way a rotated label reads. When the active link's toggle holds tab focus,
// the header shows its disclosure mark instead.
func (m *Model) renderCollapsedColumn(pane nav.Pane, width int, cells []string) []string {
	cells[0] = renderCell(" ‹", width, styles.PaneTitleCollapsed)
	if el, ok := m.focusedElement(); ok && el.Pane == pane.Depth && el.Kind == nav.ElementToggle && el.Item < len(pane.Items) {
		cells[0] = renderCell(" "+pane.Items[el.Item].Disclosure(), width, styles.FocusedElement)
	}
	var runes []rune
	if pane.Parent != nil {
		runes = []rune(pane.Parent.Label())
	}
	for r := 1; r < len(cells); r++ {
		text := ""
		if r-1 < len(runes) {
			text = " " + string(runes[r-1])
		}
		cells[r] = renderCell(text, width, styles.ForClasses(pane.Classes))
	}
	return cells
}

// renderItem draws one link row: indicator, label, and a disclosure toggle
// at the right edge when the link has sublinks.
func (m *Model) renderItem(item nav.Item, width int, selected bool, focus nav.ElementKind, classes []string) string {
	indicatorStyle := styles.ItemIndicator
	labelStyle := styles.ForClasses(classes)
	if item.Active {
		labelStyle = styles.ActiveItem
	}
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		labelStyle = styles.SelectedItem
	}
	labelWidth := width - 2
	toggle := ""
	if item.HasToggle {
		labelWidth -= toggleWidth
		toggle = " " + item.Disclosure() + " "
	}
	label := renderCell(item.Link.Label(), labelWidth, labelStyle)
	if focus == nav.ElementAnchor && styles.FocusedElement != nil {
		label = styles.FocusedElement.Render(label)
	}
	out := render(indicatorStyle, "▌") + render(labelStyle, " ") + label
	if toggle != "" {
		toggleStyle := styles.Disclosure
		if selected {
			toggleStyle = styles.SelectedItem
		}
		rendered := render(toggleStyle, toggle)
		if focus == nav.ElementToggle && styles.FocusedElement != nil {
			rendered = styles.FocusedElement.Render(rendered)
		}
		out += rendered
	}
	return out
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

// renderCell truncates or pads text to exactly width columns before styling.
func renderCell(text string, width int, style *lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	text = truncateText(text, width)
	if pad := width - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return render(style, text)
}

func (m *Model) menuHeader() string {
	segments := m.headerSegments()
	if len(segments) == 0 {
		return ""
	}
	return strings.Join(segments, menuHeaderSeparator)
}

func (m *Model) headerSegments() []string {
	root := strings.TrimSpace(m.rootTitle)
	if root == "" {
		root = defaultRootTitle
	}
	segments := []string{root}
	for _, title := range m.nav.Path().Titles() {
		if title = strings.TrimSpace(title); title != "" {
			segments = append(segments, title)
		}
	}
	return segments
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: error/status + filter prompt
	used += m.navTop()
	used++ // pane titles
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.footerVisible() {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.String(text, uint(width))
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw {
			out[i] = line.text
			continue
		}
		out[i] = render(line.style, line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}

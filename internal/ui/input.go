package ui

import (
	"unicode"

	"github.com/atomicstack/flyout/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// filterEdit is a query edit bound to a key. Edits change the query and
// refilter the pane; caret moves only reposition the caret.
type filterEdit struct {
	apply func(*level) bool
	edit  bool
}

var filterKeys = map[string]filterEdit{
	"ctrl+u":    {apply: func(l *level) bool { return clearQuery(l) }, edit: true},
	"ctrl+w":    {apply: (*level).DeleteFilterWordBackward, edit: true},
	"backspace": {apply: (*level).DeleteFilterRuneBackward, edit: true},
	"ctrl+h":    {apply: (*level).DeleteFilterRuneBackward, edit: true},
	"ctrl+a":    {apply: (*level).MoveFilterCursorStart},
	"ctrl+e":    {apply: (*level).MoveFilterCursorEnd},
	"alt+b":     {apply: (*level).MoveFilterCursorWordBackward},
	"alt+f":     {apply: (*level).MoveFilterCursorWordForward},
	"left":      {apply: (*level).MoveFilterCursorRuneBackward},
	"right":     {apply: (*level).MoveFilterCursorRuneForward},
}

func clearQuery(l *level) bool {
	if l.Filter == "" {
		return false
	}
	l.SetFilter("", 0)
	return true
}

// handleTextInput routes typing to the focused pane's filter. It reports
// whether the key was consumed; unconsumed keys fall through to navigation.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	if m.loading {
		return false
	}
	current := m.currentLevel()
	if current == nil {
		return false
	}
	key := msg.String()
	if binding, ok := filterKeys[key]; ok {
		before := current.FilterCursorPos()
		if !binding.apply(current) {
			return false
		}
		if before != current.FilterCursorPos() {
			m.filterCursorDirty = true
		}
		switch {
		case binding.edit:
			m.afterFilterEdit(current, key)
		case key == "alt+b" || key == "alt+f":
			events.Filter.CursorWord(current.ID, current.FilterCursor)
		default:
			events.Filter.Cursor(current.ID, current.FilterCursor)
		}
		return true
	}
	switch msg.Type {
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) || unicode.IsSpace(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	}
	return false
}

func (m *Model) afterFilterEdit(l *level, key string) {
	m.forceClearInfo()
	m.errMsg = ""
	switch {
	case l.Filter == "":
		events.Filter.Cleared(l.ID)
	case key == "ctrl+w":
		events.Filter.WordBackspace(l.ID, l.Filter)
	case key == "backspace" || key == "ctrl+h":
		events.Filter.Backspace(l.ID, l.Filter)
	default:
		events.Filter.Append(l.ID, l.Filter)
	}
	m.syncViewport(l)
}

func (m *Model) appendToFilter(text string) bool {
	current := m.currentLevel()
	if current == nil || !current.InsertFilterText(text) {
		return false
	}
	m.filterCursorDirty = true
	m.afterFilterEdit(current, "")
	return true
}

func (m *Model) clearFilter(l *level) {
	if l == nil || l.Filter == "" {
		return
	}
	l.SetFilter("", 0)
	m.filterCursorDirty = true
	events.Filter.Cleared(l.ID)
	m.syncViewport(l)
}

const filterPlaceholder = "(type to filter)"

// filterPrompt renders the focused pane's query with the caret drawn over
// the rune it sits on. An empty query shows the placeholder instead.
func (m *Model) filterPrompt() string {
	prompt := render(styles.FilterPrompt, "» ")
	current := m.currentLevel()
	if current == nil {
		return prompt
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	textStyle := styles.Filter
	runes := []rune(current.Filter)
	pos := current.FilterCursorPos()
	if len(runes) == 0 {
		textStyle = styles.FilterPlaceholder
		runes = []rune(filterPlaceholder)
		pos = 0
	}
	m.filterCursor.TextStyle = lipgloss.Style{}
	if textStyle != nil {
		m.filterCursor.TextStyle = textStyle.Copy()
	}
	caret, after := " ", ""
	if pos < len(runes) {
		caret, after = string(runes[pos]), string(runes[pos+1:])
	}
	return prompt + render(textStyle, string(runes[:pos])) + m.renderFilterCursor(caret) + render(textStyle, after)
}

func (m *Model) renderFilterCursor(char string) string {
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Copy().Inline(true)
	switch {
	case m.filterCursor.Blink:
		return base.Render(char)
	case styles.Cursor != nil:
		return base.Inherit(styles.Cursor.Copy().Inline(true)).Blink(false).Render(char)
	default:
		return base.Reverse(true).Render(char)
	}
}

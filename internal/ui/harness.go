package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness feeds messages to a Model and runs the commands it returns
// synchronously, so tests can drive the UI without a terminal. Batched
// commands are not expanded; a tea.QuitMsg stops processing.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness wraps model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send delivers msg and then every message produced by the command chain it
// starts.
func (h *Harness) Send(msg tea.Msg) {
	for h.model != nil && msg != nil {
		if _, ok := msg.(tea.QuitMsg); ok {
			h.quit = true
			return
		}
		next, cmd := h.model.Update(msg)
		if updated, ok := next.(*Model); ok {
			h.model = updated
		}
		if cmd == nil {
			return
		}
		msg = cmd()
	}
}

// Press sends a key by name, as tea.KeyMsg.String reports it. Names without
// a special meaning are typed as runes.
func (h *Harness) Press(key string) {
	h.Send(keyMsg(key))
}

// Click presses and releases the left mouse button at x, y.
func (h *Harness) Click(x, y int) {
	h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View renders the model.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

func (h *Harness) Model() *Model {
	return h.model
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"backspace": tea.KeyBackspace,
	"ctrl+c":    tea.KeyCtrlC,
}

func keyMsg(key string) tea.KeyMsg {
	if t, ok := namedKeys[key]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

package ui

import (
	"strings"
	"testing"
)

func TestRightOpensPaneAndFocusesIt(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Press("right")
	m := h.Model()
	if ids := m.Path().IDs(); len(ids) != 1 || ids[0] != "a" {
		t.Fatalf("expected path [a], got %v", ids)
	}
	if m.focusPane != 1 {
		t.Fatalf("expected focus on pane 1, got %d", m.focusPane)
	}
	view := h.View()
	if !strings.Contains(view, "Alpha One") || !strings.Contains(view, " - ") {
		t.Fatalf("expected open pane with disclosure -, got:\n%s", view)
	}
	h.Press("down")
	if cur, _ := m.currentLevel().Current(); cur.ID != "a2" {
		t.Fatalf("expected cursor on a2, got %s", cur.ID)
	}
}

func TestRightOnOpenLinkStepsIntoPane(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Press("right")
	h.Press("left")
	if len(h.Model().Path()) != 0 {
		t.Fatalf("expected left to close the pane")
	}
	if h.Model().focusPane != 0 {
		t.Fatalf("expected focus back on root pane")
	}
	if cur, _ := h.Model().currentLevel().Current(); cur.ID != "a" {
		t.Fatalf("expected root cursor on a, got %s", cur.ID)
	}
	h.Press("right")
	h.Model().focusPane = 0
	h.Press("right")
	if h.Model().focusPane != 1 || len(h.Model().Path()) != 1 {
		t.Fatalf("expected right on open link to move focus, got pane %d path %v", h.Model().focusPane, h.Model().Path().IDs())
	}
}

func TestBackspaceClosesDeepestPane(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Press("right")
	h.Press("right")
	if ids := h.Model().Path().IDs(); len(ids) != 2 || ids[1] != "a1" {
		t.Fatalf("expected path [a a1], got %v", ids)
	}
	h.Press("backspace")
	if ids := h.Model().Path().IDs(); len(ids) != 1 || ids[0] != "a" {
		t.Fatalf("expected path [a], got %v", ids)
	}
	if h.Model().focusPane != 1 {
		t.Fatalf("expected focus on pane 1, got %d", h.Model().focusPane)
	}
}

func TestSiblingToggleReplacesBranch(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Press("right")
	h.Press("right")
	m := h.Model()
	m.focusPane = 0
	m.levels[0].Cursor = 2
	h.Press("enter")
	if ids := m.Path().IDs(); len(ids) != 1 || ids[0] != "c" {
		t.Fatalf("expected sibling to replace branch, got %v", ids)
	}
	if strings.Contains(h.View(), "Alpha One") {
		t.Fatalf("expected previous branch closed")
	}
}

func TestEscapeClosesAllThenQuits(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Press("right")
	h.Press("right")
	h.Press("esc")
	if len(h.Model().Path()) != 0 {
		t.Fatalf("expected escape to close every pane")
	}
	if h.Quit() {
		t.Fatalf("expected first escape not to quit")
	}
	h.Press("esc")
	if !h.Quit() {
		t.Fatalf("expected second escape to quit")
	}
}

func TestEnterOnLeafActivatesLink(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Press("down")
	h.Press("enter")
	if !h.Quit() {
		t.Fatalf("expected activation to quit")
	}
	link, ok := h.Model().Activated()
	if !ok || link.URL != "/b" {
		t.Fatalf("expected /b activated, got %#v", link)
	}
}

func TestActivationCopiesWhenConfigured(t *testing.T) {
	var copied string
	h := NewHarness(newTestModel(t, Options{Clipboard: func(s string) error {
		copied = s
		return nil
	}}))
	h.Press("down")
	h.Press("enter")
	if copied != "/b" {
		t.Fatalf("expected /b on clipboard, got %q", copied)
	}
}

func TestTabCyclesFocusAndLeavingClosesAll(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Press("right")
	m := h.Model()
	// toggle:0:0, anchor:1:0, toggle:1:0, anchor:1:1, page
	want := []string{"toggle:0:0", "anchor:1:0", "toggle:1:0", "anchor:1:1"}
	for i, key := range want {
		h.Press("tab")
		if m.focusKey != key {
			t.Fatalf("tab %d: expected focus %s, got %s", i, key, m.focusKey)
		}
		if len(m.Path()) != 1 {
			t.Fatalf("tab %d: expected flyout to stay open", i)
		}
	}
	h.Press("tab")
	if m.focusKey != "page" {
		t.Fatalf("expected focus on page, got %s", m.focusKey)
	}
	if len(m.Path()) != 0 {
		t.Fatalf("expected focus leaving the panes to close them")
	}
	h.Press("tab")
	if m.focusKey != "anchor:0:0" {
		t.Fatalf("expected focus to wrap to first anchor, got %s", m.focusKey)
	}
}

func TestShiftTabStartsFromPage(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Press("shift+tab")
	if h.Model().focusKey != "page" {
		t.Fatalf("expected reverse tab to land on page, got %s", h.Model().focusKey)
	}
	h.Press("shift+tab")
	if h.Model().focusKey != "toggle:0:2" {
		t.Fatalf("expected last toggle, got %s", h.Model().focusKey)
	}
}

func TestEnterOnFocusedElement(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Press("tab")
	h.Press("tab")
	if h.Model().focusKey != "toggle:0:0" {
		t.Fatalf("expected toggle focus, got %s", h.Model().focusKey)
	}
	h.Press("enter")
	if ids := h.Model().Path().IDs(); len(ids) != 1 || ids[0] != "a" {
		t.Fatalf("expected focused toggle to open a, got %v", ids)
	}
	if h.Model().focusKey != "toggle:0:0" {
		t.Fatalf("expected focus kept on the active toggle, got %s", h.Model().focusKey)
	}
	h.Press("enter")
	if len(h.Model().Path()) != 0 {
		t.Fatalf("expected second enter to close a")
	}

	h.Press("shift+tab")
	if h.Model().focusKey != "anchor:0:0" {
		t.Fatalf("expected anchor focus, got %s", h.Model().focusKey)
	}
	h.Press("enter")
	if link, ok := h.Model().Activated(); !ok || link.ID != "a" {
		t.Fatalf("expected focused anchor to activate a, got %#v", link)
	}
}

func TestCursorKeysClearTabFocus(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Press("tab")
	h.Press("down")
	if h.Model().focusKey != "" {
		t.Fatalf("expected tab focus cleared, got %s", h.Model().focusKey)
	}
}

func TestTabWalksActivePathThroughCollapsedPane(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Press("right")
	h.Press("right")
	m := h.Model()
	if ids := m.Path().IDs(); len(ids) != 2 || ids[1] != "a1" {
		t.Fatalf("expected path a > a1, got %v", ids)
	}
	if !m.panes[1].Collapsed {
		t.Fatalf("expected pane 1 collapsed")
	}
	focusPane := m.focusPane
	want := []string{"toggle:0:0", "toggle:1:0", "anchor:2:0"}
	for i, key := range want {
		h.Press("tab")
		if m.focusKey != key {
			t.Fatalf("tab %d: expected focus %s, got %s", i, key, m.focusKey)
		}
		if len(m.Path()) != 2 {
			t.Fatalf("tab %d: expected path kept, got %v", i, m.Path().IDs())
		}
		if key == "toggle:1:0" {
			if m.focusPane != focusPane {
				t.Fatalf("expected cursor pane to stay on %d, got %d", focusPane, m.focusPane)
			}
			if h.View() == "" {
				t.Fatalf("expected view to render with collapsed toggle focused")
			}
		}
	}
	h.Press("shift+tab")
	h.Press("enter")
	if ids := m.Path().IDs(); len(ids) != 1 || ids[0] != "a" {
		t.Fatalf("expected enter on collapsed toggle to close a1, got %v", ids)
	}
}

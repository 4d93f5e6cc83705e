package state

import (
	"testing"

	"github.com/atomicstack/flyout/internal/links"
)

func newTestLevel(ids ...string) *Level {
	items := make([]links.Link, len(ids))
	for i, id := range ids {
		items[i] = links.Link{ID: id, Title: id}
	}
	return NewLevel("test", "Test", items)
}

func TestHomeAndEndJumpToBounds(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 1
	if !l.MoveCursorEnd() || l.Cursor != 2 {
		t.Fatalf("expected end to land on 2, got %d", l.Cursor)
	}
	if l.MoveCursorEnd() {
		t.Fatalf("expected no movement when already at the end")
	}
	if !l.MoveCursorHome() || l.Cursor != 0 {
		t.Fatalf("expected home to land on 0, got %d", l.Cursor)
	}
}

func TestCursorMovesOnEmptyLevelReset(t *testing.T) {
	l := newTestLevel()
	l.Cursor = 5
	if l.MoveCursorHome() || l.MoveCursorEnd() || l.MoveCursorPageDown(3) {
		t.Fatalf("expected no movement on an empty level")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", l.Cursor)
	}
}

func TestPageMovesClampAtEdges(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	steps := []struct {
		down    bool
		visible int
		want    int
		moved   bool
	}{
		{true, 2, 2, true},
		{true, 2, 4, true},
		{true, 2, 4, false},
		{false, 2, 2, true},
		{false, 10, 0, true},
	}
	for i, s := range steps {
		var moved bool
		if s.down {
			moved = l.MoveCursorPageDown(s.visible)
		} else {
			moved = l.MoveCursorPageUp(s.visible)
		}
		if moved != s.moved || l.Cursor != s.want {
			t.Fatalf("step %d: expected cursor %d moved %v, got %d moved %v", i, s.want, s.moved, l.Cursor, moved)
		}
	}
}

func TestEnsureCursorVisibleScrollsToCursor(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}
	l.Cursor = 1
	l.ViewportOffset = 4
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset to follow cursor up, got %d", l.ViewportOffset)
	}
	l.Cursor = -1
	l.EnsureCursorVisible(0)
	if l.Cursor != 0 || l.ViewportOffset != 0 {
		t.Fatalf("expected normalized cursor and offset, got %d/%d", l.Cursor, l.ViewportOffset)
	}
}

func TestScrollByDragsCursor(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e", "f", "g", "h")
	if got := l.ScrollBy(3, 4); got != 3 {
		t.Fatalf("expected offset 3, got %d", got)
	}
	if l.Cursor != 3 {
		t.Fatalf("expected cursor dragged to 3, got %d", l.Cursor)
	}
	if got := l.ScrollBy(10, 4); got != 4 {
		t.Fatalf("expected offset clamped to 4, got %d", got)
	}
	l.Cursor = 7
	if got := l.ScrollBy(-10, 4); got != 0 {
		t.Fatalf("expected offset clamped to 0, got %d", got)
	}
	if l.Cursor != 3 {
		t.Fatalf("expected cursor pulled to last visible row, got %d", l.Cursor)
	}
}

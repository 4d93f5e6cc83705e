package state

import "unicode"

// FilterCursorPos returns the caret offset in runes, clamped to the query.
func (l *Level) FilterCursorPos() int {
	return clamp(l.FilterCursor, 0, len([]rune(l.Filter)))
}

// InsertFilterText inserts text at the caret.
func (l *Level) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	l.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes the rune before the caret.
func (l *Level) DeleteFilterRuneBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	l.deleteRange(pos-1, pos)
	return true
}

// DeleteFilterWordBackward deletes the word before the caret, along with any
// spaces between it and the caret.
func (l *Level) DeleteFilterWordBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	l.deleteRange(wordStart([]rune(l.Filter), pos), pos)
	return true
}

func (l *Level) deleteRange(from, to int) {
	runes := []rune(l.Filter)
	updated := append(append([]rune{}, runes[:from]...), runes[to:]...)
	l.SetFilter(string(updated), from)
}

// MoveFilterCursorStart moves the caret to the start of the query.
func (l *Level) MoveFilterCursorStart() bool {
	return l.moveCaret(0)
}

// MoveFilterCursorEnd moves the caret past the last rune.
func (l *Level) MoveFilterCursorEnd() bool {
	return l.moveCaret(len([]rune(l.Filter)))
}

// MoveFilterCursorWordBackward moves the caret to the start of the previous
// word.
func (l *Level) MoveFilterCursorWordBackward() bool {
	return l.moveCaret(wordStart([]rune(l.Filter), l.FilterCursorPos()))
}

// MoveFilterCursorWordForward moves the caret past the next word and its
// trailing spaces.
func (l *Level) MoveFilterCursorWordForward() bool {
	return l.moveCaret(wordEnd([]rune(l.Filter), l.FilterCursorPos()))
}

// MoveFilterCursorRuneBackward moves the caret one rune left.
func (l *Level) MoveFilterCursorRuneBackward() bool {
	return l.moveCaret(l.FilterCursorPos() - 1)
}

// MoveFilterCursorRuneForward moves the caret one rune right.
func (l *Level) MoveFilterCursorRuneForward() bool {
	return l.moveCaret(l.FilterCursorPos() + 1)
}

func (l *Level) moveCaret(pos int) bool {
	pos = clamp(pos, 0, len([]rune(l.Filter)))
	if pos == l.FilterCursorPos() {
		return false
	}
	l.FilterCursor = pos
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

func wordEnd(runes []rune, pos int) int {
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i
}

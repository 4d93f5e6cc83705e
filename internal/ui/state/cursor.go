package state

// MoveCursorHome moves the cursor to the first link.
func (l *Level) MoveCursorHome() bool {
	return l.moveCursorTo(0)
}

// MoveCursorEnd moves the cursor to the last link.
func (l *Level) MoveCursorEnd() bool {
	return l.moveCursorTo(len(l.Items) - 1)
}

// MoveCursorPageUp moves the cursor up by one page of visible rows.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorTo(l.Cursor - l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by one page of visible rows.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorTo(l.Cursor + l.pageSize(maxVisible))
}

func (l *Level) moveCursorTo(idx int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clamp(idx, 0, len(l.Items)-1)
	return l.Cursor != old
}

func (l *Level) pageSize(maxVisible int) int {
	total := len(l.Items)
	if maxVisible <= 0 || maxVisible > total {
		return max(total, 1)
	}
	return maxVisible
}

// maxOffset is the largest viewport offset that still fills the pane.
func (l *Level) maxOffset(maxVisible int) int {
	if maxVisible <= 0 {
		return 0
	}
	return max(len(l.Items)-maxVisible, 0)
}

// ScrollBy moves the viewport by delta rows and drags the cursor along so it
// stays on screen. It returns the new offset.
func (l *Level) ScrollBy(delta, maxVisible int) int {
	l.ViewportOffset = clamp(l.ViewportOffset+delta, 0, l.maxOffset(maxVisible))
	if maxVisible > 0 && len(l.Items) > 0 {
		l.Cursor = clamp(l.Cursor, l.ViewportOffset, l.ViewportOffset+maxVisible-1)
		l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	}
	return l.ViewportOffset
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	offset := clamp(l.ViewportOffset, 0, l.maxOffset(maxVisible))
	if l.Cursor < offset {
		offset = l.Cursor
	}
	if l.Cursor >= offset+maxVisible {
		offset = l.Cursor - maxVisible + 1
	}
	l.ViewportOffset = clamp(offset, 0, l.maxOffset(maxVisible))
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

package state

// Every Move* method reports whether the cursor changed.

// MoveCursorUp moves the cursor one item up, wrapping to the last item.
func (l *Level) MoveCursorUp() bool {
	return l.step(-1)
}

// MoveCursorDown moves the cursor one item down, wrapping to the first item.
func (l *Level) MoveCursorDown() bool {
	return l.step(1)
}

// MoveCursorHome moves the cursor to the first item.
func (l *Level) MoveCursorHome() bool {
	return l.jump(0)
}

// MoveCursorEnd moves the cursor to the last item.
func (l *Level) MoveCursorEnd() bool {
	return l.jump(len(l.Items) - 1)
}

// MoveCursorPageUp moves the cursor up by one page, stopping at the first item.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.jump(l.Cursor - l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by one page, stopping at the last item.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.jump(l.Cursor + l.pageSize(maxVisible))
}

func (l *Level) step(delta int) bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	return l.setCursor(((l.Cursor+delta)%n + n) % n)
}

// jump moves to target clamped to the item range. An empty level resets
// the cursor to 0.
func (l *Level) jump(target int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	return l.setCursor(clamp(target, 0, len(l.Items)-1))
}

func (l *Level) setCursor(i int) bool {
	old := l.Cursor
	l.Cursor = i
	return old != i
}

// pageSize is the visible item count, or every item when the viewport is
// unbounded.
func (l *Level) pageSize(maxVisible int) int {
	total := len(l.Items)
	if maxVisible <= 0 || maxVisible > total {
		return total
	}
	return maxVisible
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	n := len(l.Items)
	if n == 0 {
		l.Cursor, l.ViewportOffset = 0, 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, n-1)
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := max(n-maxVisible, 0)
	offset := clamp(l.ViewportOffset, 0, maxOffset)
	if l.Cursor < offset {
		offset = l.Cursor
	}
	if l.Cursor >= offset+maxVisible {
		offset = l.Cursor - maxVisible + 1
	}
	l.ViewportOffset = clamp(offset, 0, maxOffset)
}

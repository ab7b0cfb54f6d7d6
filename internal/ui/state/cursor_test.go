package state

import "testing"

func newTestLevel(labels ...string) *Level {
	items := make([]Item, len(labels))
	for i, label := range labels {
		items[i] = Item{Index: i, Label: label}
	}
	return NewLevel("Test", items)
}

func TestNewLevelStartsOnFirstItem(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
	if item, ok := l.Current(); !ok || item.Label != "a" {
		t.Fatalf("expected current item a, got %#v", item)
	}
	if _, ok := newTestLevel().Current(); ok {
		t.Fatalf("expected no current item for empty level")
	}
}

func TestMoveCursorUpDownWraps(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if !l.MoveCursorUp() || l.Cursor != 2 {
		t.Fatalf("expected wrap to last item, got %d", l.Cursor)
	}
	if !l.MoveCursorDown() || l.Cursor != 0 {
		t.Fatalf("expected wrap to first item, got %d", l.Cursor)
	}
	if !l.MoveCursorDown() || l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}
	if newTestLevel().MoveCursorDown() {
		t.Fatalf("expected no movement for empty level")
	}
}

func TestMoveCursorJumps(t *testing.T) {
	cases := []struct {
		name  string
		start int
		move  func(*Level) bool
		want  int
		moved bool
	}{
		{"home", 2, (*Level).MoveCursorHome, 0, true},
		{"home at top", 0, (*Level).MoveCursorHome, 0, false},
		{"end", 0, (*Level).MoveCursorEnd, 4, true},
		{"page down", 0, func(l *Level) bool { return l.MoveCursorPageDown(2) }, 2, true},
		{"page down clamps", 3, func(l *Level) bool { return l.MoveCursorPageDown(2) }, 4, true},
		{"page down at end", 4, func(l *Level) bool { return l.MoveCursorPageDown(2) }, 4, false},
		{"page up", 4, func(l *Level) bool { return l.MoveCursorPageUp(2) }, 2, true},
		{"unbounded page up", 3, func(l *Level) bool { return l.MoveCursorPageUp(0) }, 0, true},
	}
	for _, tc := range cases {
		l := newTestLevel("a", "b", "c", "d", "e")
		l.Cursor = tc.start
		if moved := tc.move(l); moved != tc.moved {
			t.Fatalf("%s: expected moved=%v, got %v", tc.name, tc.moved, moved)
		}
		if l.Cursor != tc.want {
			t.Fatalf("%s: expected cursor %d, got %d", tc.name, tc.want, l.Cursor)
		}
	}
}

func TestMoveCursorOnEmptyLevelResets(t *testing.T) {
	l := newTestLevel()
	l.Cursor = 5
	if l.MoveCursorHome() || l.Cursor != 0 {
		t.Fatalf("expected home on empty level to reset cursor, got %d", l.Cursor)
	}
	l.Cursor = 3
	if l.MoveCursorEnd() || l.Cursor != 0 {
		t.Fatalf("expected end on empty level to reset cursor, got %d", l.Cursor)
	}
	if l.MoveCursorUp() {
		t.Fatalf("expected no movement up on empty level")
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	l.Cursor = -1
	l.EnsureCursorVisible(2)
	if l.Cursor != 0 || l.ViewportOffset != 0 {
		t.Fatalf("expected cursor and offset normalised to 0, got %d/%d", l.Cursor, l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset for an unbounded viewport, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.Cursor = 1
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", l.ViewportOffset)
	}
}

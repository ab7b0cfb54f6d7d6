package state

import (
	"testing"

	"github.com/atomicstack/menunav/internal/prompt"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	level := newTestLevel("one", "two", "three")
	level.Cursor = 2
	level.SetFilter("two", len("two"))

	if level.Filter != "two" {
		t.Fatalf("expected filter persisted, got %q", level.Filter)
	}
	if level.FilterCursor != len("two") {
		t.Fatalf("expected cursor at end, got %d", level.FilterCursor)
	}
	if level.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", level.Cursor)
	}
	if len(level.Items) != 1 || level.Items[0].Label != "two" || level.Items[0].Index != 1 {
		t.Fatalf("expected filtered items to contain only 'two', got %#v", level.Items)
	}

	level.SetFilter("", 0)
	if level.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", level.Cursor)
	}
	if level.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", level.LastCursor)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	level := newTestLevel("alpha")

	if !level.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if level.Filter != "ab" || level.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", level.Filter, level.FilterCursor)
	}

	level.FilterCursor = 1
	if !level.InsertFilterText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if level.Filter != "azb" || level.FilterCursor != 2 {
		t.Fatalf("unexpected filter state after middle insert %q/%d", level.Filter, level.FilterCursor)
	}

	if !level.DeleteFilterRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if level.Filter != "ab" || level.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", level.Filter, level.FilterCursor)
	}

	level.SetFilter("abc def", len("abc def"))
	if !level.DeleteFilterWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if level.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", level.Filter)
	}

	level.SetFilter("abc", 0)
	if level.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
}

func TestMoveFilterCursor(t *testing.T) {
	level := newTestLevel("one")
	level.SetFilter("on", 2)
	if level.MoveFilterCursor(1) {
		t.Fatal("expected no movement past the end")
	}
	if !level.MoveFilterCursor(-1) || level.FilterCursorPos() != 1 {
		t.Fatalf("expected cursor at 1, got %d", level.FilterCursorPos())
	}
	if !level.MoveFilterCursor(-5) || level.FilterCursorPos() != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", level.FilterCursorPos())
	}
}

func TestFilterItemsKeepsOriginalOrderAndIndexes(t *testing.T) {
	items := ItemsFromChoices([]prompt.Choice{
		{Title: "Git status"},
		{Title: "List files"},
		{Title: "Git log"},
		{Title: "Back"},
	})
	got := FilterItems(items, "git")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %#v", got)
	}
	if got[0].Index != 0 || got[1].Index != 2 {
		t.Fatalf("expected original indexes 0 and 2, got %#v", got)
	}
	if all := FilterItems(items, "  "); len(all) != 4 {
		t.Fatalf("expected blank query to keep all items, got %d", len(all))
	}
	if none := FilterItems(items, "zzz"); len(none) != 0 {
		t.Fatalf("expected no matches, got %#v", none)
	}
}

func TestBestMatchIndexPrefersExactThenPrefix(t *testing.T) {
	items := []Item{{Index: 0, Label: "Remote"}, {Index: 1, Label: "Re"}, {Index: 2, Label: "Rebase"}}
	if idx := BestMatchIndex(items, "re"); idx != 1 {
		t.Fatalf("expected exact match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "reb"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "x"); idx != -1 {
		t.Fatalf("expected -1 for no items, got %d", idx)
	}
}

package ui

import (
	"testing"

	"github.com/atomicstack/menunav/internal/prompt"
	tea "github.com/charmbracelet/bubbletea"
)

func newSelectModel(titles ...string) *Model {
	choices := make([]prompt.Choice, len(titles))
	for i, title := range titles {
		choices[i] = prompt.Choice{Title: title}
	}
	return NewModel(prompt.SelectRequest{
		Message: "Select an operation",
		Title:   "Main",
		Choices: choices,
	}, Options{})
}

func TestNewModelStartsCancelled(t *testing.T) {
	m := newSelectModel("Git", "Files")
	if m.Done() {
		t.Fatalf("expected fresh model to be running")
	}
	if got := m.Result(); got.Outcome != prompt.Cancelled || got.Index != -1 {
		t.Fatalf("expected cancelled result before submit, got %+v", got)
	}
	if m.currentLevel().Cursor != 0 {
		t.Fatalf("expected cursor on first item")
	}
}

func TestEnterSelectsOriginalIndexThroughFilter(t *testing.T) {
	h := NewHarness(newSelectModel("Git", "Files", "Greet"))
	h.Type("fil")
	h.Key(tea.KeyEnter)

	m := h.Model().(*Model)
	if !h.Quit() || !m.Done() {
		t.Fatalf("expected enter to finish the prompt")
	}
	if got := m.Result(); got.Outcome != prompt.Selected || got.Index != 1 {
		t.Fatalf("expected Files (index 1) selected, got %+v", got)
	}
}

func TestCtrlCCancels(t *testing.T) {
	h := NewHarness(newSelectModel("Git", "Files"))
	h.Key(tea.KeyDown)
	h.Key(tea.KeyCtrlC)

	m := h.Model().(*Model)
	if !h.Quit() {
		t.Fatalf("expected quit after ctrl+c")
	}
	if got := m.Result(); got.Outcome != prompt.Cancelled {
		t.Fatalf("expected cancelled result, got %+v", got)
	}
}

func TestUpdateIgnoredAfterDone(t *testing.T) {
	m := newSelectModel("Git", "Files")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.Result(); got.Index != 0 {
		t.Fatalf("expected result to stay at index 0, got %+v", got)
	}
}

func TestEnterWithNoMatchesKeepsPromptOpen(t *testing.T) {
	h := NewHarness(newSelectModel("Git"))
	h.Type("zzz")
	h.Key(tea.KeyEnter)

	m := h.Model().(*Model)
	if h.Quit() || m.Done() {
		t.Fatalf("expected prompt to stay open")
	}
	if m.errMsg == "" {
		t.Fatalf("expected an error message for empty selection")
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	m := NewModel(prompt.SelectRequest{Choices: []prompt.Choice{{Title: "a"}}}, Options{Width: 30})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	if m.width != 30 {
		t.Fatalf("expected fixed width 30, got %d", m.width)
	}
	if m.height != 10 {
		t.Fatalf("expected height from resize, got %d", m.height)
	}
}

package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/menunav/internal/prompt"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func minLength(n int) prompt.Validator {
	return func(value string) error {
		if len(value) < n {
			return errors.New("too short")
		}
		return nil
	}
}

func TestInputSubmitsValue(t *testing.T) {
	h := NewHarness(NewInputModel(prompt.InputRequest{Name: "NAME", Message: "Your name"}, Options{}))
	h.Type("Ada")
	h.Key(tea.KeyEnter)

	f := h.Model().(*InputModel)
	if !h.Quit() || !f.Done() || f.Cancelled() {
		t.Fatalf("expected submitted prompt")
	}
	if f.Value() != "Ada" {
		t.Fatalf("expected Ada, got %q", f.Value())
	}
}

func TestInputRejectsInvalidSubmit(t *testing.T) {
	h := NewHarness(NewInputModel(prompt.InputRequest{Name: "NAME", Validate: minLength(3)}, Options{}))
	h.Type("A")
	f := h.Model().(*InputModel)
	if f.Error() != "too short" {
		t.Fatalf("expected live validation message, got %q", f.Error())
	}
	h.Key(tea.KeyEnter)
	if h.Quit() || f.Done() {
		t.Fatalf("expected prompt to stay open on invalid value")
	}
	if !strings.Contains(ansi.Strip(h.View()), "too short") {
		t.Fatalf("expected error in view, got:\n%s", h.View())
	}
	h.Type("da")
	if f.Error() != "" {
		t.Fatalf("expected error cleared, got %q", f.Error())
	}
	h.Key(tea.KeyEnter)
	if !f.Done() || f.Value() != "Ada" {
		t.Fatalf("expected Ada submitted, got done=%v value=%q", f.Done(), f.Value())
	}
}

func TestInputEscapeCancels(t *testing.T) {
	h := NewHarness(NewInputModel(prompt.InputRequest{Name: "NAME"}, Options{}))
	h.Type("x")
	h.Key(tea.KeyEsc)
	f := h.Model().(*InputModel)
	if !h.Quit() || !f.Cancelled() {
		t.Fatalf("expected cancelled prompt")
	}
	if h.View() != "" {
		t.Fatalf("expected empty view after cancel, got %q", h.View())
	}
}

func TestInputInitialValueAndMessageFallback(t *testing.T) {
	f := NewInputModel(prompt.InputRequest{Name: "DIR", Initial: "/tmp"}, Options{})
	if f.Value() != "/tmp" {
		t.Fatalf("expected initial value, got %q", f.Value())
	}
	if !strings.Contains(ansi.Strip(f.View()), "DIR") {
		t.Fatalf("expected name used as message, got:\n%s", f.View())
	}
}

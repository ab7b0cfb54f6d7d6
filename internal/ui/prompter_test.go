package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/atomicstack/menunav/internal/prompt"
)

func TestPrompterSelectReadsEnter(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(WithIO(strings.NewReader("\r"), &out))
	result, err := p.Select(context.Background(), prompt.SelectRequest{
		Message: "Select an operation",
		Choices: []prompt.Choice{{Title: "Git"}, {Title: "Files"}},
	})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if result.Outcome != prompt.Selected || result.Index != 0 {
		t.Fatalf("expected first choice, got %+v", result)
	}
}

func TestPrompterInputReturnsText(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(WithIO(strings.NewReader("Ada\r"), &out))
	value, err := p.Input(context.Background(), prompt.InputRequest{Name: "NAME"})
	if err != nil {
		t.Fatalf("input: %v", err)
	}
	if value != "Ada" {
		t.Fatalf("expected Ada, got %q", value)
	}
}

func TestPrompterHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPrompter(WithIO(strings.NewReader(""), &bytes.Buffer{}))
	if _, err := p.Select(ctx, prompt.SelectRequest{Choices: []prompt.Choice{{Title: "a"}}}); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}

// Package prompt defines the contract between the menu navigator and the
// interactive renderer that draws prompts on the terminal.
package prompt

import (
	"context"

	"github.com/cockroachdb/errors"
)

// ErrCancelled is returned by Input when the user dismisses the prompt with
// Esc or Ctrl+C instead of submitting a value.
var ErrCancelled = errors.New("prompt cancelled")

// Outcome tags the result of a select prompt.
type Outcome int

const (
	Selected Outcome = iota
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Selected:
		return "selected"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Choice is a single entry in a select prompt.
type Choice struct {
	Title string
	Value any
}

// Result is returned by Select. Index is only meaningful when Outcome is
// Selected and refers to the request's Choices slice.
type Result struct {
	Outcome Outcome
	Index   int
}

// SelectedAt builds a Result for the choice at idx.
func SelectedAt(idx int) Result {
	return Result{Outcome: Selected, Index: idx}
}

// Cancel builds a cancelled Result.
func Cancel() Result {
	return Result{Outcome: Cancelled, Index: -1}
}

// SelectRequest describes a single-select prompt.
type SelectRequest struct {
	Message string
	Title   string
	Choices []Choice
}

// Validator checks a value typed into an input prompt. A nil error accepts
// the value; otherwise the error text is shown and the user is re-prompted.
type Validator func(string) error

// InputRequest describes a free-text prompt.
type InputRequest struct {
	Name        string
	Message     string
	Placeholder string
	Initial     string
	Validate    Validator
}

// Prompter renders prompts and blocks until the user answers or cancels.
type Prompter interface {
	Select(ctx context.Context, req SelectRequest) (Result, error)
	Input(ctx context.Context, req InputRequest) (string, error)
}

// Screen clears the visible terminal area.
type Screen interface {
	Clear() error
}

// IsCancelled reports whether err signals a cancelled prompt.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

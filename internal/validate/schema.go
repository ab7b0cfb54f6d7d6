// Package validate turns schema safe-parse results into the validator hook
// used by input prompts.
//
// A Schema never panics: every non-conformance is reported as an ordered list
// of issues. Check and Func collapse that list into a single error whose text
// is the issue messages joined by newlines, which is what the prompt renderer
// shows under the input field.
package validate

import (
	"strings"

	"github.com/atomicstack/menunav/internal/prompt"
)

// Issue is a single reported problem with a value.
type Issue struct {
	Path    string
	Code    string
	Message string
}

// Result is the outcome of a safe parse.
type Result struct {
	Success bool
	Issues  []Issue
}

// Schema validates values without raising.
type Schema interface {
	SafeParse(value any) Result
}

// IssuesError carries the issues of a failed parse.
type IssuesError struct {
	Issues []Issue
}

func (e *IssuesError) Error() string {
	messages := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		messages = append(messages, issue.Message)
	}
	return strings.Join(messages, "\n")
}

// Check runs the schema against value. It returns nil when the value
// conforms, otherwise an *IssuesError listing every issue in the order the
// schema reported them.
func Check(schema Schema, value any) error {
	if schema == nil {
		return nil
	}
	result := schema.SafeParse(value)
	if result.Success {
		return nil
	}
	issues := make([]Issue, len(result.Issues))
	copy(issues, result.Issues)
	return &IssuesError{Issues: issues}
}

// Func adapts schema to the validator hook expected by input prompts.
func Func(schema Schema) prompt.Validator {
	return func(value string) error {
		return Check(schema, value)
	}
}

package ui

import (
	"strings"

	"github.com/atomicstack/menunav/internal/logging/events"
	"github.com/atomicstack/menunav/internal/prompt"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const inputCharLimit = 256

// InputModel is the Bubble Tea model behind Prompter.Input.
type InputModel struct {
	name     string
	message  string
	input    textinput.Model
	validate prompt.Validator
	err      string
	width    int

	done      bool
	cancelled bool
}

// NewInputModel prepares a text prompt for req.
func NewInputModel(req prompt.InputRequest, opts Options) *InputModel {
	ti := textinput.New()
	ti.Placeholder = req.Placeholder
	ti.CharLimit = inputCharLimit
	ti.Prompt = "» "
	if styles.FilterPrompt != nil {
		ti.PromptStyle = styles.FilterPrompt.Copy()
	}
	if styles.FilterPlaceholder != nil {
		ti.PlaceholderStyle = styles.FilterPlaceholder.Copy()
	}
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(req.Initial)
	ti.CursorEnd()
	ti.Focus()
	message := req.Message
	if strings.TrimSpace(message) == "" {
		message = req.Name
	}
	f := &InputModel{
		name:     req.Name,
		message:  message,
		input:    ti,
		validate: req.Validate,
		width:    opts.Width,
	}
	if req.Initial != "" {
		f.err = f.check()
	}
	return f
}

// Init is part of the tea.Model interface.
func (f *InputModel) Init() tea.Cmd {
	return nil
}

// Update handles submit and cancel keys and forwards everything else to the
// text input, re-running the validator whenever the value changes.
func (f *InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if f.done {
		return f, nil
	}
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "ctrl+c":
			return f, f.cancel(events.PromptReasonInterrupt)
		case "esc":
			return f, f.cancel(events.PromptReasonEscape)
		case "enter":
			if problem := f.check(); problem != "" {
				f.err = problem
				events.Prompt.Invalid(f.name, problem)
				return f, nil
			}
			f.err = ""
			f.done = true
			events.Prompt.Submit(f.name)
			return f, tea.Quit
		}
	case tea.WindowSizeMsg:
		f.width = m.Width
		return f, nil
	}
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() != before {
		f.err = f.check()
	}
	return f, cmd
}

func (f *InputModel) cancel(reason events.PromptReason) tea.Cmd {
	events.Prompt.Cancel(f.name, reason)
	f.cancelled = true
	f.done = true
	return tea.Quit
}

func (f *InputModel) check() string {
	if f.validate == nil {
		return ""
	}
	if err := f.validate(f.input.Value()); err != nil {
		return err.Error()
	}
	return ""
}

// View implements tea.Model.
func (f *InputModel) View() string {
	if f.done {
		if f.cancelled {
			return ""
		}
		line := render(styles.Message, f.message) + " " + render(styles.Answer, f.input.Value())
		return truncateText(line, f.width) + "\n"
	}
	lines := []string{
		truncateText(render(styles.Message, f.message), f.width),
		f.input.View(),
	}
	if f.err != "" {
		for _, line := range strings.Split(f.err, "\n") {
			lines = append(lines, truncateText(render(styles.Error, line), f.width))
		}
	}
	return strings.Join(lines, "\n")
}

// Value returns the current text.
func (f *InputModel) Value() string {
	return f.input.Value()
}

// Error returns the validation message currently shown.
func (f *InputModel) Error() string {
	return f.err
}

// Cancelled reports whether the prompt ended with esc or ctrl+c.
func (f *InputModel) Cancelled() bool {
	return f.cancelled
}

// Done reports whether the prompt has finished.
func (f *InputModel) Done() bool {
	return f.done
}

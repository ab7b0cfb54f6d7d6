package ui

import (
	"context"
	"io"
	"os"

	"github.com/atomicstack/menunav/internal/prompt"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
)

// Prompter renders prompts as short-lived Bubble Tea programs. Each call
// owns the terminal until the user answers or cancels.
type Prompter struct {
	in   io.Reader
	out  io.Writer
	opts Options
}

// PrompterOption configures a Prompter.
type PrompterOption func(*Prompter)

// WithIO overrides the program input and output, which default to the
// process stdin and stdout.
func WithIO(in io.Reader, out io.Writer) PrompterOption {
	return func(p *Prompter) {
		if in != nil {
			p.in = in
		}
		if out != nil {
			p.out = out
		}
	}
}

// WithOptions sets the layout options for every prompt.
func WithOptions(opts Options) PrompterOption {
	return func(p *Prompter) { p.opts = opts }
}

// NewPrompter creates a terminal prompter.
func NewPrompter(opts ...PrompterOption) *Prompter {
	p := &Prompter{in: os.Stdin, out: os.Stdout}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ prompt.Prompter = (*Prompter)(nil)

// Select shows the choices and returns the picked index, or a cancelled
// result when the user pressed esc or ctrl+c.
func (p *Prompter) Select(ctx context.Context, req prompt.SelectRequest) (prompt.Result, error) {
	final, err := p.run(ctx, NewModel(req, p.opts))
	if err != nil {
		return prompt.Cancel(), errors.Wrap(err, "select prompt")
	}
	model, ok := final.(*Model)
	if !ok {
		return prompt.Cancel(), errors.AssertionFailedf("ui: unexpected select model %T", final)
	}
	return model.Result(), nil
}

// Input asks for a line of text. A cancelled prompt returns
// prompt.ErrCancelled.
func (p *Prompter) Input(ctx context.Context, req prompt.InputRequest) (string, error) {
	final, err := p.run(ctx, NewInputModel(req, p.opts))
	if err != nil {
		return "", errors.Wrapf(err, "input prompt %q", req.Name)
	}
	model, ok := final.(*InputModel)
	if !ok {
		return "", errors.AssertionFailedf("ui: unexpected input model %T", final)
	}
	if model.Cancelled() || !model.Done() {
		return "", prompt.ErrCancelled
	}
	return model.Value(), nil
}

func (p *Prompter) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	final, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	return final, nil
}

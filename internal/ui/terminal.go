package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

// Terminal clears the screen between prompts.
type Terminal struct {
	out io.Writer
}

// NewTerminal returns a screen writing to out, or stdout when out is nil.
func NewTerminal(out io.Writer) *Terminal {
	if out == nil {
		out = os.Stdout
	}
	return &Terminal{out: out}
}

// Clear erases the screen and homes the cursor. Output that is not a
// terminal is left alone so piped transcripts stay readable.
func (t *Terminal) Clear() error {
	if f, ok := t.out.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	if _, err := io.WriteString(t.out, ansi.EraseEntireScreen+ansi.CursorHomePosition); err != nil {
		return errors.Wrap(err, "clear screen")
	}
	return nil
}

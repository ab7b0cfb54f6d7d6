package app

import (
	"context"
	"io"
	"os"
	"strconv"

	"github.com/atomicstack/menunav/internal/format/table"
	"github.com/atomicstack/menunav/internal/menu"
	"github.com/atomicstack/menunav/internal/nav"
	"github.com/atomicstack/menunav/internal/prompt"
	"github.com/atomicstack/menunav/internal/ui"
	"github.com/cockroachdb/errors"
)

// Config describes user-provided application options.
type Config struct {
	MenuFile    string `validate:"omitempty,menufile"`
	RootPath    string
	Message     string
	ClearScreen bool
	ShowFooter  bool
	Width       int `validate:"gte=0"`
	Height      int `validate:"gte=0"`
	List        bool
}

// Deps lets callers replace the terminal pieces, mainly for tests. Zero
// values select the Bubble Tea prompter and the real terminal on stdio.
type Deps struct {
	Prompter prompt.Prompter
	Screen   prompt.Screen
	In       io.Reader
	Out      io.Writer
	ErrOut   io.Writer
	Environ  []string
}

func (d Deps) withDefaults(cfg Config) Deps {
	if d.In == nil {
		d.In = os.Stdin
	}
	if d.Out == nil {
		d.Out = os.Stdout
	}
	if d.ErrOut == nil {
		d.ErrOut = os.Stderr
	}
	if d.Environ == nil {
		d.Environ = os.Environ()
	}
	if d.Prompter == nil {
		d.Prompter = ui.NewPrompter(
			ui.WithIO(d.In, d.Out),
			ui.WithOptions(ui.Options{Width: cfg.Width, Height: cfg.Height, ShowFooter: cfg.ShowFooter}),
		)
	}
	if d.Screen == nil {
		d.Screen = ui.NewTerminal(d.Out)
	}
	return d
}

// Run loads the menu tree and drives the navigator until the user leaves.
// Leaving through two consecutive cancellations is not an error.
func Run(ctx context.Context, cfg Config, deps Deps) error {
	deps = deps.withDefaults(cfg)
	session := nav.New(deps.Prompter,
		nav.WithScreen(deps.Screen),
		nav.WithClearScreen(cfg.ClearScreen),
		nav.WithOutput(deps.Out),
		nav.WithMessage(cfg.Message),
	)
	opts := []menu.Option{
		menu.WithPrompter(session.Prompter()),
		menu.WithStdio(deps.In, deps.Out, deps.ErrOut),
		menu.WithEnviron(deps.Environ),
	}
	root, err := loadMenu(cfg.MenuFile, opts)
	if err != nil {
		return err
	}
	start, err := menu.Resolve(root, cfg.RootPath)
	if err != nil {
		return errors.Wrap(err, "resolve root menu")
	}
	if cfg.List {
		return writeMenuTable(deps.Out, start)
	}
	return session.Run(ctx, start)
}

// writeMenuTable prints every submenu path below root with its display name
// and entry counts, in display order.
func writeMenuTable(w io.Writer, root *menu.Menu) error {
	rows := [][]string{{"", root.Name, strconv.Itoa(root.Submenus.Len()), strconv.Itoa(len(root.Items))}}
	for _, path := range menu.Paths(root) {
		m, err := menu.Resolve(root, path)
		if err != nil {
			return err
		}
		rows = append(rows, []string{path, m.Name, strconv.Itoa(m.Submenus.Len()), strconv.Itoa(len(m.Items))})
	}
	return table.Write(w,
		[]string{"PATH", "NAME", "SUBMENUS", "ACTIONS"},
		rows,
		[]table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight, table.AlignRight},
	)
}

func loadMenu(path string, opts []menu.Option) (*menu.Menu, error) {
	if path == "" {
		root, err := menu.Builtin(opts...)
		return root, errors.Wrap(err, "load built-in menu")
	}
	return menu.LoadFile(path, opts...)
}

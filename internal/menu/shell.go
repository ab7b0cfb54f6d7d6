package menu

import (
	"context"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

type stdio struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

type script struct {
	name string
	src  string
	dir  string
	env  []string
}

// runScript interprets s in-process. A non-zero exit status is reported as an
// error carrying the status.
func runScript(ctx context.Context, s script, std stdio) error {
	file, err := syntax.NewParser().Parse(strings.NewReader(s.src), s.name)
	if err != nil {
		return errors.Wrapf(err, "parse %q", s.name)
	}
	opts := []interp.RunnerOption{
		interp.StdIO(std.in, std.out, std.err),
		interp.Env(expand.ListEnviron(s.env...)),
	}
	if strings.TrimSpace(s.dir) != "" {
		opts = append(opts, interp.Dir(s.dir))
	}
	runner, err := interp.New(opts...)
	if err != nil {
		return errors.Wrapf(err, "prepare %q", s.name)
	}
	if err := runner.Run(ctx, file); err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return errors.Newf("%s: exit status %d", s.name, status)
		}
		return errors.Wrapf(err, "run %q", s.name)
	}
	return nil
}

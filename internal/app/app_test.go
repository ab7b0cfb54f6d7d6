package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/menunav/internal/nav"
	"github.com/atomicstack/menunav/internal/prompt"
	"github.com/stretchr/testify/require"
)

type picksPrompter struct {
	picks  []string
	input  string
	titles []string
}

func (p *picksPrompter) Select(_ context.Context, req prompt.SelectRequest) (prompt.Result, error) {
	p.titles = append(p.titles, req.Title)
	if len(p.picks) == 0 {
		return prompt.Cancel(), nil
	}
	next := p.picks[0]
	p.picks = p.picks[1:]
	for i, c := range req.Choices {
		if c.Title == next {
			return prompt.SelectedAt(i), nil
		}
	}
	return prompt.Cancel(), nil
}

func (p *picksPrompter) Input(context.Context, prompt.InputRequest) (string, error) {
	return p.input, nil
}

type nopScreen struct{}

func (nopScreen) Clear() error { return nil }

func testDeps(p prompt.Prompter, out *bytes.Buffer) Deps {
	return Deps{
		Prompter: p,
		Screen:   nopScreen{},
		In:       strings.NewReader(""),
		Out:      out,
		ErrOut:   out,
		Environ:  []string{"HOME=/tmp"},
	}
}

func TestRunBuiltinMenuExitsOnDoubleCancel(t *testing.T) {
	var out bytes.Buffer
	p := &picksPrompter{}
	err := Run(context.Background(), Config{ClearScreen: true}, testDeps(p, &out))
	require.NoError(t, err)
	require.Equal(t, nav.Farewell+"\n", out.String())
	require.Equal(t, []string{"Main Menu", "Main Menu"}, p.titles)
}

func TestRunBuiltinGreetUsesInput(t *testing.T) {
	var out bytes.Buffer
	p := &picksPrompter{picks: []string{"Greet"}, input: "Ada"}
	err := Run(context.Background(), Config{}, testDeps(p, &out))
	require.NoError(t, err)
	require.Contains(t, out.String(), "Hello, Ada!")
}

func TestRunStartsAtRootPath(t *testing.T) {
	var out bytes.Buffer
	p := &picksPrompter{}
	err := Run(context.Background(), Config{RootPath: "files"}, testDeps(p, &out))
	require.NoError(t, err)
	require.Equal(t, "Files", p.titles[0])
}

func TestRunRejectsUnknownRootPath(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Config{RootPath: "nope"}, testDeps(&picksPrompter{}, &out))
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown menu "nope"`)
}

func TestRunLoadsMenuFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.toml")
	def := `name = "Tools"

[[items]]
name = "Say hi"
run = "echo hi from toml"
`
	require.NoError(t, os.WriteFile(path, []byte(def), 0o600))

	var out bytes.Buffer
	p := &picksPrompter{picks: []string{"Say hi"}}
	err := Run(context.Background(), Config{MenuFile: path}, testDeps(p, &out))
	require.NoError(t, err)
	require.Contains(t, out.String(), "hi from toml")
	require.Equal(t, "Tools", p.titles[0])
}

func TestRunReportsFailingAction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	def := "name: Broken\nitems:\n  - name: Fail\n    run: exit 3\n"
	require.NoError(t, os.WriteFile(path, []byte(def), 0o600))

	var out bytes.Buffer
	err := Run(context.Background(), Config{MenuFile: path}, testDeps(&picksPrompter{picks: []string{"Fail"}}, &out))
	require.Error(t, err)
	require.Contains(t, err.Error(), "exit status 3")
}

func TestRunListPrintsMenuTable(t *testing.T) {
	var out bytes.Buffer
	p := &picksPrompter{}
	err := Run(context.Background(), Config{List: true}, testDeps(p, &out))
	require.NoError(t, err)
	require.Empty(t, p.titles)
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[0], "PATH"))
	require.Contains(t, lines[1], "Main Menu")
	require.True(t, strings.HasPrefix(lines[2], "system"))
	require.True(t, strings.HasPrefix(lines[3], "files"))
}

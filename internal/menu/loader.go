package menu

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/atomicstack/menunav/internal/logging/events"
	"github.com/atomicstack/menunav/internal/prompt"
	"github.com/atomicstack/menunav/internal/validate"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Format names a menu definition encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Definition is the on-disk shape of a menu.
type Definition struct {
	Key      string           `yaml:"key" toml:"key" validate:"excludes=:"`
	Name     string           `yaml:"name" toml:"name" validate:"required"`
	Submenus []Definition     `yaml:"submenus" toml:"submenus" validate:"dive"`
	Items    []ItemDefinition `yaml:"items" toml:"items" validate:"dive"`
}

// ItemDefinition describes an action backed by a shell snippet.
type ItemDefinition struct {
	Name   string            `yaml:"name" toml:"name" validate:"required"`
	Run    string            `yaml:"run" toml:"run" validate:"required"`
	Dir    string            `yaml:"dir" toml:"dir"`
	Env    map[string]string `yaml:"env" toml:"env" validate:"dive,keys,shellvar,endkeys"`
	Inputs []InputDefinition `yaml:"inputs" toml:"inputs" validate:"dive"`
}

// InputDefinition describes a value asked for before the snippet runs. The
// answer is exported to the snippet as the variable Name.
type InputDefinition struct {
	Name        string          `yaml:"name" toml:"name" validate:"required,shellvar"`
	Message     string          `yaml:"message" toml:"message"`
	Placeholder string          `yaml:"placeholder" toml:"placeholder"`
	Default     string          `yaml:"default" toml:"default"`
	Rules       []validate.Rule `yaml:"rules" toml:"rules" validate:"dive"`
}

var shellVarPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var definitionSchema = validate.Struct(
	validate.WithValidation("shellvar", func(fl validator.FieldLevel) bool {
		return shellVarPattern.MatchString(fl.Field().String())
	}, "{field} must be a valid shell variable name"),
	validate.WithMessage("excludes", "{field} must not contain {param}"),
)

// Option configures how definitions become runnable menus.
type Option func(*builder)

// WithPrompter supplies the prompter used to ask for item inputs.
func WithPrompter(p prompt.Prompter) Option {
	return func(b *builder) { b.prompter = p }
}

// WithStdio routes snippet input and output.
func WithStdio(in io.Reader, out, errOut io.Writer) Option {
	return func(b *builder) {
		b.stdio = stdio{in: in, out: out, err: errOut}
	}
}

// WithEnviron sets the base environment handed to snippets.
func WithEnviron(environ []string) Option {
	return func(b *builder) { b.environ = append([]string(nil), environ...) }
}

type builder struct {
	prompter prompt.Prompter
	stdio    stdio
	environ  []string
}

func newBuilder(opts []Option) *builder {
	b := &builder{
		stdio:   stdio{in: os.Stdin, out: os.Stdout, err: os.Stderr},
		environ: os.Environ(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FormatForPath infers the definition format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Newf("unsupported menu file extension %q", filepath.Ext(path))
	}
}

// LoadFile reads a TOML or YAML definition and builds the menu tree.
func LoadFile(path string, opts ...Option) (*Menu, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read menu file")
	}
	root, err := Load(bytes.NewReader(data), format, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	events.Menu.Load(path, string(format), len(Paths(root)))
	return root, nil
}

// Load decodes a definition from r and builds the menu tree.
func Load(r io.Reader, format Format, opts ...Option) (*Menu, error) {
	var def Definition
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&def); err != nil {
			return nil, errors.Wrap(err, "decode toml")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, errors.Wrap(err, "decode yaml")
		}
	default:
		return nil, errors.Newf("unknown menu format %q", format)
	}
	return Build(def, opts...)
}

// Build validates def and turns it into a runnable menu tree.
func Build(def Definition, opts ...Option) (*Menu, error) {
	if err := validate.Check(definitionSchema, def); err != nil {
		return nil, errors.Wrap(err, "invalid menu definition")
	}
	return newBuilder(opts).menu(def, def.Name)
}

func (b *builder) menu(def Definition, trail string) (*Menu, error) {
	m := New(def.Name)
	for _, subDef := range def.Submenus {
		key := strings.TrimSpace(subDef.Key)
		if key == "" {
			key = keyFromName(subDef.Name)
		}
		if key == "" {
			return nil, errors.Newf("menu %q: submenu %q has an empty key", trail, subDef.Name)
		}
		if _, exists := m.Submenus.Get(key); exists {
			return nil, errors.Newf("menu %q: duplicate submenu key %q", trail, key)
		}
		sub, err := b.menu(subDef, trail+" > "+subDef.Name)
		if err != nil {
			return nil, err
		}
		m.AddSubmenu(key, sub)
	}
	for _, item := range def.Items {
		m.Items = append(m.Items, b.action(item))
	}
	if !m.HasEntries() {
		return nil, errors.Newf("menu %q has no submenus or items", trail)
	}
	return m, nil
}

func (b *builder) action(def ItemDefinition) Action {
	return Action{
		Name: def.Name,
		Run: func(ctx context.Context) error {
			env := append([]string(nil), b.environ...)
			env = append(env, sortedEnv(def.Env)...)
			for _, input := range def.Inputs {
				value, err := b.ask(ctx, def.Name, input)
				if err != nil {
					return err
				}
				env = append(env, input.Name+"="+value)
			}
			return runScript(ctx, script{
				name: def.Name,
				src:  def.Run,
				dir:  def.Dir,
				env:  env,
			}, b.stdio)
		},
	}
}

func (b *builder) ask(ctx context.Context, item string, input InputDefinition) (string, error) {
	if b.prompter == nil {
		return "", errors.Newf("%s: input %s requested but no prompter is configured", item, input.Name)
	}
	message := input.Message
	if message == "" {
		message = input.Name
	}
	req := prompt.InputRequest{
		Name:        input.Name,
		Message:     message,
		Placeholder: input.Placeholder,
		Initial:     input.Default,
	}
	if len(input.Rules) > 0 {
		req.Validate = validate.Func(validate.Rules(input.Rules...))
	}
	value, err := b.prompter.Input(ctx, req)
	if err != nil {
		return "", errors.Wrapf(err, "input %s", input.Name)
	}
	return value, nil
}

func sortedEnv(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+env[k])
	}
	return out
}

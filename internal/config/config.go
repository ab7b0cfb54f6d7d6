package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/menunav/internal/app"
	"github.com/atomicstack/menunav/internal/menu"
	"github.com/atomicstack/menunav/internal/validate"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envMenuFile   = "MENUNAV_MENU"
	envRoot       = "MENUNAV_ROOT"
	envNoClear    = "MENUNAV_NO_CLEAR"
	envShowFooter = "MENUNAV_FOOTER"
	envMessage    = "MENUNAV_MESSAGE"
	envWidth      = "MENUNAV_WIDTH"
	envHeight     = "MENUNAV_HEIGHT"
	envTrace      = "MENUNAV_TRACE"
	envLogFile    = "MENUNAV_LOG_FILE"
	envList       = "MENUNAV_LIST"
)

type flagValues struct {
	menuFile *string
	root     *string
	noClear  *bool
	footer   *bool
	message  *string
	width    *int
	height   *int
	trace    *bool
	logFile  *string
	list     *bool
}

func defineFlags(fs *pflag.FlagSet, env map[string]string) flagValues {
	return flagValues{
		menuFile: fs.StringP("menu", "m", envOrDefault(env, envMenuFile, ""), "menu definition file (.toml, .yaml or .yml); the built-in demo menu is used when empty"),
		root:     fs.StringP("root", "r", envOrDefault(env, envRoot, ""), "start in the submenu at this colon-separated key path"),
		noClear:  fs.Bool("no-clear", envOrBool(env, envNoClear, false), "do not clear the screen when entering a submenu or running an action"),
		footer:   fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)"),
		message:  fs.String("message", envOrDefault(env, envMessage, ""), "question shown above every menu"),
		width:    fs.Int("width", envOrInt(env, envWidth, 0), "desired prompt width in cells (0 uses terminal width)"),
		height:   fs.Int("height", envOrInt(env, envHeight, 0), "desired prompt height in rows (0 uses terminal height)"),
		trace:    fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:  fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
		list:     fs.BoolP("list", "l", envOrBool(env, envList, false), "print the submenu paths of the menu tree and exit"),
	}
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. A single
// positional argument is taken as the menu file when --menu is not set.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("menunav", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	v := defineFlags(fs, parseEnv(environ))

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Config{}, err
		}
		return Config{}, errors.Wrap(err, "parse flags")
	}
	switch rest := fs.Args(); {
	case len(rest) == 1 && *v.menuFile == "":
		*v.menuFile = rest[0]
	case len(rest) > 0:
		return Config{}, errors.Newf("unexpected arguments: %s", strings.Join(rest, " "))
	}

	cfg := Config{
		App: app.Config{
			MenuFile:    *v.menuFile,
			RootPath:    *v.root,
			Message:     *v.message,
			ClearScreen: !*v.noClear,
			ShowFooter:  *v.footer,
			Width:       *v.width,
			Height:      *v.height,
			List:        *v.list,
		},
		Logging: Logging{
			FilePath: *v.logFile,
			Trace:    *v.trace,
		},
		Flags: map[string]string{
			"menu":     *v.menuFile,
			"root":     *v.root,
			"no-clear": strconv.FormatBool(*v.noClear),
			"footer":   strconv.FormatBool(*v.footer),
			"message":  *v.message,
			"width":    strconv.Itoa(*v.width),
			"height":   strconv.Itoa(*v.height),
			"list":     strconv.FormatBool(*v.list),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// Usage renders the flag help text.
func Usage() string {
	fs := pflag.NewFlagSet("menunav", pflag.ContinueOnError)
	defineFlags(fs, nil)
	return "Usage: menunav [flags] [menu-file]\n\n" + fs.FlagUsages()
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Fprint(os.Stdout, Usage())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

var schema = validate.Struct(
	validate.WithValidation("menufile", menuFileExtension, "{field} must end in .toml, .yaml or .yml"),
	validate.WithMessage("gte", "{field} must be >= {param}"),
)

func menuFileExtension(fl validator.FieldLevel) bool {
	_, err := menu.FormatForPath(fl.Field().String())
	return err == nil
}

// Validate ensures the configuration is usable before the menu is loaded.
func Validate(cfg Config) error {
	if err := validate.Check(schema, cfg.App); err != nil {
		return err
	}
	if cfg.Logging.FilePath != "" {
		if info, err := os.Stat(cfg.Logging.FilePath); err == nil && info.IsDir() {
			return errors.Newf("log file %s is a directory", filepath.Clean(cfg.Logging.FilePath))
		}
	}
	return nil
}

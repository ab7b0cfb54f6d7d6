package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atomicstack/menunav/internal/app"
	"github.com/atomicstack/menunav/internal/config"
	"github.com/atomicstack/menunav/internal/logging"
	"github.com/atomicstack/menunav/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	err := app.Run(ctx, runtimeCfg.App, app.Deps{})
	stop()
	if err != nil {
		logging.Error(err)
		events.App.Stop("error")
		logging.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	events.App.Stop("exit")
	logging.Sync()
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Interactive bool       `json:"interactive"`
	Size        *ttySize   `json:"size,omitempty"`
	Probes      []ttyProbe `json:"probes"`
}

type ttySize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbe struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Error    string `json:"error,omitempty"`
}

// collectTTYDetails records which standard descriptors are terminals and
// the first size reported. Prompts need stdin and stdout to be terminals.
func collectTTYDetails() ttyDetails {
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	details := ttyDetails{Probes: make([]ttyProbe, 0, len(files))}
	for i, f := range files {
		probe := ttyProbe{Name: names[i]}
		fd := int(f.Fd())
		probe.Terminal = fd >= 0 && term.IsTerminal(fd)
		if probe.Terminal && details.Size == nil {
			if width, height, err := term.GetSize(fd); err == nil {
				details.Size = &ttySize{Source: names[i], Width: width, Height: height}
			} else {
				probe.Error = err.Error()
			}
		}
		details.Probes = append(details.Probes, probe)
	}
	details.Interactive = details.Probes[0].Terminal && details.Probes[1].Terminal
	return details
}

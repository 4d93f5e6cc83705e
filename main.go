package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/flyout/internal/app"
	"github.com/atomicstack/flyout/internal/config"
	"github.com/atomicstack/flyout/internal/logging"
	"github.com/atomicstack/flyout/internal/logging/events"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	if logging.TraceEnabled() {
		events.App.Start(startupTracePayload(cfg))
	}

	if cfg.App.List {
		if err := app.List(cfg.App, os.Stdout); err != nil {
			fail(err)
		}
		return
	}

	result, err := app.Run(cfg.App)
	if err != nil {
		fail(err)
	}
	if result.Activated {
		fmt.Println(result.Link.URL)
	}
}

func fail(err error) {
	logging.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// startupTracePayload records how the process was invoked.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"tty":    probeTerminal(),
	}
	record := func(key string, value string, err error) {
		if err != nil {
			payload[key+"Error"] = err.Error()
			return
		}
		payload[key] = value
	}
	exe, err := os.Executable()
	record("executable", exe, err)
	cwd, err := os.Getwd()
	record("cwd", cwd, err)
	return payload
}

package config

import (
	"errors"
	"testing"

	"github.com/atomicstack/flyout/internal/nav"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.MaxPanes != nav.DefaultMaxPanes {
		t.Fatalf("expected max panes %d, got %d", nav.DefaultMaxPanes, cfg.App.MaxPanes)
	}
	if cfg.App.LinksPath != "" || cfg.App.Watch || cfg.App.ShowFooter {
		t.Fatalf("unexpected defaults %#v", cfg.App)
	}
}

func TestLoadArgsFlags(t *testing.T) {
	args := []string{"--links", "links.yaml", "--width", "90", "--max-panes", "0", "--show-path", "--copy", "--watch", "--title", "Docs"}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.LinksPath != "links.yaml" || cfg.App.Width != 90 || cfg.App.MaxPanes != 0 {
		t.Fatalf("unexpected app config %#v", cfg.App)
	}
	if !cfg.App.ShowPath || !cfg.App.Copy || !cfg.App.Watch || cfg.App.Title != "Docs" {
		t.Fatalf("unexpected app config %#v", cfg.App)
	}
	if cfg.Flags["maxPanes"] != "0" || cfg.Flags["links"] != "links.yaml" {
		t.Fatalf("unexpected flags %#v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args recorded, got %v", cfg.Args)
	}
}

func TestLoadArgsEnvironmentFallbacks(t *testing.T) {
	env := []string{"FLYOUT_LINKS=/tmp/l.yaml", "FLYOUT_FOOTER=true", "FLYOUT_HEIGHT=30", "FLYOUT_TRACE=1", "FLYOUT_WIDTH=bogus"}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.LinksPath != "/tmp/l.yaml" || !cfg.App.ShowFooter || cfg.App.Height != 30 {
		t.Fatalf("unexpected app config %#v", cfg.App)
	}
	if cfg.App.Width != 0 {
		t.Fatalf("expected unparsable width to fall back to 0, got %d", cfg.App.Width)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from environment")
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"--links", "b.yaml"}, []string{"FLYOUT_LINKS=a.yaml"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.LinksPath != "b.yaml" {
		t.Fatalf("expected flag to win, got %q", cfg.App.LinksPath)
	}
}

func TestLoadArgsRejectsInvalidValues(t *testing.T) {
	for _, args := range [][]string{
		{"--width", "-1"},
		{"--height", "-2"},
		{"--max-panes", "-1"},
		{"--unknown"},
	} {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestWatchRequiresLinks(t *testing.T) {
	_, err := LoadArgs([]string{"--watch"}, nil)
	if !errors.Is(err, ErrWatchWithoutLinks) {
		t.Fatalf("expected ErrWatchWithoutLinks, got %v", err)
	}
}

func TestFlagKeysAreCamelCase(t *testing.T) {
	cfg, err := LoadArgs([]string{"--log-file", "x.log"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range []string{"links", "maxPanes", "showPath", "logFile", "trace", "list"} {
		if _, ok := cfg.Flags[key]; !ok {
			t.Fatalf("expected flag key %q in %v", key, cfg.Flags)
		}
	}
	if cfg.Flags["logFile"] != "x.log" || cfg.Logging.FilePath != "x.log" {
		t.Fatalf("unexpected log file %q", cfg.Flags["logFile"])
	}
}

func TestEnvironmentIgnoresForeignAndBlankValues(t *testing.T) {
	env := newEnvironment([]string{"HOME=/root", "FLYOUT_TITLE=", "FLYOUT_MAX_PANES= 3 ", "garbage"})
	if _, ok := env["HOME"]; ok {
		t.Fatalf("expected unrelated variables dropped")
	}
	if got := env.stringOr("title", "fallback"); got != "fallback" {
		t.Fatalf("expected blank value to fall back, got %q", got)
	}
	if got := env.intOr("max-panes", 8); got != 3 {
		t.Fatalf("expected trimmed int 3, got %d", got)
	}
}

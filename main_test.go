package main

import (
	"os"
	"testing"

	"github.com/atomicstack/flyout/internal/app"
	"github.com/atomicstack/flyout/internal/config"
)

func TestProbeTerminalIncludesStandardDescriptors(t *testing.T) {
	info := probeTerminal()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			LinksPath:  "links.yaml",
			Width:      80,
			Height:     24,
			MaxPanes:   8,
			ShowFooter: true,
			Verbose:    true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"links":    "links.yaml",
			"width":    "80",
			"height":   "24",
			"maxPanes": "8",
			"footer":   "true",
			"verbose":  "true",
		},
		Args: []string{"--links", "links.yaml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["links"] != "links.yaml" {
		t.Fatalf("expected links flag %q, got %v", "links.yaml", flagsValue["links"])
	}
	if flagsValue["maxPanes"] != "8" {
		t.Fatalf("expected max panes 8, got %v", flagsValue["maxPanes"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["verbose"] != "true" {
		t.Fatalf("expected verbose flag true, got %v", flagsValue["verbose"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestProbeFileHandlesNonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "probe")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer f.Close()
	res := probeFile("file", f)
	if res.IsTerminal || res.Width != 0 || res.Name != "file" {
		t.Fatalf("expected non-terminal probe, got %#v", res)
	}
	if got := probeFile("nil", nil); got.IsTerminal {
		t.Fatalf("expected nil file to be reported as non-terminal")
	}
}

package main

import (
	"os"

	"golang.org/x/term"
)

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// probeTerminal reports which standard descriptors are terminals. The first
// one with a readable size becomes Detected.
func probeTerminal() ttyDetails {
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	details := ttyDetails{Probes: make([]ttyProbeResult, len(files))}
	for i, f := range files {
		res := probeFile(names[i], f)
		details.Probes[i] = res
		if details.Detected == nil && res.IsTerminal && res.Error == "" {
			details.Detected = &ttyDetected{Source: res.Name, Width: res.Width, Height: res.Height}
		}
	}
	return details
}

func probeFile(name string, f *os.File) ttyProbeResult {
	res := ttyProbeResult{Name: name}
	if f == nil {
		return res
	}
	fd := int(f.Fd())
	if fd < 0 || !term.IsTerminal(fd) {
		return res
	}
	res.IsTerminal = true
	w, h, err := term.GetSize(fd)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Width, res.Height = w, h
	return res
}

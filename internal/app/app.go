package app

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atomicstack/flyout/internal/backend"
	"github.com/atomicstack/flyout/internal/format/table"
	"github.com/atomicstack/flyout/internal/links"
	"github.com/atomicstack/flyout/internal/logging/events"
	"github.com/atomicstack/flyout/internal/ui"
	"github.com/atomicstack/flyout/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	LinksPath  string
	Title      string
	Width      int
	Height     int
	MaxPanes   int
	ShowFooter bool
	ShowPath   bool
	Copy       bool
	List       bool
	Watch      bool
	Verbose    bool
}

// Result is what the user picked before the program exited.
type Result struct {
	Link      links.Link
	Activated bool
}

const stubSource = "stub"

// LoadLinks reads the configured link tree, falling back to the demo tree.
func LoadLinks(cfg Config) ([]links.Link, string, error) {
	if strings.TrimSpace(cfg.LinksPath) == "" {
		return links.Stub(), stubSource, nil
	}
	list, err := links.Load(cfg.LinksPath)
	if err != nil {
		return nil, "", err
	}
	return list, cfg.LinksPath, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) (Result, error) {
	list, source, err := LoadLinks(cfg)
	if err != nil {
		return Result{}, fmt.Errorf("load links: %w", err)
	}
	var watcher *backend.Watcher
	if cfg.Watch {
		watcher, err = backend.NewWatcher(source, backend.DefaultDebounce)
		if err != nil {
			return Result{}, fmt.Errorf("watch %s: %w", source, err)
		}
		defer watcher.Stop()
	}
	opts := ui.Options{
		Links:      list,
		Source:     source,
		RootTitle:  cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		MaxPanes:   cfg.MaxPanes,
		ShowFooter: cfg.ShowFooter,
		ShowPath:   cfg.ShowPath,
		Verbose:    cfg.Verbose,
		Watcher:    watcher,
	}
	if cfg.Copy {
		opts.Clipboard = command.SystemClipboard
	}
	model := ui.NewModel(opts)
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return Result{}, err
	}
	link, ok := model.Activated()
	events.App.Exit(link.URL)
	return Result{Link: link, Activated: ok}, nil
}

// List writes the link tree as an aligned table, indented by depth.
func List(cfg Config, w io.Writer) error {
	list, _, err := LoadLinks(cfg)
	if err != nil {
		return fmt.Errorf("load links: %w", err)
	}
	rows := links.Flatten(list)
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{
			strings.Repeat("  ", r.Level) + r.Title,
			strconv.Itoa(r.Children),
			r.URL,
		}
	}
	columns := []table.Column{
		{Header: "TITLE"},
		{Header: "SUBLINKS", Align: table.AlignRight},
		{Header: "URL"},
	}
	return table.Write(w, columns, cells)
}

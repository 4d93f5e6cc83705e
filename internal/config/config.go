package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/flyout/internal/app"
	"github.com/atomicstack/flyout/internal/nav"
)

// Config is everything main needs to start the program.
type Config struct {
	App     app.Config
	Logging Logging
	// Flags holds the resolved value of every flag keyed by its camelCase
	// name, for trace output.
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// envPrefix is prepended to the upper-snake form of a flag name to find its
// environment fallback, e.g. --max-panes reads FLYOUT_MAX_PANES.
const envPrefix = "FLYOUT_"

// ErrWatchWithoutLinks is returned when --watch is set without a links file.
var ErrWatchWithoutLinks = errors.New("--watch requires --links")

// Load reads os.Args and the process environment.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs parses args, falling back to environ for any flag not given.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := newEnvironment(environ)
	var cfg Config
	a := &cfg.App

	fs := flag.NewFlagSet("flyout", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.StringVar(&a.LinksPath, "links", env.stringOr("links", ""), "path to a YAML link tree (empty shows the demo tree)")
	fs.StringVar(&a.Title, "title", env.stringOr("title", ""), "title of the root pane")
	fs.IntVar(&a.Width, "width", env.intOr("width", 0), "desired viewport width in cells (0 uses terminal width)")
	fs.IntVar(&a.Height, "height", env.intOr("height", 0), "desired viewport height in rows (0 uses terminal height)")
	fs.IntVar(&a.MaxPanes, "max-panes", env.intOr("max-panes", nav.DefaultMaxPanes), "number of sublink panes (0 derives from the tree depth)")
	fs.BoolVar(&a.ShowFooter, "footer", env.boolOr("footer", false), "enable footer hint row (disabled by default)")
	fs.BoolVar(&a.ShowPath, "show-path", env.boolOr("show-path", false), "print the active path as JSON above the panes")
	fs.BoolVar(&a.Copy, "copy", env.boolOr("copy", false), "copy the activated url to the clipboard")
	fs.BoolVar(&a.List, "list", false, "print the link tree as a table and exit")
	fs.BoolVar(&a.Watch, "watch", env.boolOr("watch", false), "reload the links file when it changes")
	fs.BoolVar(&a.Verbose, "verbose", env.boolOr("verbose", false), "print success messages for actions")
	fs.BoolVar(&cfg.Logging.Trace, "trace", env.boolOr("trace", false), "enable verbose JSON trace logging")
	fs.StringVar(&cfg.Logging.FilePath, "log-file", env.stringOr("log-file", ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Flags = make(map[string]string)
	fs.VisitAll(func(f *flag.Flag) {
		cfg.Flags[camelCase(f.Name)] = f.Value.String()
	})
	cfg.Args = append([]string(nil), args...)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects option combinations the app cannot run with.
func Validate(cfg Config) error {
	for name, v := range map[string]int{
		"width":     cfg.App.Width,
		"height":    cfg.App.Height,
		"max-panes": cfg.App.MaxPanes,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be >= 0 (got %d)", name, v)
		}
	}
	if cfg.App.Watch && strings.TrimSpace(cfg.App.LinksPath) == "" {
		return ErrWatchWithoutLinks
	}
	return nil
}

// environment holds FLYOUT_* variables. Blank or unparsable values fall back
// to the flag default.
type environment map[string]string

func newEnvironment(environ []string) environment {
	env := make(environment)
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(key, envPrefix) {
			continue
		}
		env[key] = value
	}
	return env
}

func (e environment) lookup(flagName string) (string, bool) {
	key := envPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
	v, ok := e[key]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

func (e environment) stringOr(flagName, fallback string) string {
	if v, ok := e.lookup(flagName); ok {
		return v
	}
	return fallback
}

func (e environment) intOr(flagName string, fallback int) int {
	v, ok := e.lookup(flagName)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}

func (e environment) boolOr(flagName string, fallback bool) bool {
	v, ok := e.lookup(flagName)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return b
}

func camelCase(name string) string {
	parts := strings.Split(name, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

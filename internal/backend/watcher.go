package backend

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/atomicstack/flyout/internal/links"
	"github.com/atomicstack/flyout/internal/timing"
	"github.com/fsnotify/fsnotify"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindLinks Kind = iota
)

// DefaultDebounce is the quiet period required before a changed link file is
// reloaded.
const DefaultDebounce = 100 * time.Millisecond

// Event conveys updated data or an error from a reload.
type Event struct {
	Kind Kind
	Data []links.Link
	Err  error
}

// Watcher reloads a link file whenever it changes on disk and publishes the
// result.
type Watcher struct {
	path string

	fs       *fsnotify.Watcher
	debounce *timing.Debounced
	reload   chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching path. Writes are coalesced: a reload happens
// once no change has been seen for wait.
func NewWatcher(path string, wait time.Duration) (*Watcher, error) {
	return NewWatcherWithClock(path, wait, timing.SystemClock)
}

// NewWatcherWithClock is NewWatcher with an explicit clock for the debounce.
func NewWatcherWithClock(path string, wait time.Duration, clock timing.Clock) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	// editors replace files by rename, so the directory is watched rather
	// than the file itself
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:   abs,
		fs:     fsw,
		reload: make(chan struct{}, 1),
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 16),
	}
	w.debounce = timing.DebounceWithClock(clock, w.requestReload, wait, false)

	w.wg.Add(1)
	go w.run()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.debounce.Cancel()
	w.cancel()
}

// Wait blocks until the watcher goroutine has exited and the events channel
// is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) requestReload() {
	select {
	case w.reload <- struct{}{}:
	default:
	}
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer func() { _ = w.fs.Close() }()

	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.debounce.Call()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if !w.emit(Event{Kind: KindLinks, Err: err}) {
				return
			}
		case <-w.reload:
			data, err := links.Load(w.path)
			if !w.emit(Event{Kind: KindLinks, Data: data, Err: err}) {
				return
			}
		}
	}
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}

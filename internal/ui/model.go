package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/flyout/internal/backend"
	"github.com/atomicstack/flyout/internal/data/dispatcher"
	"github.com/atomicstack/flyout/internal/links"
	"github.com/atomicstack/flyout/internal/logging/events"
	"github.com/atomicstack/flyout/internal/nav"
	"github.com/atomicstack/flyout/internal/outside"
	"github.com/atomicstack/flyout/internal/state"
	"github.com/atomicstack/flyout/internal/theme"
	"github.com/atomicstack/flyout/internal/timing"
	"github.com/atomicstack/flyout/internal/ui/command"
	uistate "github.com/atomicstack/flyout/internal/ui/state"
	"github.com/atomicstack/flyout/internal/viewport"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

const (
	menuHeaderSeparator = "→"
	defaultRootTitle    = "links"
	rootLevelID         = "root"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

func newLevel(id, title string, items []links.Link) *level {
	return uistate.NewLevel(id, title, items)
}

// Options configures a Model.
type Options struct {
	Links      []links.Link
	Source     string
	RootTitle  string
	Width      int
	Height     int
	MaxPanes   int
	ShowFooter bool
	ShowPath   bool
	Verbose    bool
	// Clipboard receives the activated URL. Nil disables copying.
	Clipboard command.ClipboardWriter
	Watcher   *backend.Watcher
	// Clock drives the resize and scroll throttles. Nil uses the system clock.
	Clock timing.Clock
}

// Model implements the Bubble Tea model for the flyout navigation.
type Model struct {
	nav      *nav.State
	maxPanes int
	panes    []nav.Pane
	levels   []*level

	focusPane int
	focusKey  string
	pressed   *target

	source      *outside.Source
	detector    *outside.Detector
	detach      func()
	unsubscribe func()

	size           *viewport.WindowSize
	scroll         *viewport.ScrollPosition
	viewportEvents *eventQueue

	loading      bool
	errMsg       string
	infoMsg      string
	infoExpire   time.Time
	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	showFooter   bool
	footerHidden bool
	showPath     bool
	verbose      bool
	rootTitle    string
	clipboard    command.ClipboardWriter
	activated    *command.Result
	closed       bool

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	bus            *command.Bus
	backend        *backend.Watcher
	backendLastErr string
	store          state.LinkStore
	dispatcher     *dispatcher.Dispatcher
}

// NewModel initialises the UI state over the provided link tree.
func NewModel(opts Options) *Model {
	root := opts.Links
	store := state.NewLinkStore(root, opts.Source)
	m := &Model{
		nav:        nav.NewState(root),
		maxPanes:   opts.MaxPanes,
		focusPane:  0,
		source:     outside.NewSource(),
		showFooter: opts.ShowFooter,
		showPath:   opts.ShowPath,
		verbose:    opts.Verbose,
		rootTitle:  opts.RootTitle,
		clipboard:  opts.Clipboard,
		bus:        command.New(),
		backend:    opts.Watcher,
		store:      store,
		dispatcher: dispatcher.New(store),
	}
	if m.rootTitle == "" {
		m.rootTitle = defaultRootTitle
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c

	m.unsubscribe = m.nav.Subscribe(m.handlePathChange)
	m.detector = outside.New(m.outsideRoot, m.closeFromOutside)
	m.detach = m.detector.Attach(m.source)
	m.startViewport(opts.Clock)
	m.syncLayout()
	m.registerHandlers()
	events.Links.Load(opts.Source, links.Count(root))
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForViewportEvent(m.viewportEvents)}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleActionResultMsg,
		reflect.TypeOf(viewportSizeMsg{}):   m.handleViewportMsg,
		reflect.TypeOf(scrollMsg{}):         m.handleViewportMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Path returns a copy of the active path.
func (m *Model) Path() nav.Path {
	return m.nav.Path()
}

// Activated returns the link chosen by the user, if any.
func (m *Model) Activated() (links.Link, bool) {
	if m.activated == nil {
		return links.Link{}, false
	}
	return m.activated.Link, true
}

// Close detaches the outside detector, the path subscription and the viewport
// observers. It is safe to call more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	if m.detach != nil {
		m.detach()
	}
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	if m.size != nil {
		m.size.Close()
	}
	if m.scroll != nil {
		m.scroll.Close()
	}
	if m.viewportEvents != nil {
		m.viewportEvents.close()
	}
}

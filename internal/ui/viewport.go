package ui

import (
	"sync"

	"github.com/atomicstack/flyout/internal/logging/events"
	"github.com/atomicstack/flyout/internal/timing"
	"github.com/atomicstack/flyout/internal/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type viewportSizeMsg struct {
	size viewport.Size
}

type scrollMsg struct {
	pos viewport.Position
}

// eventQueue carries observer updates from timer goroutines into Update.
// Pushes after close are dropped, so a closed queue never panics a late
// timer.
type eventQueue struct {
	mu     sync.Mutex
	ch     chan tea.Msg
	closed bool
}

func newEventQueue(size int) *eventQueue {
	return &eventQueue{ch: make(chan tea.Msg, size)}
}

// push enqueues msg, dropping it when the queue is full or closed.
func (q *eventQueue) push(msg tea.Msg) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	select {
	case q.ch <- msg:
	default:
	}
}

// close releases any command blocked in waitForViewportEvent.
func (q *eventQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.ch)
}

// startViewport wires the throttled observers. Their subscribers may run on
// timer goroutines, so updates are queued and applied from Update.
func (m *Model) startViewport(clock timing.Clock) {
	if clock == nil {
		clock = timing.SystemClock
	}
	m.viewportEvents = newEventQueue(16)
	m.size = viewport.NewWindowSizeWithClock(clock, viewport.Size{Width: m.width, Height: m.height})
	m.size.Subscribe(func(s viewport.Size) { m.viewportEvents.push(viewportSizeMsg{size: s}) })
	m.scroll = viewport.NewScrollPositionWithClock(clock, 0, 0)
	m.scroll.Subscribe(func(p viewport.Position) { m.viewportEvents.push(scrollMsg{pos: p}) })
}

// waitForViewportEvent blocks for the next observer update. It yields nil
// once the queue is closed, which ends the chain.
func waitForViewportEvent(q *eventQueue) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-q.ch
		if !ok {
			return nil
		}
		return msg
	}
}

// drainViewportEvents applies queued observer updates without waiting.
func (m *Model) drainViewportEvents() {
	for {
		select {
		case msg, ok := <-m.viewportEvents.ch:
			if !ok {
				return
			}
			m.applyViewportMsg(msg)
		default:
			return
		}
	}
}

func (m *Model) handleViewportMsg(msg tea.Msg) tea.Cmd {
	m.applyViewportMsg(msg)
	if m.closed {
		return nil
	}
	return waitForViewportEvent(m.viewportEvents)
}

func (m *Model) applyViewportMsg(msg tea.Msg) {
	switch v := msg.(type) {
	case viewportSizeMsg:
		if !m.fixedWidth {
			m.width = v.size.Width
		}
		if !m.fixedHeight {
			m.height = v.size.Height
		}
		events.UI.Resize(m.width, m.height)
		for _, lvl := range m.levels {
			m.syncViewport(lvl)
		}
	case scrollMsg:
		m.footerHidden = v.pos.Direction == viewport.Down
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.size.Resize(viewport.Size{Width: resize.Width, Height: resize.Height})
	m.drainViewportEvents()
	return nil
}

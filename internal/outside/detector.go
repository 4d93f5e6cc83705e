package outside

import (
	"sync"

	"github.com/atomicstack/flyout/internal/logging/events"
)

// Root is the widget region that interaction is measured against.
type Root interface {
	Contains(Target) bool
}

// RootFunc adapts a function to Root.
type RootFunc func(Target) bool

func (f RootFunc) Contains(t Target) bool { return f(t) }

// Detector invokes a callback when interaction resolves outside the root.
//
// A mouseup is judged by the target that received the preceding mousedown,
// so a drag that starts inside the root and is released outside does not
// count, while a press outside does even if released inside.
type Detector struct {
	root     func() Root
	callback func()

	mu      sync.Mutex
	clicked Target
}

// New creates a detector. root is consulted on every event and may return
// nil while the widget is not mounted; a missing root counts as outside.
func New(root func() Root, callback func()) *Detector {
	return &Detector{root: root, callback: callback}
}

// Attach registers the detector's three listeners on src and returns a
// single teardown that removes all of them.
func (d *Detector) Attach(src *Source) func() {
	removers := []func(){
		src.On(MouseDown, d.handleMouseDown),
		src.On(MouseUp, d.handleMouseUp),
		src.On(KeyUp, d.handleKeyUp),
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			for _, remove := range removers {
				remove()
			}
			d.mu.Lock()
			d.clicked = nil
			d.mu.Unlock()
		})
	}
}

func (d *Detector) handleMouseDown(ev Event) {
	d.mu.Lock()
	d.clicked = ev.Target
	d.mu.Unlock()
}

func (d *Detector) handleMouseUp(Event) {
	d.mu.Lock()
	target := d.clicked
	d.clicked = nil
	d.mu.Unlock()
	d.checkTarget(target, "mouse")
}

func (d *Detector) handleKeyUp(ev Event) {
	switch ev.Key {
	case KeyEscape:
		d.fire("escape")
	case KeyTab:
		if ev.Target != nil {
			d.checkTarget(ev.Target, "tab")
		}
	}
}

func (d *Detector) checkTarget(target Target, reason string) {
	var root Root
	if d.root != nil {
		root = d.root()
	}
	if root == nil || (target != nil && !root.Contains(target)) {
		d.fire(reason)
	}
}

func (d *Detector) fire(reason string) {
	events.Outside.Fire(reason)
	if d.callback != nil {
		d.callback()
	}
}

package viewport

import (
	"testing"
	"time"

	"github.com/atomicstack/flyout/internal/timing"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestWindowSizeThrottlesBursts(t *testing.T) {
	clock := timing.NewManualClock(epoch)
	w := NewWindowSizeWithClock(clock, Size{Width: 80, Height: 24})
	var seen []Size
	w.Subscribe(func(s Size) { seen = append(seen, s) })

	w.Resize(Size{Width: 100, Height: 30})
	w.Resize(Size{Width: 110, Height: 31})
	w.Resize(Size{Width: 120, Height: 32})
	if len(seen) != 1 || seen[0] != (Size{Width: 100, Height: 30}) {
		t.Fatalf("expected leading update only, got %v", seen)
	}
	clock.Advance(UpdateInterval)
	if len(seen) != 2 || seen[1] != (Size{Width: 120, Height: 32}) {
		t.Fatalf("expected trailing update with latest size, got %v", seen)
	}
	if got := w.Size(); got != (Size{Width: 120, Height: 32}) {
		t.Fatalf("unexpected current size %v", got)
	}
}

func TestWindowSizeCloseStopsUpdates(t *testing.T) {
	clock := timing.NewManualClock(epoch)
	w := NewWindowSizeWithClock(clock, Size{Width: 80, Height: 24})
	calls := 0
	w.Subscribe(func(Size) { calls++ })
	w.Resize(Size{Width: 90, Height: 24})
	w.Resize(Size{Width: 95, Height: 24})
	w.Close()
	clock.Advance(time.Second)
	w.Resize(Size{Width: 10, Height: 10})
	if calls != 1 {
		t.Fatalf("expected no updates after close, got %d calls", calls)
	}
	if clock.Pending() != 0 {
		t.Fatalf("expected pending timers cancelled on close")
	}
}

func TestScrollDirection(t *testing.T) {
	clock := timing.NewManualClock(epoch)
	s := NewScrollPositionWithClock(clock, 0, 0)
	var seen []Position
	s.Subscribe(func(p Position) { seen = append(seen, p) })

	s.Scroll(0, 10)
	if len(seen) != 0 {
		t.Fatalf("expected first observation to seed only, got %v", seen)
	}
	clock.Advance(UpdateInterval)
	s.Scroll(0, 20)
	if len(seen) != 1 || seen[0].Direction != Down || seen[0].Y != 20 {
		t.Fatalf("expected downward update, got %v", seen)
	}
	clock.Advance(UpdateInterval)
	s.Scroll(0, 20)
	if len(seen) != 1 {
		t.Fatalf("expected unchanged offset to be ignored, got %v", seen)
	}
	clock.Advance(UpdateInterval)
	s.Scroll(0, 5)
	if len(seen) != 2 || seen[1].Direction != Up {
		t.Fatalf("expected upward update, got %v", seen)
	}
	clock.Advance(UpdateInterval)
	s.Scroll(0, -4)
	if len(seen) != 2 {
		t.Fatalf("expected overscroll to be ignored, got %v", seen)
	}
	if got := s.Position(); got.Y != 5 || got.Direction != Up {
		t.Fatalf("unexpected position %v", got)
	}
}

func TestScrollCloseDropsSubscribers(t *testing.T) {
	clock := timing.NewManualClock(epoch)
	s := NewScrollPositionWithClock(clock, 0, 0)
	calls := 0
	s.Subscribe(func(Position) { calls++ })
	s.Scroll(0, 1)
	clock.Advance(UpdateInterval)
	s.Close()
	s.Scroll(0, 9)
	clock.Advance(UpdateInterval)
	if calls != 0 {
		t.Fatalf("expected no updates, got %d", calls)
	}
}

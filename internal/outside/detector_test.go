package outside

import "testing"

type node string

func insideRoot() Root {
	return RootFunc(func(t Target) bool {
		n, ok := t.(node)
		return ok && n == "inside"
	})
}

func newCounting(root func() Root) (*Detector, *int) {
	count := 0
	return New(root, func() { count++ }), &count
}

func TestDragOutDoesNotFire(t *testing.T) {
	src := NewSource()
	d, count := newCounting(insideRoot)
	defer d.Attach(src)()

	src.MouseDownAt(node("inside"))
	src.MouseUpAt(node("outside"))
	if *count != 0 {
		t.Fatalf("expected drag out of the root to be ignored, got %d calls", *count)
	}
}

func TestOutsideClickFires(t *testing.T) {
	src := NewSource()
	d, count := newCounting(insideRoot)
	defer d.Attach(src)()

	src.MouseDownAt(node("outside"))
	src.MouseUpAt(node("outside"))
	if *count != 1 {
		t.Fatalf("expected one call for an outside click, got %d", *count)
	}

	src.MouseDownAt(node("outside"))
	src.MouseUpAt(node("inside"))
	if *count != 2 {
		t.Fatalf("expected press outside released inside to fire, got %d", *count)
	}
}

func TestMouseUpClearsRememberedTarget(t *testing.T) {
	src := NewSource()
	d, count := newCounting(insideRoot)
	defer d.Attach(src)()

	src.MouseDownAt(node("outside"))
	src.MouseUpAt(node("outside"))
	src.MouseUpAt(node("outside"))
	if *count != 1 {
		t.Fatalf("expected stray mouseup without mousedown to be ignored, got %d", *count)
	}
}

func TestMissingRootCountsAsOutside(t *testing.T) {
	src := NewSource()
	d, count := newCounting(func() Root { return nil })
	defer d.Attach(src)()

	src.MouseDownAt(node("inside"))
	src.MouseUpAt(node("inside"))
	if *count != 1 {
		t.Fatalf("expected missing root to fire, got %d", *count)
	}
}

func TestEscapeFiresUnconditionally(t *testing.T) {
	src := NewSource()
	d, count := newCounting(insideRoot)
	defer d.Attach(src)()

	src.KeyUpOn(KeyEscape, node("inside"))
	src.KeyUpOn(KeyEscape, nil)
	if *count != 2 {
		t.Fatalf("expected escape to fire twice, got %d", *count)
	}
	src.KeyUpOn("Enter", node("outside"))
	if *count != 2 {
		t.Fatalf("expected other keys to be ignored, got %d", *count)
	}
}

func TestTabChecksFocusedTarget(t *testing.T) {
	src := NewSource()
	d, count := newCounting(insideRoot)
	defer d.Attach(src)()

	src.KeyUpOn(KeyTab, node("inside"))
	if *count != 0 {
		t.Fatalf("expected tab within the root to be ignored")
	}
	src.KeyUpOn(KeyTab, nil)
	if *count != 0 {
		t.Fatalf("expected tab without target to be ignored")
	}
	src.KeyUpOn(KeyTab, node("outside"))
	if *count != 1 {
		t.Fatalf("expected tab out of the root to fire, got %d", *count)
	}
}

func TestTeardownRemovesAllListeners(t *testing.T) {
	src := NewSource()
	d, count := newCounting(insideRoot)
	teardown := d.Attach(src)
	if got := src.Listeners(); got != 3 {
		t.Fatalf("expected 3 listeners, got %d", got)
	}
	teardown()
	teardown()
	if got := src.Listeners(); got != 0 {
		t.Fatalf("expected listeners removed, got %d", got)
	}
	src.KeyUpOn(KeyEscape, nil)
	if *count != 0 {
		t.Fatalf("expected no calls after teardown, got %d", *count)
	}
}

package theme

import (
	"testing"

	"github.com/atomicstack/flyout/internal/nav"
)

func TestForClassesMutesCollapsedPanes(t *testing.T) {
	s := Default()
	if got := s.ForClasses([]string{"pane", nav.ClassCollapsed}); got != s.PaneTitleCollapsed {
		t.Fatalf("expected collapsed style for collapsed pane")
	}
	if got := s.ForClasses([]string{"pane", "pane--open"}); got != s.Item {
		t.Fatalf("expected item style for open pane")
	}
	if got := s.ForClasses(nil); got != s.Item {
		t.Fatalf("expected item style without classes")
	}
}

package nav

import (
	"fmt"
	"strings"

	"github.com/atomicstack/flyout/internal/links"
)

// DefaultMaxPanes is the number of placeholder panes rendered after the root
// pane.
const DefaultMaxPanes = 8

// Pane class names. Stylesheets and themes key off these exact strings.
const (
	ClassPane       = "pane"
	ClassFirst      = "pane--first"
	ClassLevel      = "pane--level"
	ClassOpen       = "pane--open"
	ClassCollapsed  = "pane--collapsed"
	ClassSecondLast = "pane--second-last"
	ClassLast       = "pane--last"

	ClassCollapseButton = "collapseButton"
	ClassTitle          = "pane_title"
	ClassTitleCollapsed = "pane_title--collapsed"
)

// Pane is one rendered column: the root list or the sublinks of an open link.
type Pane struct {
	Depth     int
	Classes   []string
	Open      bool
	Collapsed bool
	Parent    *links.Link
	Items     []Item
}

// Item is one link row inside a pane.
type Item struct {
	Link           links.Link
	Active         bool
	AnchorTabIndex int
	HasToggle      bool
	ToggleTabIndex int
	ToggleID       string
	Collapsed      bool
}

// ClassName joins the pane classes the way a class attribute would.
func (p Pane) ClassName() string {
	return strings.Join(p.Classes, " ")
}

// HasClass reports whether the pane carries class.
func (p Pane) HasClass(class string) bool {
	for _, c := range p.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// ListClass is the class of the pane's link list.
func (p Pane) ListClass() string {
	return fmt.Sprintf("ul-level-%d", p.Depth)
}

// Controls names the toggle that opened this pane.
func (p Pane) Controls() string {
	if p.Parent == nil {
		return ""
	}
	return toggleID(p.Parent.ID)
}

// TitleClass is the class of the parent header button.
func (p Pane) TitleClass() string {
	if p.Collapsed {
		return ClassTitle + " " + ClassTitleCollapsed
	}
	return ClassTitle
}

// ParentLevel is the level to pass to Toggle from the header button.
func (p Pane) ParentLevel() int {
	return p.Depth - 1
}

// AnyActive reports whether one of the pane's links is expanded.
func (p Pane) AnyActive() bool {
	for _, it := range p.Items {
		if it.Active {
			return true
		}
	}
	return false
}

// Disclosure is the toggle glyph for the item.
func (it Item) Disclosure() string {
	if it.Active {
		return "-"
	}
	return "+"
}

// PaneCount resolves the number of placeholder panes. A non-positive max
// derives the count from the depth of the tree.
func PaneCount(root []links.Link, maxPanes int) int {
	if maxPanes > 0 {
		return maxPanes
	}
	n := links.MaxDepth(root) - 1
	if n < 0 {
		n = 0
	}
	return n
}

// Layout computes the root pane followed by the placeholder panes for the
// given path.
func Layout(root []links.Link, path Path, maxPanes int) []Pane {
	count := PaneCount(root, maxPanes)
	panes := make([]Pane, 0, count+1)
	panes = append(panes, Pane{
		Depth:   0,
		Classes: []string{ClassPane, ClassFirst},
		Open:    true,
		Items:   buildItems(root, path, false),
	})
	for idx := 0; idx < count; idx++ {
		entry, ok := path.ActiveAt(idx)
		open := ok && entry.Link.HasSublinks()
		small := len(path) > 1 && idx < len(path)-1
		classes := []string{ClassPane, ClassLevel, fmt.Sprintf("%s-%d", ClassLevel, idx+1)}
		if open {
			classes = append(classes, ClassOpen)
		}
		if small {
			classes = append(classes, ClassCollapsed)
		}
		if idx == len(path)-2 {
			classes = append(classes, ClassSecondLast)
		}
		if idx == len(path)-1 {
			classes = append(classes, ClassLast)
		}
		pane := Pane{
			Depth:     idx + 1,
			Classes:   classes,
			Open:      open,
			Collapsed: small,
		}
		if open {
			parent := entry.Link
			pane.Parent = &parent
			pane.Items = buildItems(parent.Sublinks, path, small)
		}
		panes = append(panes, pane)
	}
	return panes
}

func buildItems(list []links.Link, path Path, collapsed bool) []Item {
	anyActive := false
	for _, l := range list {
		if path.IsActive(l.ID) {
			anyActive = true
			break
		}
	}
	items := make([]Item, 0, len(list))
	for _, l := range list {
		active := path.IsActive(l.ID)
		it := Item{
			Link:      l,
			Active:    active,
			HasToggle: l.HasSublinks(),
			Collapsed: collapsed,
			ToggleID:  toggleID(l.ID),
		}
		if anyActive {
			it.AnchorTabIndex = -1
		}
		if anyActive && !active {
			it.ToggleTabIndex = -1
		}
		items = append(items, it)
	}
	return items
}

func toggleID(id string) string {
	return "submenu-" + id
}

// ElementKind distinguishes the interactive parts of a pane.
type ElementKind int

const (
	ElementAnchor ElementKind = iota
	ElementToggle
	ElementHeader
)

func (k ElementKind) String() string {
	switch k {
	case ElementAnchor:
		return "anchor"
	case ElementToggle:
		return "toggle"
	case ElementHeader:
		return "header"
	default:
		return "unknown"
	}
}

// Element addresses one interactive element. Item is -1 for headers.
type Element struct {
	Kind ElementKind
	Pane int
	Item int
}

// ID is a stable identifier for focus bookkeeping.
func (e Element) ID() string {
	return fmt.Sprintf("%s:%d:%d", e.Kind, e.Pane, e.Item)
}

// FocusOrder lists the tabbable elements in document order. Header buttons
// and elements with a negative tab index are skipped.
func FocusOrder(panes []Pane) []Element {
	var order []Element
	for p, pane := range panes {
		if !pane.Open {
			continue
		}
		for i, it := range pane.Items {
			if it.AnchorTabIndex >= 0 {
				order = append(order, Element{Kind: ElementAnchor, Pane: p, Item: i})
			}
			if it.HasToggle && it.ToggleTabIndex >= 0 {
				order = append(order, Element{Kind: ElementToggle, Pane: p, Item: i})
			}
		}
	}
	return order
}

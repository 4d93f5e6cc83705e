package command

import (
	"errors"
	"fmt"

	"github.com/atomicstack/flyout/internal/links"
	"github.com/atomicstack/flyout/internal/logging/events"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoURL is returned when a link without a URL is activated.
var ErrNoURL = errors.New("link has no url")

// Result reports the outcome of an action.
type Result struct {
	Link links.Link
	URL  string
	Info string
	Err  error
}

// ClipboardWriter copies text to the system clipboard.
type ClipboardWriter func(string) error

// SystemClipboard writes through the platform clipboard utilities.
var SystemClipboard ClipboardWriter = clipboard.WriteAll

// Activate reports the link's URL. When copy is non-nil the URL is also
// placed on the clipboard.
func Activate(copy ClipboardWriter) Action {
	return func(link links.Link) tea.Cmd {
		return func() tea.Msg {
			if link.URL == "" {
				return Result{Link: link, Err: fmt.Errorf("%w: %s", ErrNoURL, link.Label())}
			}
			res := Result{Link: link, URL: link.URL, Info: fmt.Sprintf("Opened %s", link.URL)}
			if copy == nil {
				return res
			}
			if err := copy(link.URL); err != nil {
				res.Err = fmt.Errorf("copy %s: %w", link.URL, err)
				return res
			}
			events.Action.Copied(link.URL)
			res.Info = fmt.Sprintf("Copied %s", link.URL)
			return res
		}
	}
}

// Package ui contains the Bubble Tea program that renders the flyout
// navigation. The Model type focuses on message orchestration while dedicated
// helpers own navigation, focus, pointer input, rendering and filtering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, mouse events, resizes, action results, backend
//     reloads).
//   - Key and mouse handlers translate input into nav.State transitions.
//     The state notifies the model synchronously and the model recomputes the
//     pane layout with nav.Layout.
//   - Presses, releases, Escape and Tab are also reported to an
//     outside.Source. The attached outside.Detector closes every pane when
//     interaction resolves outside the pane columns.
//
// State ownership:
//   - The active path lives in nav.State. Per-pane view state (cursor,
//     filter, viewport offset) lives in internal/ui/state.Level, one per
//     open pane, keyed by the id of the link that opened it.
//   - The link tree is kept in a state.LinkStore which the dispatcher updates
//     from backend events.
//   - Terminal size and scroll direction come from throttled
//     viewport observers; their updates are queued and applied inside Update.
//
// Backend interactions:
//   - A backend.Watcher reloads the link file when it changes on disk.
//     Update waits for those events and resets nav.State onto the new tree.
//   - Link activation runs through the internal/ui/command bus and ends the
//     program with the chosen link recorded on the model.
package ui

// Package ui implements mlref's terminal browser on Bubble Tea.
//
// # Layout
//
//	┌──────────────────────────────────────────────┐
//	│ mlref  Regression │ Clustering               │  family row
//	│  Overview │ Tests │ Metrics                  │  section row
//	│                                              │
//	│  (active section, scrollable viewport)       │
//	│                                              │
//	│ [ prev family  ] next family  tab ...  42%   │  footer
//	└──────────────────────────────────────────────┘
//
// # Tabs wiring
//
// The family row is a controlled tabs container. The browser owns its
// tabs.Value and decides in the change notifier whether to move it; with
// --lock the notifier logs the request and leaves the value alone, so the
// row never changes and the user sees an alert instead.
//
// Each family has its own uncontrolled section container, so every family
// remembers its last section while the user moves between families. A
// family pane's body is its section container's pane view.
//
// # Themes
//
// Nightfox, Kanagawa and Slate. T cycles through them and the choice is
// saved to prefs. Section panels share one *content.Styles, which the model
// overwrites in place on a theme change.
//
// # Non-interactive output
//
// Print builds the same containers and renders one family to a writer,
// either themed or plain. "mlref show" uses it when stdout is not a
// terminal, or when asked to.
package ui

// Package ui provides the shared terminal styling for slidecast.
//
// It has two halves. The navigation surface (RenderControls) is drawn by
// the presentation on every frame: prev, pause/resume and next controls,
// one indicator per slide with a radial sweep on the active one, the
// active slide title and a linear progress bar. It is a pure function of a
// ControlsView and never changes presentation state itself.
//
// The rest are "print once" components for non-interactive commands:
//
//   - Header: command banner with ordered parameters
//   - Result: success/failure boxes with troubleshooting tips
//   - Outline: a deck listing with each slide's share of a cycle
//   - Confirm: a typed confirmation before overwriting files
//
// Printer ties them together:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Deck outline", "slidecast outline", ui.Param{Key: "Deck", Value: path})
//	p.PrintOutline(rows)
//
// # Logging Integration
//
// Logging is controlled via SLIDECAST_LOG_LEVEL. When unset, zap logging
// is silent so that the curated output is displayed cleanly.
package ui

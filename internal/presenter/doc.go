// Package presenter runs a deck as a full-screen Bubble Tea program.
//
// AppModel is the root model. It owns the slide controller, the active
// slide model and the key map, and renders the stage inside a bordered
// container:
//
//	┌──────────────────────────────────────────┐
//	│ The Healing Current        slidecast v1.0 │
//	│──────────────────────────────────────────│
//	│              active slide                │
//	│  ◀  ❚❚  ▶     ● • • • • • •               │
//	│  1/7  Into the current                    │
//	│  ▓▓▓▓▓▓▓░░░░░░░░░░░░░░░░░░░░░             │
//	│──────────────────────────────────────────│
//	│ ← prev · → next · space pause · ? help    │
//	└──────────────────────────────────────────┘
//
// Every controller transition remounts the slide when the index changed,
// so slide-local state starts fresh, and publishes a Status to the
// optional Observer. The remote server uses the observer to stream state
// and tea.Program.Send to deliver intents, keeping all transitions on the
// event loop.
//
// Run refuses to start without a terminal on the output (ErrNoTerminal).
package presenter

package controller

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoSlides is returned by New when there is nothing to present.
var ErrNoSlides = errors.New("controller: at least one slide is required")

// Internal ID management. Every controller gets a unique ID so ticks from a
// controller that was replaced can never land on its successor.
var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// State is the presentation state owned by the controller.
type State struct {
	ActiveIndex int
	Paused      bool
	Progress    float64 // percent of the active slide's duration, 0-100
}

// Navigation intents. Key bindings and the presenter remote send these
// through the Bubble Tea program; each one is handled as exactly one
// transition.
type (
	NextMsg        struct{}
	PrevMsg        struct{}
	TogglePauseMsg struct{}
	GoToMsg        struct{ Index int }
)

// Controller drives slide activation, pause and the per-slide progress.
type Controller struct {
	id        int
	durations []time.Duration
	state     State
	timers    timerPair
}

// New returns a playing controller on slide 0. Timers are armed by Init.
func New(durations []time.Duration) (Controller, error) {
	if len(durations) == 0 {
		return Controller{}, ErrNoSlides
	}
	for i, d := range durations {
		if d <= 0 {
			return Controller{}, fmt.Errorf("controller: slide %d has non-positive duration %s", i, d)
		}
	}

	c := Controller{
		id:        nextID(),
		durations: append([]time.Duration(nil), durations...),
	}
	c.timers.acquire()
	return c, nil
}

// ID returns the controller's unique ID.
func (c Controller) ID() int {
	return c.id
}

// Len returns the number of slides.
func (c Controller) Len() int {
	return len(c.durations)
}

// State returns a snapshot of the presentation state.
func (c Controller) State() State {
	return c.state
}

// Duration returns the configured display time of slide i.
func (c Controller) Duration(i int) time.Duration {
	return c.durations[i]
}

// TimersLive reports whether an advance timer and progress ticker are
// currently counting down.
func (c Controller) TimersLive() bool {
	return c.timers.live
}

// ProgressStep is the percentage added per progress tick on slide i.
func (c Controller) ProgressStep(i int) float64 {
	return 100 / (float64(c.durations[i]) / float64(ProgressInterval))
}

// Init arms the timers for the initial slide.
func (c Controller) Init() tea.Cmd {
	return c.timers.schedule(c.id, c.durations[c.state.ActiveIndex])
}

// Update handles intents and timer ticks.
func (c Controller) Update(msg tea.Msg) (Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case NextMsg:
		return c.Next()
	case PrevMsg:
		return c.Prev()
	case GoToMsg:
		return c.GoTo(msg.Index)
	case TogglePauseMsg:
		return c.TogglePause()

	case advanceMsg:
		if msg.id != c.id || !c.timers.owns(msg.gen) {
			return c, nil
		}
		return c.Next()

	case progressTickMsg:
		if msg.id != c.id || !c.timers.owns(msg.gen) {
			return c, nil
		}
		c.state.Progress = math.Min(100, c.state.Progress+c.ProgressStep(c.state.ActiveIndex))
		return c, c.timers.tickAfter(c.id, msg.due)
	}

	return c, nil
}

// Next moves to the following slide, wrapping to the first.
func (c Controller) Next() (Controller, tea.Cmd) {
	return c.activate((c.state.ActiveIndex + 1) % len(c.durations))
}

// Prev moves to the preceding slide, wrapping to the last.
func (c Controller) Prev() (Controller, tea.Cmd) {
	n := len(c.durations)
	return c.activate((c.state.ActiveIndex - 1 + n) % n)
}

// GoTo jumps to slide i. Out-of-range indexes are ignored.
func (c Controller) GoTo(i int) (Controller, tea.Cmd) {
	if i < 0 || i >= len(c.durations) {
		return c, nil
	}
	return c.activate(i)
}

// TogglePause pauses or resumes playback. Pausing freezes progress; resuming
// starts a fresh countdown for the active slide from zero.
func (c Controller) TogglePause() (Controller, tea.Cmd) {
	if !c.state.Paused {
		c.state.Paused = true
		c.timers.release()
		return c, nil
	}

	c.state.Paused = false
	c.state.Progress = 0
	c.timers.release()
	c.timers.acquire()
	return c, c.timers.schedule(c.id, c.durations[c.state.ActiveIndex])
}

// Stop releases the timers for good. Safe to call more than once.
func (c Controller) Stop() Controller {
	c.timers.release()
	return c
}

// activate tears down the live timer pair before the index changes and
// acquires a new one for the new slide unless paused.
func (c Controller) activate(index int) (Controller, tea.Cmd) {
	c.timers.release()
	c.state.ActiveIndex = index
	c.state.Progress = 0

	if c.state.Paused {
		return c, nil
	}

	c.timers.acquire()
	return c, c.timers.schedule(c.id, c.durations[index])
}

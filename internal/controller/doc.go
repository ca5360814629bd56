// Package controller implements the slide controller: which slide is
// active, whether auto-advance is paused and how far the active slide has
// progressed.
//
// The controller is a Bubble Tea component. It owns two timers per slide
// activation, a one-shot advance timer set to the slide's duration and a
// progress ticker firing every ProgressInterval. Both are plain tea.Tick
// commands stamped with the controller ID and a generation number. Every
// transition ends the live generation before starting the next one, so a
// tick that was already in flight when the user navigated is simply dropped:
//
//	c, _ := controller.New(durations)
//	cmd := c.Init()            // arms slide 0
//	c, cmd = c.GoTo(4)         // slide 0 timers are now stale
//	c, cmd = c.Update(msg)     // stale ticks are ignored here
//
// Transitions:
//
//	Next, Prev      wrap modulo N, reset progress, re-arm when playing
//	GoTo(i)         0 <= i < N only, reset progress, re-arm when playing
//	TogglePause     playing -> paused releases both timers, progress frozen
//	                paused -> playing restarts from progress 0
//	advance timer   same as Next
//
// All state changes happen inside Update, which Bubble Tea calls from a
// single goroutine, so a key press and a timer firing at the same instant
// are applied one after the other.
package controller

package controller

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgressInterval is the period of the progress ticker.
const ProgressInterval = 100 * time.Millisecond

// advanceMsg fires once per slide activation when the slide's duration is up.
type advanceMsg struct {
	id  int
	gen int
}

// progressTickMsg fires every ProgressInterval while a slide is playing.
// due is the deadline it was scheduled for.
type progressTickMsg struct {
	id  int
	gen int
	due time.Time
}

// timerPair is the advance timer and the progress ticker of one slide
// activation. tea.Tick cannot be cancelled, so both timers carry the
// generation they were scheduled under and are ignored once that generation
// is no longer live.
//
// acquire starts a new generation; release ends the live one. release is
// idempotent.
type timerPair struct {
	gen  int
	live bool
}

func (p *timerPair) acquire() {
	p.gen++
	p.live = true
}

func (p *timerPair) release() {
	if !p.live {
		return
	}
	p.live = false
	p.gen++
}

// owns reports whether a tick scheduled under gen belongs to the live pair.
func (p timerPair) owns(gen int) bool {
	return p.live && gen == p.gen
}

// schedule returns the commands that arm both timers for the live generation.
func (p timerPair) schedule(id int, duration time.Duration) tea.Cmd {
	if !p.live {
		return nil
	}
	return tea.Batch(p.tick(id), p.advanceAfter(id, duration))
}

// tick arms the first progress tick of an activation.
func (p timerPair) tick(id int) tea.Cmd {
	gen := p.gen
	return func() tea.Msg {
		due := time.Now().Add(ProgressInterval)
		time.Sleep(time.Until(due))
		return progressTickMsg{id: id, gen: gen, due: due}
	}
}

// tickAfter arms the tick that follows one due at prev. The next deadline is
// prev plus one interval, however late prev was handled.
func (p timerPair) tickAfter(id int, prev time.Time) tea.Cmd {
	gen := p.gen
	due := prev.Add(ProgressInterval)
	return tea.Tick(time.Until(due), func(time.Time) tea.Msg {
		return progressTickMsg{id: id, gen: gen, due: due}
	})
}

func (p timerPair) advanceAfter(id int, d time.Duration) tea.Cmd {
	gen := p.gen
	return tea.Tick(d, func(time.Time) tea.Msg {
		return advanceMsg{id: id, gen: gen}
	})
}

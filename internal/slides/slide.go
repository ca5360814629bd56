package slides

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/slidecast/internal/config"
	"github.com/muurk/slidecast/internal/leads"
)

// Model is one mounted slide.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) (Model, tea.Cmd)
	View(width, height int) string
	// Capturing reports whether the slide holds keyboard focus, in which
	// case key presses go to the slide instead of the navigation.
	Capturing() bool
}

// Mounter builds slide models. The zero value uses the default rotation
// interval, logs registrations and reads the wall clock.
type Mounter struct {
	RotationInterval time.Duration
	Sink             leads.Sink
	Now              func() time.Time
}

// Mount builds a fresh model for def. mountID must differ between mounts
// so that timers of a previous mount can be told apart.
func (m Mounter) Mount(def config.Slide, index, mountID int) Model {
	base := frame{def: def, index: index, mountID: mountID}

	switch def.Kind {
	case config.KindTestimonials:
		interval := m.RotationInterval
		if interval <= 0 {
			interval = config.DefaultTestimonialInterval
		}
		return newTestimonials(base, interval)

	case config.KindRegistration:
		sink := m.Sink
		if sink == nil {
			sink = leads.LogSink{}
		}
		now := m.Now
		if now == nil {
			now = time.Now
		}
		return newRegistration(base, sink, now)

	default:
		return newStatic(base)
	}
}

// frame is what every slide kind shares: its definition, its position and
// the mount it belongs to.
type frame struct {
	def     config.Slide
	index   int
	mountID int
}

// place centers content on the slide background.
func (f frame) place(content string, width, height int) string {
	opts := []lipgloss.WhitespaceOption{}
	if f.def.Background != "" {
		opts = append(opts, lipgloss.WithWhitespaceBackground(lipgloss.Color(f.def.Background)))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panelStyle.Render(content), opts...)
}

// heading renders the headline and subheadline, skipping empty ones.
func (f frame) heading() []string {
	var parts []string
	if f.def.Headline != "" {
		parts = append(parts, headlineStyle.Render(f.def.Headline))
	}
	if f.def.Subheadline != "" {
		parts = append(parts, subheadlineStyle.Render(f.def.Subheadline))
	}
	if len(parts) > 0 {
		parts = append(parts, "")
	}
	return parts
}

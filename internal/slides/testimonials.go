package slides

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RotateMsg advances the testimonial carousel of the mount that scheduled
// it.
type RotateMsg struct {
	MountID int
}

// testimonials rotates through the slide's quotes. The shown index is
// local to the mount and starts at 0 on every mount.
type testimonials struct {
	frame
	interval time.Duration
	shown    int
}

func newTestimonials(f frame, interval time.Duration) testimonials {
	return testimonials{frame: f, interval: interval}
}

// Shown returns the index of the quote on screen.
func (t testimonials) Shown() int {
	return t.shown
}

func (t testimonials) Init() tea.Cmd {
	return t.rotate()
}

func (t testimonials) rotate() tea.Cmd {
	id := t.mountID
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return RotateMsg{MountID: id}
	})
}

func (t testimonials) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(RotateMsg); ok {
		if msg.MountID != t.mountID {
			return t, nil
		}
		t.shown = (t.shown + 1) % len(t.def.Testimonials)
		return t, t.rotate()
	}
	return t, nil
}

func (t testimonials) Capturing() bool { return false }

func (t testimonials) View(width, height int) string {
	parts := t.heading()

	q := t.def.Testimonials[t.shown]
	parts = append(parts,
		quoteStyle.Render("“"+q.Quote+"”"),
		"",
		authorStyle.Render("- "+q.Author),
	)

	dots := make([]string, len(t.def.Testimonials))
	for i := range dots {
		if i == t.shown {
			dots[i] = bulletStyle.Render("●")
		} else {
			dots[i] = hintStyle.Render("·")
		}
	}
	parts = append(parts, "", lipgloss.JoinHorizontal(lipgloss.Top, dots...))

	return t.place(lipgloss.JoinVertical(lipgloss.Center, parts...), width, height)
}

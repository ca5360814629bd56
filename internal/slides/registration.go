package slides

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/slidecast/internal/leads"
	"github.com/muurk/slidecast/internal/logging"
)

// Form focus positions. focusNone leaves the keyboard to the navigation.
const (
	focusNone = iota - 1
	focusName
	focusEmail
	focusSubmit
	focusCount
)

// RegisteredMsg reports a recorded registration to the presenter.
type RegisteredMsg struct {
	Registration leads.Registration
}

// registration is the lead-capture form. Field values and the submitted
// flag are local to the mount.
type registration struct {
	frame
	sink leads.Sink
	now  func() time.Time

	name      textinput.Model
	email     textinput.Model
	focus     int
	submitted bool
}

func newRegistration(f frame, sink leads.Sink, now func() time.Time) registration {
	name := textinput.New()
	name.Placeholder = "Full name"
	name.CharLimit = 80
	name.Width = panelWidth - 16

	email := textinput.New()
	email.Placeholder = "Email address"
	email.CharLimit = 120
	email.Width = panelWidth - 16

	return registration{
		frame: f,
		sink:  sink,
		now:   now,
		name:  name,
		email: email,
		focus: focusNone,
	}
}

// Submitted reports whether the form was accepted.
func (r registration) Submitted() bool {
	return r.submitted
}

func (r registration) Init() tea.Cmd { return nil }

func (r registration) Capturing() bool {
	return r.focus != focusNone && !r.submitted
}

func (r registration) Update(msg tea.Msg) (Model, tea.Cmd) {
	if r.submitted {
		return r, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return r.updateInputs(msg)
	}

	if r.focus == focusNone {
		switch key.String() {
		case "tab", "enter":
			return r.setFocus(focusName)
		}
		return r, nil
	}

	switch key.String() {
	case "esc":
		return r.setFocus(focusNone)
	case "tab", "down":
		return r.setFocus((r.focus + 1) % focusCount)
	case "shift+tab", "up":
		return r.setFocus((r.focus - 1 + focusCount) % focusCount)
	case "enter":
		if r.focus == focusName {
			return r.setFocus(focusEmail)
		}
		return r.submit()
	}

	return r.updateInputs(msg)
}

func (r registration) updateInputs(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch r.focus {
	case focusName:
		r.name, cmd = r.name.Update(msg)
	case focusEmail:
		r.email, cmd = r.email.Update(msg)
	}
	return r, cmd
}

func (r registration) setFocus(focus int) (registration, tea.Cmd) {
	r.focus = focus
	r.name.Blur()
	r.email.Blur()

	switch focus {
	case focusName:
		r.name.Focus()
		return r, textinput.Blink
	case focusEmail:
		r.email.Focus()
		return r, textinput.Blink
	}
	return r, nil
}

// submit records the registration. Blank fields leave the form as it is.
func (r registration) submit() (Model, tea.Cmd) {
	reg, err := leads.New(r.name.Value(), r.email.Value(), r.def.ID, r.now())
	if err != nil {
		logging.Debug("Registration incomplete", zap.Error(err))
		return r, nil
	}

	if err := r.sink.Record(reg); err != nil {
		logging.Warn("Failed to record registration", zap.Error(err))
		return r, nil
	}

	r.submitted = true
	r.name.Blur()
	r.email.Blur()
	r.focus = focusNone
	return r, func() tea.Msg { return RegisteredMsg{Registration: reg} }
}

func (r registration) View(width, height int) string {
	parts := r.heading()

	if ev := r.def.Event; ev != nil {
		parts = append(parts, eventStyle.Render("Date: "+ev.Date+"  |  Time: "+ev.Time))
		if ev.Note != "" {
			parts = append(parts, noteStyle.Render(ev.Note))
		}
		parts = append(parts, "")
	}

	if r.submitted {
		parts = append(parts, thanksStyle.Render("Thank you for registering! More details will be sent to your email."))
	} else {
		parts = append(parts,
			r.fieldView(r.name, focusName),
			r.fieldView(r.email, focusEmail),
			r.buttonView(),
		)
		if r.focus == focusNone {
			parts = append(parts, hintStyle.Render("press tab to fill in the form"))
		} else {
			parts = append(parts, hintStyle.Render("tab next field · enter submit · esc back to slides"))
		}
	}

	if r.def.Closing != "" {
		parts = append(parts, "", closingStyle.Render(r.def.Closing))
	}

	return r.place(lipgloss.JoinVertical(lipgloss.Center, parts...), width, height)
}

func (r registration) fieldView(in textinput.Model, pos int) string {
	if r.focus == pos {
		return focusedFieldStyle.Render(in.View())
	}
	return fieldStyle.Render(in.View())
}

func (r registration) buttonView() string {
	label := "Secure my seat now"
	if r.focus == focusSubmit {
		return focusedButtonStyle.Render(label)
	}
	return buttonStyle.Render(label)
}

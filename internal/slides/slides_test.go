package slides

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/slidecast/internal/config"
	"github.com/muurk/slidecast/internal/leads"
)

func defaultSlide(t *testing.T, id string) (config.Slide, int) {
	t.Helper()
	deck, err := config.DefaultDeck()
	if err != nil {
		t.Fatalf("DefaultDeck() error = %v", err)
	}
	for i, s := range deck.Slides {
		if s.ID == id {
			return s, i
		}
	}
	t.Fatalf("default deck has no slide %q", id)
	return config.Slide{}, 0
}

// mount builds a slide with the zero Mounter.
func mount(def config.Slide, index, mountID int) Model {
	return Mounter{}.Mount(def, index, mountID)
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestMountKinds(t *testing.T) {
	deck, err := config.DefaultDeck()
	if err != nil {
		t.Fatal(err)
	}

	for i, def := range deck.Slides {
		t.Run(def.ID, func(t *testing.T) {
			m := mount(def, i, i+1)

			switch def.Kind {
			case config.KindTestimonials:
				if _, ok := m.(testimonials); !ok {
					t.Errorf("mount(%s) = %T, want testimonials", def.Kind, m)
				}
			case config.KindRegistration:
				if _, ok := m.(registration); !ok {
					t.Errorf("mount(%s) = %T, want registration", def.Kind, m)
				}
			default:
				if _, ok := m.(static); !ok {
					t.Errorf("mount(%s) = %T, want static", def.Kind, m)
				}
			}

			if m.Capturing() {
				t.Error("a freshly mounted slide should not capture the keyboard")
			}
			view := m.View(100, 30)
			if def.Headline != "" && !strings.Contains(view, strings.Fields(def.Headline)[0]) {
				t.Errorf("View() does not show the headline %q", def.Headline)
			}
		})
	}
}

func TestStaticListShowsItems(t *testing.T) {
	def, i := defaultSlide(t, "problem")
	view := mount(def, i, 1).View(100, 30)
	for _, item := range def.Items {
		if !strings.Contains(view, item) {
			t.Errorf("list view missing %q", item)
		}
	}
}

func TestMonogram(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Simone: Your Guide", "S"},
		{"  dana", "D"},
		{"42", "?"},
		{"", "?"},
	}
	for _, tt := range tests {
		if got := monogram(tt.in); got != tt.want {
			t.Errorf("monogram(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTestimonialsRotate(t *testing.T) {
	def, i := defaultSlide(t, "testimonials")
	m := Mounter{RotationInterval: time.Second}.Mount(def, i, 7)

	if m.Init() == nil {
		t.Fatal("Init() should schedule the first rotation")
	}

	n := len(def.Testimonials)
	for step := 1; step <= n; step++ {
		var cmd tea.Cmd
		m, cmd = m.Update(RotateMsg{MountID: 7})
		if cmd == nil {
			t.Fatal("rotation should schedule the next one")
		}
		if got := m.(testimonials).Shown(); got != step%n {
			t.Errorf("after %d rotations shown = %d, want %d", step, got, step%n)
		}
	}
}

func TestTestimonialsIgnoreOtherMounts(t *testing.T) {
	def, i := defaultSlide(t, "testimonials")
	m := mount(def, i, 7)

	m, cmd := m.Update(RotateMsg{MountID: 6})
	if cmd != nil {
		t.Error("a rotation from an old mount should not reschedule")
	}
	if got := m.(testimonials).Shown(); got != 0 {
		t.Errorf("shown = %d, an old mount's rotation should be ignored", got)
	}
}

func TestRemountResetsTestimonials(t *testing.T) {
	def, i := defaultSlide(t, "testimonials")
	m := mount(def, i, 1)
	m, _ = m.Update(RotateMsg{MountID: 1})
	if m.(testimonials).Shown() != 1 {
		t.Fatal("rotation did not advance")
	}

	remounted := mount(def, i, 2)
	if got := remounted.(testimonials).Shown(); got != 0 {
		t.Errorf("remount shown = %d, want 0", got)
	}
	if !strings.Contains(remounted.View(100, 30), def.Testimonials[0].Author) {
		t.Error("remount should show the first testimonial")
	}
}

func newTestForm(t *testing.T, sink leads.Sink) Model {
	t.Helper()
	def, i := defaultSlide(t, "cta")
	at := time.Date(2025, 8, 25, 20, 0, 0, 0, time.UTC)
	return Mounter{Sink: sink, Now: func() time.Time { return at }}.Mount(def, i, 1)
}

func TestRegistrationSubmit(t *testing.T) {
	sink := &leads.MemorySink{}
	m := newTestForm(t, sink)

	m, _ = m.Update(keyPress("tab"))
	if !m.Capturing() {
		t.Fatal("tab should focus the form")
	}

	m = typeText(m, "Dana Cohen")
	m, _ = m.Update(keyPress("enter")) // next field
	m = typeText(m, "dana@example.com")

	m, cmd := m.Update(keyPress("enter"))
	if cmd == nil {
		t.Fatal("submit should report the registration")
	}
	msg, ok := cmd().(RegisteredMsg)
	if !ok {
		t.Fatalf("submit cmd returned %T", cmd())
	}

	if !m.(registration).Submitted() {
		t.Error("form should be submitted")
	}
	if m.Capturing() {
		t.Error("a submitted form should release the keyboard")
	}

	got := sink.Registrations()
	if len(got) != 1 {
		t.Fatalf("recorded %d registrations, want 1", len(got))
	}
	if got[0].Name != "Dana Cohen" || got[0].Email != "dana@example.com" || got[0].SlideID != "cta" {
		t.Errorf("recorded %+v", got[0])
	}
	if msg.Registration.ID != got[0].ID {
		t.Error("RegisteredMsg carries a different registration")
	}
	if !strings.Contains(m.View(100, 40), "Thank you") {
		t.Error("submitted form should show the acknowledgment")
	}
}

func TestRegistrationMissingFieldIsSilent(t *testing.T) {
	tests := []struct {
		name  string
		full  string
		email string
	}{
		{name: "empty email", full: "Dana"},
		{name: "empty name", email: "dana@example.com"},
		{name: "blank name", full: "   ", email: "dana@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &leads.MemorySink{}
			m := newTestForm(t, sink)

			m, _ = m.Update(keyPress("tab"))
			m = typeText(m, tt.full)
			m, _ = m.Update(keyPress("tab"))
			m = typeText(m, tt.email)
			m, cmd := m.Update(keyPress("enter"))

			if cmd != nil {
				t.Error("an incomplete form should not report anything")
			}
			if m.(registration).Submitted() {
				t.Error("an incomplete form should stay unsubmitted")
			}
			if len(sink.Registrations()) != 0 {
				t.Error("an incomplete form should record nothing")
			}
		})
	}
}

func TestRegistrationFocusCycle(t *testing.T) {
	m := newTestForm(t, &leads.MemorySink{})

	// Unfocused forms ignore typing so navigation keys stay with the deck
	m = typeText(m, "hl")
	if m.Capturing() || m.(registration).name.Value() != "" {
		t.Fatal("typing into an unfocused form should do nothing")
	}

	m, _ = m.Update(keyPress("tab"))
	wantFocus := []int{focusEmail, focusSubmit, focusName, focusEmail}
	for i, want := range wantFocus {
		m, _ = m.Update(keyPress("tab"))
		if got := m.(registration).focus; got != want {
			t.Errorf("tab %d: focus = %d, want %d", i, got, want)
		}
	}

	m, _ = m.Update(keyPress("shift+tab"))
	if got := m.(registration).focus; got != focusName {
		t.Errorf("shift+tab: focus = %d, want %d", got, focusName)
	}

	m, _ = m.Update(keyPress("esc"))
	if m.Capturing() {
		t.Error("esc should release the keyboard")
	}
}

func TestRemountResetsForm(t *testing.T) {
	m := newTestForm(t, &leads.MemorySink{})
	m, _ = m.Update(keyPress("tab"))
	m = typeText(m, "Half typed")
	if m.(registration).name.Value() != "Half typed" {
		t.Fatal("typing did not reach the name field")
	}

	def, i := defaultSlide(t, "cta")
	fresh := mount(def, i, 2).(registration)
	if fresh.name.Value() != "" || fresh.focus != focusNone || fresh.Submitted() {
		t.Error("a remounted form should start empty and unfocused")
	}
}

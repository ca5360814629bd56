package presenter

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/slidecast/internal/config"
	"github.com/muurk/slidecast/internal/controller"
	"github.com/muurk/slidecast/internal/logging"
	"github.com/muurk/slidecast/internal/slides"
	"github.com/muurk/slidecast/internal/ui"
)

// Transition causes recorded in the log.
const (
	causeKey    = "key"
	causeIntent = "intent"
	causeTimer  = "timer"
)

// Status is the presentation as seen from outside the event loop.
type Status struct {
	State      controller.State
	Total      int
	SlideID    string
	SlideTitle string
}

// Observer receives a Status after every controller transition. It is
// called on the event loop and must not block.
type Observer interface {
	Observe(Status)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Status)

// Observe calls f(s).
func (f ObserverFunc) Observe(s Status) { f(s) }

// AppModel is the root model of a running presentation.
type AppModel struct {
	deck     *config.Deck
	ctrl     controller.Controller
	mounter  slides.Mounter
	slide    slides.Model
	mountID  int
	observer Observer

	keys     keyMap
	help     help.Model
	showHelp bool
	toast    string
	quitting bool

	registrations int

	Width  int
	Height int
}

// NewAppModel builds the model for deck. observer may be nil.
func NewAppModel(deck *config.Deck, mounter slides.Mounter, observer Observer) (AppModel, error) {
	ctrl, err := controller.New(deck.Durations())
	if err != nil {
		return AppModel{}, fmt.Errorf("create controller: %w", err)
	}

	if mounter.RotationInterval <= 0 {
		mounter.RotationInterval = deck.RotationInterval()
	}

	m := AppModel{
		deck:     deck,
		ctrl:     ctrl,
		mounter:  mounter,
		observer: observer,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	m.mountID = 1
	m.slide = mounter.Mount(deck.Slides[0], 0, m.mountID)
	return m, nil
}

// Init arms the controller timers, initialises the first slide and
// publishes the initial status.
func (m AppModel) Init() tea.Cmd {
	m.publish()
	return tea.Batch(m.ctrl.Init(), m.slide.Init())
}

// Status returns the current presentation status.
func (m AppModel) Status() Status {
	st := m.ctrl.State()
	def := m.deck.Slides[st.ActiveIndex]
	return Status{
		State:      st,
		Total:      m.ctrl.Len(),
		SlideID:    def.ID,
		SlideTitle: def.Title,
	}
}

// Registrations returns the number of leads captured in this run.
func (m AppModel) Registrations() int {
	return m.registrations
}

// Update handles keys, intents, timer ticks and slide messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case controller.NextMsg, controller.PrevMsg, controller.GoToMsg, controller.TogglePauseMsg:
		return m.apply(msg, causeIntent)

	case slides.RegisteredMsg:
		m.registrations++
		m.toast = "✓ Seat reserved for " + msg.Registration.Name
		return m, nil
	}

	// Timer ticks and slide-local messages. Each side ignores what it did
	// not schedule.
	m, ctrlCmd := m.apply(msg, causeTimer)
	var slideCmd tea.Cmd
	m.slide, slideCmd = m.slide.Update(msg)
	return m, tea.Batch(ctrlCmd, slideCmd)
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Help), msg.String() == "esc":
			m.showHelp = false
		}
		return m, nil
	}

	if m.slide.Capturing() {
		return m.updateSlide(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		return m.apply(controller.PrevMsg{}, causeKey)
	case key.Matches(msg, m.keys.Next):
		return m.apply(controller.NextMsg{}, causeKey)
	case key.Matches(msg, m.keys.Toggle):
		return m.apply(controller.TogglePauseMsg{}, causeKey)
	case key.Matches(msg, m.keys.GoTo):
		return m.apply(controller.GoToMsg{Index: int(msg.Runes[0] - '1')}, causeKey)
	}

	return m.updateSlide(msg)
}

func (m AppModel) updateSlide(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.slide, cmd = m.slide.Update(msg)
	return m, cmd
}

// apply runs msg through the controller, remounts the slide if the index
// changed and publishes the new status if anything changed.
func (m AppModel) apply(msg tea.Msg, cause string) (AppModel, tea.Cmd) {
	before := m.ctrl.State()

	var cmd tea.Cmd
	m.ctrl, cmd = m.ctrl.Update(msg)
	after := m.ctrl.State()

	if after == before {
		return m, cmd
	}

	var mountCmd tea.Cmd
	if after.ActiveIndex != before.ActiveIndex {
		mountCmd = m.remount(after.ActiveIndex)
		logging.LogTransition(cause, before.ActiveIndex, after.ActiveIndex, m.deck.Slides[after.ActiveIndex].ID)
	}
	if after.Paused != before.Paused {
		logging.LogPause(after.Paused, after.ActiveIndex, after.Progress)
	}

	m.publish()
	return m, tea.Batch(cmd, mountCmd)
}

// remount replaces the slide model with a fresh one for index.
func (m *AppModel) remount(index int) tea.Cmd {
	m.mountID++
	m.toast = ""
	m.slide = m.mounter.Mount(m.deck.Slides[index], index, m.mountID)
	return m.slide.Init()
}

func (m AppModel) publish() {
	if m.observer != nil {
		m.observer.Observe(m.Status())
	}
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.ctrl = m.ctrl.Stop()
	m.quitting = true
	logging.Info("Presentation stopped",
		zap.Int("index", m.ctrl.State().ActiveIndex),
		zap.Int("registrations", m.registrations),
	)
	return m, tea.Quit
}

// View renders the stage, or the help overlay.
func (m AppModel) View() string {
	if m.quitting || m.Width == 0 || m.Height == 0 {
		return ""
	}
	if m.Width < minStageWidth || m.Height < minStageHeight {
		return renderTooSmall(m.Width, m.Height)
	}
	if m.showHelp {
		return RenderModal(m.helpView(), m.Width, m.Height)
	}

	inner := m.Width - 4
	st := m.ctrl.State()

	controls := ui.RenderControls(ui.ControlsView{
		ActiveIndex: st.ActiveIndex,
		Total:       m.ctrl.Len(),
		Paused:      st.Paused,
		Progress:    st.Progress,
		Title:       m.deck.Slides[st.ActiveIndex].Title,
		Width:       inner,
	})

	header := BuildHeaderContent(m.deck.Title, inner-2)
	footer := BuildFooterContent(m.deck.Footer, m.help.View(m.keys))
	if m.toast != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, toastStyle.Render(m.toast), footer)
	}

	slideHeight := m.Height - chromeHeight - lipgloss.Height(header) - lipgloss.Height(footer) - lipgloss.Height(controls)
	stage := lipgloss.JoinVertical(lipgloss.Center,
		m.slide.View(inner, max(slideHeight, 1)),
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, controls),
	)

	return RenderApplicationContainer(header, stage, footer, m.Width, m.Height)
}

func (m AppModel) helpView() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		helpTitleStyle.Render("Keyboard shortcuts"),
		m.help.FullHelpView(m.keys.FullHelp()),
		"",
		helpTitleStyle.Render("Sections"),
		m.sectionsView(),
		"",
		footerStyle.Render("Slides advance on their own. Pause to stay on one."),
		footerStyle.Render("Press tab on the registration slide to fill in the form."),
		footerStyle.Render("? or esc to close"),
	)
	return helpModalStyle.Render(content)
}

// sectionsView lists the controls by their accessible names.
func (m AppModel) sectionsView() string {
	st := m.ctrl.State()
	lines := []string{fmt.Sprintf("%-6s %s", "space", ui.ToggleLabel(st.Paused))}
	for i, s := range m.deck.Slides {
		if i >= maxGoToKeys {
			break
		}
		line := fmt.Sprintf("%-6d %s: %s", i+1, ui.IndicatorLabel(i), s.Title)
		if i == st.ActiveIndex {
			line += " ●"
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

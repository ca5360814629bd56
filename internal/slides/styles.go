package slides

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/slidecast/internal/ui"
)

// panelWidth is the width of the content panel drawn over the background.
const panelWidth = 64

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.MutedColor).
			Padding(1, 3).
			Width(panelWidth)

	headlineStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Bold(true).
			Align(lipgloss.Center).
			Width(panelWidth - 8)

	subheadlineStyle = lipgloss.NewStyle().
				Foreground(ui.AccentColor).
				Align(lipgloss.Center).
				Width(panelWidth - 8)

	itemStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor)

	bulletStyle = lipgloss.NewStyle().
			Foreground(ui.AccentColor)

	tileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.AccentColor).
			Padding(0, 1).
			Width(18).
			Height(4).
			Align(lipgloss.Center)

	tileIconStyle = lipgloss.NewStyle().
			Foreground(ui.AccentColor).
			Bold(true)

	monogramStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.AccentColor).
			Foreground(ui.AccentColor).
			Bold(true).
			Padding(1, 3)

	quoteStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Italic(true).
			Align(lipgloss.Center).
			Width(panelWidth - 8)

	authorStyle = lipgloss.NewStyle().
			Foreground(ui.AccentColor).
			Bold(true)

	eventStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor)

	noteStyle = lipgloss.NewStyle().
			Foreground(ui.HighlightColor).
			Bold(true)

	closingStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Align(lipgloss.Center).
			Width(panelWidth - 8)

	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ui.MutedColor).
			Width(panelWidth - 12)

	focusedFieldStyle = fieldStyle.
				BorderForeground(ui.AccentColor)

	buttonStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Background(lipgloss.Color("#c2410c")).
			Bold(true).
			Padding(0, 3)

	focusedButtonStyle = buttonStyle.
				Background(ui.AccentColor).
				Foreground(ui.PrimaryColor)

	thanksStyle = lipgloss.NewStyle().
			Foreground(ui.SuccessColor).
			Bold(true).
			Align(lipgloss.Center).
			Width(panelWidth - 8)

	hintStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Italic(true)
)

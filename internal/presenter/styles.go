package presenter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/slidecast/internal/ui"
	"github.com/muurk/slidecast/internal/version"
)

// AppName is shown in the stage header.
const AppName = "slidecast"

// Minimum stage size. Smaller terminals get a resize notice instead.
const (
	minStageWidth  = ui.MinTerminalWidth
	minStageHeight = 20
)

var (
	headerTitleStyle = lipgloss.NewStyle().
				Foreground(ui.TextColor).
				Bold(true)

	headerVersionStyle = lipgloss.NewStyle().
				Foreground(ui.MutedColor)

	footerStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor)

	creditStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Italic(true)

	toastStyle = lipgloss.NewStyle().
			Foreground(ui.SuccessColor).
			Bold(true)

	helpModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.AccentColor).
			Padding(1, 3)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(ui.AccentColor).
			Bold(true).
			MarginBottom(1)
)

// BuildHeaderContent lays out the deck title on the left and the app
// version on the right of a line of the given inner width.
func BuildHeaderContent(title string, width int) string {
	left := headerTitleStyle.Render(title)
	right := headerVersionStyle.Render(AppName + " " + version.Short())

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right)
}

// BuildFooterContent stacks the deck credits above the help line.
func BuildFooterContent(credits []string, helpText string) string {
	lines := make([]string, 0, len(credits)+1)
	for _, c := range credits {
		lines = append(lines, creditStyle.Render(c))
	}
	lines = append(lines, footerStyle.Render(helpText))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderApplicationContainer wraps the stage in the header/footer frame
// and fills the terminal.
func RenderApplicationContainer(header, content, footer string, terminalWidth, terminalHeight int) string {
	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerFrame := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(header),
		lipgloss.NewStyle().Width(terminalWidth-4).Render(content),
		footerFrame.Render(footer),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(terminalWidth, terminalHeight, lipgloss.Left, lipgloss.Top, bordered)
}

// chromeHeight is the number of rows the container adds around content:
// outer border (2), header border (1), footer border (1).
const chromeHeight = 4

// RenderModal centers modalContent over a dimmed full-screen overlay.
func RenderModal(modalContent string, terminalWidth, terminalHeight int) string {
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}

// renderTooSmall asks for a larger terminal.
func renderTooSmall(width, height int) string {
	msg := footerStyle.Render("Terminal too small. Please resize to at least 60×20.")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

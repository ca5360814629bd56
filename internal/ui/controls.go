package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Navigation glyphs
const (
	PrevGlyph      = "◀"
	NextGlyph      = "▶"
	PauseGlyph     = "❚❚"
	PlayGlyph      = "►"
	InactiveGlyph  = "•"
	PausedDotGlyph = "●"
)

// sweepGlyphs fill clockwise as the active slide progresses.
var sweepGlyphs = []string{"○", "◔", "◑", "◕", "●"}

// ControlsView is everything the navigation surface shows. It is derived
// from the controller state on every render.
type ControlsView struct {
	ActiveIndex int
	Total       int
	Paused      bool
	Progress    float64 // 0-100
	Title       string  // title of the active slide
	Width       int
}

// SweepGlyph returns the radial glyph for a progress percentage.
func SweepGlyph(progress float64) string {
	switch {
	case progress < 12.5:
		return sweepGlyphs[0]
	case progress < 37.5:
		return sweepGlyphs[1]
	case progress < 62.5:
		return sweepGlyphs[2]
	case progress < 87.5:
		return sweepGlyphs[3]
	default:
		return sweepGlyphs[4]
	}
}

// ToggleLabel is the accessible name of the pause/resume control.
func ToggleLabel(paused bool) string {
	if paused {
		return "Play"
	}
	return "Pause"
}

// IndicatorLabel is the accessible name of the indicator for slide i.
func IndicatorLabel(i int) string {
	return fmt.Sprintf("Go to section %d", i+1)
}

// RenderIndicators renders one indicator per slide. The active one shows a
// sweep of its progress while playing and a solid dot while paused.
func RenderIndicators(v ControlsView) string {
	dots := make([]string, v.Total)
	for i := range dots {
		switch {
		case i != v.ActiveIndex:
			dots[i] = InactiveIndicatorStyle.Render(InactiveGlyph)
		case v.Paused:
			dots[i] = ActiveIndicatorStyle.Render(PausedDotGlyph)
		default:
			dots[i] = ActiveIndicatorStyle.Render(SweepGlyph(v.Progress))
		}
	}
	return strings.Join(dots, " ")
}

// RenderControls renders the navigation surface: prev, pause/resume and
// next controls, the indicator row, the active slide title and a linear
// progress bar.
func RenderControls(v ControlsView) string {
	toggle := PauseGlyph
	if v.Paused {
		toggle = PlayGlyph
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		ControlStyle.Render(PrevGlyph),
		ControlStyle.Render(toggle),
		ControlStyle.Render(NextGlyph),
	)

	row := lipgloss.JoinHorizontal(lipgloss.Center,
		buttons,
		"  ",
		RenderIndicators(v),
	)

	title := SlideTitleStyle.Render(fmt.Sprintf("%d/%d  %s", v.ActiveIndex+1, v.Total, v.Title))
	if v.Paused {
		title += " " + PausedTagStyle.Render("paused")
	}

	barWidth := v.Width - 4
	if barWidth < 20 {
		barWidth = 20
	}
	bar := progress.New(
		progress.WithSolidFill(string(AccentColor)),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
	)

	return lipgloss.JoinVertical(lipgloss.Center,
		row,
		title,
		bar.ViewAs(v.Progress/100),
	)
}

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// OutlineRow is one slide in a deck outline.
type OutlineRow struct {
	ID       string
	Title    string
	Kind     string
	Duration time.Duration
}

// Outline renders a deck as a numbered list with each slide's share of one
// full cycle drawn as a bar.
type Outline struct {
	Rows  []OutlineRow
	Width int
}

// NewOutline creates an outline for rows
func NewOutline(rows []OutlineRow) *Outline {
	return &Outline{Rows: rows, Width: GetTerminalWidth()}
}

// SetWidth sets the terminal width for responsive rendering
func (o *Outline) SetWidth(width int) *Outline {
	o.Width = width
	return o
}

// Total returns the length of one full cycle.
func (o *Outline) Total() time.Duration {
	var total time.Duration
	for _, r := range o.Rows {
		total += r.Duration
	}
	return total
}

// Render returns the styled outline as a string
func (o *Outline) Render() string {
	total := o.Total()
	n := len(o.Rows)

	titleWidth := 0
	for _, r := range o.Rows {
		if w := lipgloss.Width(r.Title); w > titleWidth {
			titleWidth = w
		}
	}

	barWidth := o.Width - titleWidth - 36
	if barWidth < 10 {
		barWidth = 10
	}
	if barWidth > 40 {
		barWidth = 40
	}
	bar := progress.New(
		progress.WithSolidFill(string(AccentColor)),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
	)

	lines := make([]string, 0, n+2)
	for i, r := range o.Rows {
		share := 0.0
		if total > 0 {
			share = float64(r.Duration) / float64(total)
		}

		var b strings.Builder
		b.WriteString(OutlineIndexStyle.Render(fmt.Sprintf("  [%d/%d]", i+1, n)))
		b.WriteString(" ")
		b.WriteString(OutlineTitleStyle.Render(r.Title + strings.Repeat(" ", titleWidth-lipgloss.Width(r.Title))))
		b.WriteString("  ")
		b.WriteString(OutlineKindStyle.Render(fmt.Sprintf("%-12s", r.Kind)))
		b.WriteString(fmt.Sprintf("%6s  ", formatSeconds(r.Duration)))
		b.WriteString(bar.ViewAs(share))
		lines = append(lines, b.String())
	}

	lines = append(lines, "", OutlineIndexStyle.Render(fmt.Sprintf("  %d slides, %s per cycle", n, formatSeconds(total))))
	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer
func (o *Outline) String() string {
	return o.Render()
}

// formatSeconds rounds to a tenth of a second ("6s", "2.3s").
func formatSeconds(d time.Duration) string {
	return d.Round(100 * time.Millisecond).String()
}

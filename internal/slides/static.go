package slides

import (
	"strings"
	"sync"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/slidecast/internal/config"
)

// tilesPerRow is the number of benefit tiles per grid row.
const tilesPerRow = 3

var (
	mdRenderer     *glamour.TermRenderer
	mdRendererOnce sync.Once
)

// renderMarkdown renders a markdown body, falling back to the raw text if
// the renderer is unavailable.
func renderMarkdown(body string) string {
	mdRendererOnce.Do(func() {
		mdRenderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(panelWidth-8),
		)
	})
	if mdRenderer == nil {
		return body
	}
	out, err := mdRenderer.Render(body)
	if err != nil {
		return body
	}
	return strings.Trim(out, "\n")
}

// static is a slide without timers or input: hero, list, benefits and
// profile. Its content is rendered once at mount.
type static struct {
	frame
	content string
}

func newStatic(f frame) static {
	s := static{frame: f}

	parts := f.heading()
	switch f.def.Kind {
	case config.KindList:
		parts = append(parts, renderItems(f.def.Items, "•"))
	case config.KindBenefits:
		parts = append(parts, renderBenefits(f.def.Benefits))
	case config.KindProfile:
		parts = append(parts, renderProfile(f.def))
	}
	if f.def.Body != "" {
		parts = append(parts, renderMarkdown(f.def.Body))
	}

	s.content = lipgloss.JoinVertical(lipgloss.Center, parts...)
	return s
}

func (s static) Init() tea.Cmd { return nil }

func (s static) Update(tea.Msg) (Model, tea.Cmd) { return s, nil }

func (s static) Capturing() bool { return false }

func (s static) View(width, height int) string {
	return s.place(s.content, width, height)
}

func renderItems(items []string, bullet string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = bulletStyle.Render(bullet) + " " + itemStyle.Render(item)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderBenefits(benefits []config.Benefit) string {
	var rows []string
	for start := 0; start < len(benefits); start += tilesPerRow {
		end := min(start+tilesPerRow, len(benefits))
		tiles := make([]string, 0, tilesPerRow)
		for _, b := range benefits[start:end] {
			tiles = append(tiles, tileStyle.Render(tileIconStyle.Render(b.Icon)+"\n"+b.Text))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func renderProfile(def config.Slide) string {
	badge := monogramStyle.Render(monogram(def.Headline))
	return lipgloss.JoinHorizontal(lipgloss.Center,
		badge,
		"   ",
		renderItems(def.Items, "✦"),
	)
}

// monogram returns the first letter of name, upper-cased.
func monogram(name string) string {
	for _, r := range name {
		if unicode.IsLetter(r) {
			return string(unicode.ToUpper(r))
		}
	}
	return "?"
}

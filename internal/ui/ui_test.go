package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSweepGlyph(t *testing.T) {
	tests := []struct {
		progress float64
		want     string
	}{
		{0, "○"},
		{12.4, "○"},
		{12.5, "◔"},
		{25, "◔"},
		{50, "◑"},
		{75, "◕"},
		{87.5, "●"},
		{100, "●"},
	}

	for _, tt := range tests {
		if got := SweepGlyph(tt.progress); got != tt.want {
			t.Errorf("SweepGlyph(%v) = %q, want %q", tt.progress, got, tt.want)
		}
	}
}

func TestRenderIndicatorsOnePerSlide(t *testing.T) {
	for _, total := range []int{1, 3, 7} {
		v := ControlsView{ActiveIndex: total - 1, Total: total, Progress: 50}
		out := RenderIndicators(v)

		if got := strings.Count(out, InactiveGlyph); got != total-1 {
			t.Errorf("total %d: %d inactive indicators, want %d", total, got, total-1)
		}
		if !strings.Contains(out, "◑") {
			t.Errorf("total %d: active indicator should show the 50%% sweep, got %q", total, out)
		}
	}
}

func TestRenderControls(t *testing.T) {
	tests := []struct {
		name       string
		view       ControlsView
		wantToggle string
		wantActive string
		wantPaused bool
	}{
		{
			name:       "playing",
			view:       ControlsView{ActiveIndex: 2, Total: 7, Progress: 30, Title: "The path to healing", Width: 80},
			wantToggle: PauseGlyph,
			wantActive: "◔",
		},
		{
			name:       "paused",
			view:       ControlsView{ActiveIndex: 0, Total: 7, Paused: true, Progress: 30, Title: "Into the current", Width: 80},
			wantToggle: PlayGlyph,
			wantActive: PausedDotGlyph,
			wantPaused: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderControls(tt.view)

			for _, want := range []string{PrevGlyph, NextGlyph, tt.wantToggle, tt.wantActive, tt.view.Title} {
				if !strings.Contains(out, want) {
					t.Errorf("RenderControls() missing %q in:\n%s", want, out)
				}
			}
			if got := strings.Count(out, InactiveGlyph); got != tt.view.Total-1 {
				t.Errorf("%d inactive indicators, want %d", got, tt.view.Total-1)
			}
			if strings.Contains(out, "paused") != tt.wantPaused {
				t.Errorf("paused tag shown = %v, want %v", !tt.wantPaused, tt.wantPaused)
			}
		})
	}
}

func TestAccessibleLabels(t *testing.T) {
	if ToggleLabel(false) != "Pause" || ToggleLabel(true) != "Play" {
		t.Errorf("ToggleLabel() = %q/%q", ToggleLabel(false), ToggleLabel(true))
	}
	if got := IndicatorLabel(0); got != "Go to section 1" {
		t.Errorf("IndicatorLabel(0) = %q", got)
	}
}

func TestHeaderKeepsParamOrder(t *testing.T) {
	out := NewHeader("Deck outline", "slidecast outline",
		Param{Key: "Deck", Value: "embedded default"},
		Param{Key: "Slides", Value: "7"},
	).SetWidth(80).Render()

	if !strings.Contains(out, "DECK OUTLINE") {
		t.Errorf("title should be upper-cased:\n%s", out)
	}
	deck := strings.Index(out, "embedded default")
	slides := strings.Index(out, "Slides:")
	if deck < 0 || slides < 0 || deck > slides {
		t.Errorf("params out of order:\n%s", out)
	}
}

func TestResultRender(t *testing.T) {
	ok := NewSuccessResult("Deck is valid", Param{Key: "Slides", Value: "7"}).SetWidth(80).Render()
	if !strings.Contains(ok, "SUCCESS") || !strings.Contains(ok, "Deck is valid") || !strings.Contains(ok, "Slides:") {
		t.Errorf("success box:\n%s", ok)
	}

	fail := NewFailureResult("Deck is invalid", errors.New("slides[0].duration: must be positive"),
		"Durations are in seconds").SetWidth(80).Render()
	for _, want := range []string{"FAILED", "must be positive", "Troubleshooting:", "Durations are in seconds"} {
		if !strings.Contains(fail, want) {
			t.Errorf("failure box missing %q:\n%s", want, fail)
		}
	}
}

func TestOutline(t *testing.T) {
	o := NewOutline([]OutlineRow{
		{ID: "hero", Title: "Into the current", Kind: "hero", Duration: 6 * time.Second},
		{ID: "cta", Title: "Your seat is waiting", Kind: "registration", Duration: 2300 * time.Millisecond},
	}).SetWidth(100)

	if o.Total() != 8300*time.Millisecond {
		t.Errorf("Total() = %s", o.Total())
	}

	out := o.Render()
	for _, want := range []string{"[1/2]", "[2/2]", "Into the current", "registration", "6s", "2.3s", "2 slides, 8.3s per cycle"} {
		if !strings.Contains(out, want) {
			t.Errorf("outline missing %q:\n%s", want, out)
		}
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "exact", input: "overwrite\n", want: true},
		{name: "padded", input: "  overwrite  \n", want: true},
		{name: "no newline", input: "overwrite", want: true},
		{name: "wrong word", input: "yes\n", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := Confirm(strings.NewReader(tt.input), &out, "Overwrite deck", []string{"deck.yaml exists"}, "overwrite")
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), "deck.yaml exists") {
				t.Errorf("warning not shown:\n%s", out.String())
			}
		})
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	if p.Width() < MinTerminalWidth {
		t.Errorf("Width() = %d, want >= %d", p.Width(), MinTerminalWidth)
	}

	p.PrintHeader("Validate deck", "slidecast validate")
	p.PrintSuccess("Deck is valid")
	p.PrintError("Deck is invalid", errors.New("boom"))

	out := buf.String()
	for _, want := range []string{"VALIDATE DECK", "Deck is valid", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("printer output missing %q", want)
		}
	}
}

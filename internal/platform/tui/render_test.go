package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(6, 0, "2048", core.ColorBrightMagenta)
	s.SetColored(0, 2, '┼', core.ColorGray)

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("rendered %d line breaks, want 2", got)
	}
	for _, want := range []string{"plain", "2048", "┼"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for %v", c)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("too long", 4); got != "too long" {
		t.Errorf("centerText should not trim: %q", got)
	}
}

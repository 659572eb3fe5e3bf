package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/desert-nomad/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "dunes")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "dunes     " {
		t.Errorf("Line 0 = %q, want %q", lines[0], "dunes     ")
	}
}

func TestRenderScreenColoredRunsKeepText(t *testing.T) {
	s := core.NewScreen(8, 1)
	s.DrawTextColored(0, 0, "ab", core.ColorOrange)
	s.DrawTextColored(2, 0, "cd", core.ColorCyan)
	s.SetColored(7, 0, ' ', core.ColorRed)

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output %q missing %q", out, want)
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	// Must not panic on colors outside the palette
	_ = styleFor(core.Color(200)).Render("x")
}

func TestPaletteCoversAllColors(t *testing.T) {
	if len(palette) != int(core.ColorGray)+1 {
		t.Errorf("Palette has %d entries, want %d", len(palette), int(core.ColorGray)+1)
	}
}

package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"tilesnake/config"
	"tilesnake/game/types"
)

func newTestTextRenderer(t *testing.T) *TextRenderer {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(40, 20)

	r, err := NewTextRenderer(screen, config.Text{Palette: map[string]string{
		"g":    ".",
		"b":    "o",
		"r":    "@",
		"NULL": " ",
	}})
	if err != nil {
		t.Fatalf("NewTextRenderer: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestTextRendererFrame(t *testing.T) {
	r := newTestTextRenderer(t)

	if err := r.SetScene(3, 2, Green); err != nil {
		t.Fatal(err)
	}
	r.AddTiles([]types.Point{{0, 0}, {1, 0}}, Blue)
	r.AddTile(2, 1, Red)
	if err := r.RenderScene(); err != nil {
		t.Fatal(err)
	}

	want := "o o . \n. . @ "
	if got := r.Frame(); got != want {
		t.Errorf("Frame() =\n%q\nwant\n%q", got, want)
	}
}

func TestTextRendererWritesScreen(t *testing.T) {
	r := newTestTextRenderer(t)
	screen := r.screen.(tcell.SimulationScreen)

	r.SetScene(3, 2, Green)
	r.AddTile(0, 0, Blue)
	r.AddTile(2, 1, Red)
	if err := r.RenderScene(); err != nil {
		t.Fatal(err)
	}

	cells, width, _ := screen.GetContents()
	cell := func(x, y int) tcell.SimCell { return cells[y*width+x] }

	tests := []struct {
		x, y int
		ch   rune
		fg   tcell.Color
	}{
		{0, 0, 'o', tcell.ColorBlue},
		{2, 0, '.', tcell.ColorGreen},
		{4, 0, '.', tcell.ColorGreen},
		{0, 1, '.', tcell.ColorGreen},
		{4, 1, '@', tcell.ColorRed},
	}
	for _, tt := range tests {
		c := cell(tt.x, tt.y)
		if len(c.Runes) == 0 || c.Runes[0] != tt.ch {
			t.Errorf("cell (%d,%d) = %q, want %q", tt.x, tt.y, c.Runes, tt.ch)
		}
		if fg, _, _ := c.Style.Decompose(); fg != tt.fg {
			t.Errorf("cell (%d,%d) fg = %v, want %v", tt.x, tt.y, fg, tt.fg)
		}
		// every tile is followed by a blank column
		if pad := cell(tt.x+1, tt.y); len(pad.Runes) > 0 && pad.Runes[0] != ' ' {
			t.Errorf("cell (%d,%d) = %q, want blank", tt.x+1, tt.y, pad.Runes)
		}
	}
	if c := cell(6, 0); len(c.Runes) > 0 && c.Runes[0] != ' ' {
		t.Errorf("cell past the grid = %q, want blank", c.Runes)
	}
}

func TestTextRendererTextClipped(t *testing.T) {
	r := newTestTextRenderer(t)

	r.SetScene(4, 1, Green)
	r.AddText(1, 0, "score")
	r.RenderScene()

	want := ". s c o "
	if got := r.Frame(); got != want {
		t.Errorf("Frame() = %q, want %q", got, want)
	}
}

func TestTextRendererUnmappedTextureUsesNull(t *testing.T) {
	r := newTestTextRenderer(t)

	r.SetScene(2, 1, Green)
	r.AddTile(0, 0, Magenta)
	r.RenderScene()

	if got := r.Frame(); !strings.HasPrefix(got, "  ") {
		t.Errorf("Frame() = %q, want NULL glyph first", got)
	}
}

func TestTextRendererReallocatesOnlyOnResize(t *testing.T) {
	r := newTestTextRenderer(t)

	r.SetScene(3, 3, Green)
	r.SetScene(3, 3, Green)
	if r.Allocations() != 1 {
		t.Errorf("Allocations() = %d after identical scenes, want 1", r.Allocations())
	}
	r.SetScene(4, 3, Green)
	if r.Allocations() != 2 {
		t.Errorf("Allocations() = %d after resize, want 2", r.Allocations())
	}
}

func TestTextRendererRequiresNull(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	_, err := NewTextRenderer(screen, config.Text{Palette: map[string]string{"g": "."}})
	var ce *ConfigError
	if !errors.As(err, &ce) || ce.Key != "NULL" {
		t.Errorf("error = %v, want ConfigError for NULL", err)
	}
}

func TestTextRendererRejectsLongGlyph(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	_, err := NewTextRenderer(screen, config.Text{Palette: map[string]string{"g": "..", "NULL": " "}})
	var ce *ConfigError
	if !errors.As(err, &ce) || ce.Key != "g" {
		t.Errorf("error = %v, want ConfigError for g", err)
	}
}

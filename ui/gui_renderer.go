package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"tilesnake/config"
)

// Window is the pixel surface the graphical renderer draws on
type Window interface {
	// Open creates the window, or resizes it when already open
	Open(width, height int, title string)
	// Clear begins a frame and fills it with c
	Clear(c color.RGBA)
	FillRect(x, y, w, h int, c color.RGBA)
	DrawText(s string, x, y, size int, c color.RGBA)
	// Present ends the frame begun by Clear and shows it
	Present()
	Close()
}

var textInk = color.RGBA{A: 0xff}

// GraphicalRenderer draws each tile as a filled square in a window
type GraphicalRenderer struct {
	*Scene

	window   Window
	colors   map[Texture]color.RGBA
	title    string
	tileSize int
	fontSize int

	opened              bool
	winWidth, winHeight int
	resized             bool
	resizes             int
}

func NewGraphicalRenderer(window Window, cfg config.Graphical) (*GraphicalRenderer, error) {
	if cfg.TileSize < 1 {
		return nil, &ConfigError{Renderer: "GraphicalRenderer", Key: "px_per_tile", Err: fmt.Errorf("must be positive, got %d", cfg.TileSize)}
	}
	colors, err := resolvePalette("GraphicalRenderer", cfg.Palette, ParseColor)
	if err != nil {
		return nil, err
	}
	r := &GraphicalRenderer{
		window:   window,
		colors:   colors,
		title:    cfg.Title,
		tileSize: cfg.TileSize,
		fontSize: cfg.FontSize,
	}
	r.Scene = NewScene(r)
	return r, nil
}

// ParseColor accepts an SVG colour name or #rrggbb
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 {
			return color.RGBA{}, fmt.Errorf("bad hex colour %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("bad hex colour %q: %w", s, err)
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown colour %q", s)
	}
	return c, nil
}

func (r *GraphicalRenderer) color(t Texture) color.RGBA {
	if c, ok := r.colors[t]; ok {
		return c
	}
	return r.colors[NoTexture]
}

// PostSetup opens or resizes the window only when the scene size changed
func (r *GraphicalRenderer) PostSetup() error {
	if r.opened && r.winWidth == r.Width() && r.winHeight == r.Height() {
		r.resized = false
		return nil
	}
	r.winWidth, r.winHeight = r.Width(), r.Height()
	r.window.Open(r.winWidth*r.tileSize, r.winHeight*r.tileSize, r.title)
	r.opened = true
	r.resized = true
	r.resizes++
	return nil
}

func (r *GraphicalRenderer) PreRender() error {
	r.window.Clear(r.color(r.Field()))
	return nil
}

// DrawTile skips field tiles; PreRender already painted them
func (r *GraphicalRenderer) DrawTile(x, y int, t Texture) {
	if t == r.Field() {
		return
	}
	r.window.FillRect(x*r.tileSize, y*r.tileSize, r.tileSize, r.tileSize, r.color(t))
}

func (r *GraphicalRenderer) PostRender() error {
	for _, a := range r.Text() {
		r.window.DrawText(a.Text, a.At.X*r.tileSize, a.At.Y*r.tileSize, r.fontSize, textInk)
	}
	r.window.Present()
	return nil
}

// Resized reports whether the last SetScene opened or resized the window
func (r *GraphicalRenderer) Resized() bool {
	return r.resized
}

// Resizes counts window (re)allocations
func (r *GraphicalRenderer) Resizes() int {
	return r.resizes
}

func (r *GraphicalRenderer) Close() error {
	if r.opened {
		r.window.Close()
		r.opened = false
	}
	return nil
}

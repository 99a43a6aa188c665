package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"tilesnake/config"
)

var textColors = map[Texture]tcell.Color{
	Red:     tcell.ColorRed,
	Green:   tcell.ColorGreen,
	Blue:    tcell.ColorBlue,
	Cyan:    tcell.ColorTeal,
	Magenta: tcell.ColorPurple,
	Yellow:  tcell.ColorYellow,
	White:   tcell.ColorWhite,
	Black:   tcell.ColorGray,
}

type textCell struct {
	ch rune
	t  Texture
}

// TextRenderer draws the scene as characters on a terminal. Each tile takes
// two columns: its palette character and a space.
type TextRenderer struct {
	*Scene

	screen tcell.Screen
	glyphs map[Texture]rune
	buffer [][]textCell

	bufWidth, bufHeight int
	allocs              int
}

// NewTextRenderer maps the configured palette to characters. The screen
// must already be initialised; Close finalises it.
func NewTextRenderer(screen tcell.Screen, cfg config.Text) (*TextRenderer, error) {
	glyphs, err := resolvePalette("TextRenderer", cfg.Palette, parseGlyph)
	if err != nil {
		return nil, err
	}
	r := &TextRenderer{
		screen: screen,
		glyphs: glyphs,
	}
	r.Scene = NewScene(r)
	return r, nil
}

func parseGlyph(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("want a single character, got %q", s)
	}
	ch, _ := utf8.DecodeRuneInString(s)
	return ch, nil
}

func (r *TextRenderer) glyph(t Texture) rune {
	if ch, ok := r.glyphs[t]; ok {
		return ch
	}
	return r.glyphs[NoTexture]
}

// PostSetup reallocates the buffer when the scene size changed
func (r *TextRenderer) PostSetup() error {
	if r.buffer != nil && r.bufWidth == r.Width() && r.bufHeight == r.Height() {
		return nil
	}
	r.bufWidth, r.bufHeight = r.Width(), r.Height()
	r.buffer = make([][]textCell, r.bufHeight)
	for y := range r.buffer {
		r.buffer[y] = make([]textCell, r.bufWidth)
	}
	r.allocs++
	return nil
}

func (r *TextRenderer) DrawTile(x, y int, t Texture) {
	r.buffer[y][x] = textCell{ch: r.glyph(t), t: t}
}

func (r *TextRenderer) PreRender() error {
	r.screen.Clear()
	return nil
}

func (r *TextRenderer) PostRender() error {
	r.bufferText()
	base := tcell.StyleDefault
	for y, row := range r.buffer {
		for x, c := range row {
			style := base
			if fg, ok := textColors[c.t]; ok {
				style = base.Foreground(fg)
			}
			r.screen.SetContent(2*x, y, c.ch, nil, style)
			r.screen.SetContent(2*x+1, y, ' ', nil, base)
		}
	}
	r.screen.Show()
	return nil
}

// bufferText writes annotations over the tiles, clipped at the right edge
func (r *TextRenderer) bufferText() {
	for _, a := range r.Text() {
		row := r.buffer[a.At.Y]
		x := a.At.X
		for _, ch := range a.Text {
			if x >= len(row) {
				break
			}
			row[x] = textCell{ch: ch, t: NoTexture}
			x++
		}
	}
}

// Frame returns the last drawn buffer as newline-joined rows
func (r *TextRenderer) Frame() string {
	var sb strings.Builder
	for y, row := range r.buffer {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteRune(c.ch)
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Allocations counts buffer reallocations
func (r *TextRenderer) Allocations() int {
	return r.allocs
}

func (r *TextRenderer) Close() error {
	r.screen.Fini()
	return nil
}

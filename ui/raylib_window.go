package ui

import (
	"image/color"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var fontDirs = []string{
	"/usr/share/fonts",
	"/usr/local/share/fonts",
	"/Library/Fonts",
	"/System/Library/Fonts",
	`C:\Windows\Fonts`,
}

// RaylibWindow is the raylib implementation of Window. All calls must come
// from the goroutine locked to the main OS thread.
type RaylibWindow struct {
	fontName string
	font     rl.Font
	hasFont  bool
	open     bool
}

func NewRaylibWindow(fontName string) *RaylibWindow {
	return &RaylibWindow{fontName: fontName}
}

func (w *RaylibWindow) Open(width, height int, title string) {
	if w.open {
		rl.SetWindowSize(width, height)
		return
	}
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), title)
	// Esc is the game's quit key, not raylib's
	rl.SetExitKey(rl.KeyNull)
	w.open = true

	if path := findFont(w.fontName, fontDirs); path != "" {
		w.font = rl.LoadFont(path)
		w.hasFont = true
	}
}

// Clear opens the frame with BeginDrawing; Present closes it
func (w *RaylibWindow) Clear(c color.RGBA) {
	rl.BeginDrawing()
	rl.ClearBackground(toRaylib(c))
}

func (w *RaylibWindow) FillRect(x, y, width, height int, c color.RGBA) {
	rl.DrawRectangle(int32(x), int32(y), int32(width), int32(height), toRaylib(c))
}

func (w *RaylibWindow) DrawText(s string, x, y, size int, c color.RGBA) {
	if w.hasFont {
		rl.DrawTextEx(w.font, s, rl.NewVector2(float32(x), float32(y)), float32(size), 1, toRaylib(c))
		return
	}
	rl.DrawText(s, int32(x), int32(y), int32(size), toRaylib(c))
}

func (w *RaylibWindow) Present() {
	rl.EndDrawing()
}

func (w *RaylibWindow) Close() {
	if !w.open {
		return
	}
	if w.hasFont {
		rl.UnloadFont(w.font)
		w.hasFont = false
	}
	rl.CloseWindow()
	w.open = false
}

func toRaylib(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// findFont resolves a font given as a path or as a family file name such as
// "FreeMono", searching dirs two levels deep. It returns "" when nothing matches.
func findFont(name string, dirs []string) string {
	if name == "" {
		return ""
	}
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return name
	}
	for _, dir := range dirs {
		for _, pattern := range []string{
			filepath.Join(dir, name+".[ot]tf"),
			filepath.Join(dir, "*", name+".[ot]tf"),
			filepath.Join(dir, "*", "*", name+".[ot]tf"),
		} {
			if matches, _ := filepath.Glob(pattern); len(matches) > 0 {
				return matches[0]
			}
		}
	}
	return ""
}

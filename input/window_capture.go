package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

var raylibKeys = map[Key]int32{
	KeyW:     rl.KeyW,
	KeyA:     rl.KeyA,
	KeyS:     rl.KeyS,
	KeyD:     rl.KeyD,
	KeyH:     rl.KeyH,
	KeyJ:     rl.KeyJ,
	KeyK:     rl.KeyK,
	KeyL:     rl.KeyL,
	KeyUp:    rl.KeyUp,
	KeyDown:  rl.KeyDown,
	KeyLeft:  rl.KeyLeft,
	KeyRight: rl.KeyRight,
	KeySpace: rl.KeySpace,
	KeyEsc:   rl.KeyEscape,
}

// WindowCapture polls raylib's keyboard state. raylib is not thread safe, so
// Held must be called from the goroutine that owns the window.
// Closing the window reads as the quit key.
type WindowCapture struct{}

func NewWindowCapture() *WindowCapture {
	return &WindowCapture{}
}

func (c *WindowCapture) Held() KeySet {
	held := make(KeySet)
	if !rl.IsWindowReady() {
		return held
	}
	rl.PollInputEvents()
	if rl.WindowShouldClose() {
		held[QuitKey] = struct{}{}
	}
	for k, code := range raylibKeys {
		if rl.IsKeyDown(code) {
			held[k] = struct{}{}
		}
	}
	return held
}

// Package input tracks which keys are held and turns them into game intents.
package input

import (
	"tilesnake/game/types"
)

// Key names a physical key independently of the device that reported it
type Key string

const (
	KeyW     Key = "w"
	KeyA     Key = "a"
	KeyS     Key = "s"
	KeyD     Key = "d"
	KeyH     Key = "h"
	KeyJ     Key = "j"
	KeyK     Key = "k"
	KeyL     Key = "l"
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeySpace Key = "space"
	KeyEsc   Key = "esc"
)

const (
	PauseKey = KeySpace
	QuitKey  = KeyEsc
)

// headings is the fixed binding table: wasd, vi keys and arrows
var headings = map[Key]types.Heading{
	KeyW:     types.Up,
	KeyK:     types.Up,
	KeyUp:    types.Up,
	KeyA:     types.Left,
	KeyH:     types.Left,
	KeyLeft:  types.Left,
	KeyS:     types.Down,
	KeyJ:     types.Down,
	KeyDown:  types.Down,
	KeyD:     types.Right,
	KeyL:     types.Right,
	KeyRight: types.Right,
}

// HeadingFor returns the heading bound to k
func HeadingFor(k Key) (types.Heading, bool) {
	h, ok := headings[k]
	return h, ok
}

// IsBound reports whether k has any meaning to the game
func IsBound(k Key) bool {
	_, ok := headings[k]
	return ok || k == PauseKey || k == QuitKey
}

// BoundKeys lists every key the game reacts to
func BoundKeys() []Key {
	keys := make([]Key, 0, len(headings)+2)
	for k := range headings {
		keys = append(keys, k)
	}
	return append(keys, PauseKey, QuitKey)
}

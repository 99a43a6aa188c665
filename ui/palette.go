package ui

import "fmt"

// Texture is a palette identifier. Each renderer maps it to something drawable.
type Texture int

const (
	// NoTexture is the background sentinel, configured under the NULL key
	NoTexture Texture = iota
	Red
	Green
	Blue
	Cyan
	Magenta
	Yellow
	White
	Black
)

var textureIDs = map[string]Texture{
	"r":    Red,
	"g":    Green,
	"b":    Blue,
	"c":    Cyan,
	"m":    Magenta,
	"y":    Yellow,
	"w":    White,
	"k":    Black,
	"NULL": NoTexture,
}

// ParseTexture resolves a configuration identifier such as "g" or "NULL"
func ParseTexture(id string) (Texture, error) {
	t, ok := textureIDs[id]
	if !ok {
		return NoTexture, fmt.Errorf("unknown texture %q", id)
	}
	return t, nil
}

func (t Texture) String() string {
	for id, v := range textureIDs {
		if v == t {
			return id
		}
	}
	return fmt.Sprintf("Texture(%d)", int(t))
}

// resolvePalette converts configured identifiers into drawables using conv.
// A missing NULL entry is fatal; unknown identifiers are ignored.
func resolvePalette[T any](renderer string, entries map[string]string, conv func(string) (T, error)) (map[Texture]T, error) {
	if _, ok := entries["NULL"]; !ok {
		return nil, &ConfigError{Renderer: renderer, Key: "NULL"}
	}
	out := make(map[Texture]T, len(entries))
	for id, raw := range entries {
		t, ok := textureIDs[id]
		if !ok {
			continue
		}
		v, err := conv(raw)
		if err != nil {
			return nil, &ConfigError{Renderer: renderer, Key: id, Err: err}
		}
		out[t] = v
	}
	return out, nil
}

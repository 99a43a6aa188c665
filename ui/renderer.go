// Package ui draws the game grid. Scene holds the back-end independent scene
// composition; TextRenderer and GraphicalRenderer supply the drawing.
package ui

import (
	"tilesnake/game/types"
)

// Renderer presents a grid of textured tiles with an optional text overlay
type Renderer interface {
	SetScene(width, height int, field Texture) error
	AddTile(x, y int, t Texture) error
	AddTiles(tiles []types.Point, t Texture) error
	AddText(x, y int, s string) error
	RenderScene() error
	Close() error
}

// Backend is the one capability every renderer must provide
type Backend interface {
	DrawTile(x, y int, t Texture)
}

// Optional hooks a Backend may implement. Scene calls them when present.
type (
	PreSetupHook   interface{ PreSetup() error }
	PostSetupHook  interface{ PostSetup() error }
	PreRenderHook  interface{ PreRender() error }
	PostRenderHook interface{ PostRender() error }
)

// Annotation is a string drawn on top of the tiles starting at a tile
type Annotation struct {
	At   types.Point
	Text string
}

// Scene is the transient per-frame scene shared by all back ends
type Scene struct {
	backend Backend

	width, height int
	field         Texture
	tiles         map[types.Point]Texture
	text          []Annotation
}

// NewScene binds a scene to the back end that draws it
func NewScene(backend Backend) *Scene {
	return &Scene{
		backend: backend,
		tiles:   make(map[types.Point]Texture),
	}
}

// IsValidDistance reports whether n can be a scene dimension
func IsValidDistance(n int) bool {
	return n >= 0
}

func (s *Scene) IsValidX(x int) bool {
	return x >= 0 && x < s.width
}

func (s *Scene) IsValidY(y int) bool {
	return y >= 0 && y < s.height
}

func (s *Scene) Width() int         { return s.width }
func (s *Scene) Height() int        { return s.height }
func (s *Scene) Field() Texture     { return s.field }
func (s *Scene) Text() []Annotation { return s.text }

// SetScene starts a new frame of width x height tiles over field
func (s *Scene) SetScene(width, height int, field Texture) error {
	if !IsValidDistance(width) {
		return &ValidationError{Name: "width", Value: width}
	}
	if !IsValidDistance(height) {
		return &ValidationError{Name: "height", Value: height}
	}
	if h, ok := s.backend.(PreSetupHook); ok {
		if err := h.PreSetup(); err != nil {
			return err
		}
	}
	clear(s.tiles)
	s.text = s.text[:0]
	s.width = width
	s.height = height
	s.field = field
	if h, ok := s.backend.(PostSetupHook); ok {
		return h.PostSetup()
	}
	return nil
}

// AddTile records t at (x, y), replacing any earlier texture there
func (s *Scene) AddTile(x, y int, t Texture) error {
	if err := s.validateTile(x, y); err != nil {
		return err
	}
	s.tiles[types.Point{X: x, Y: y}] = t
	return nil
}

func (s *Scene) AddTiles(tiles []types.Point, t Texture) error {
	for _, p := range tiles {
		if err := s.AddTile(p.X, p.Y, t); err != nil {
			return err
		}
	}
	return nil
}

// AddText queues str to be drawn after the tiles, starting at (x, y)
func (s *Scene) AddText(x, y int, str string) error {
	if err := s.validateTile(x, y); err != nil {
		return err
	}
	s.text = append(s.text, Annotation{At: types.Point{X: x, Y: y}, Text: str})
	return nil
}

// RenderScene draws every cell row by row, then lets the back end finish the frame
func (s *Scene) RenderScene() error {
	if h, ok := s.backend.(PreRenderHook); ok {
		if err := h.PreRender(); err != nil {
			return err
		}
	}
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			t, ok := s.tiles[types.Point{X: x, Y: y}]
			if !ok {
				t = s.field
			}
			s.backend.DrawTile(x, y, t)
		}
	}
	if h, ok := s.backend.(PostRenderHook); ok {
		return h.PostRender()
	}
	return nil
}

func (s *Scene) validateTile(x, y int) error {
	if !s.IsValidX(x) || !s.IsValidY(y) {
		return &BoundsError{X: x, Y: y, Width: s.width, Height: s.height}
	}
	return nil
}

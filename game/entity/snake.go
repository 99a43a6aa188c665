package entity

import (
	"tilesnake/game/types"
)

// Snake is the player body. Body[0] is the head, the last element the tail.
type Snake struct {
	body  []types.Point
	cells map[types.Point]struct{}
}

// NewSnake builds a snake from body, head first
func NewSnake(body []types.Point) *Snake {
	s := &Snake{
		body:  make([]types.Point, 0, len(body)),
		cells: make(map[types.Point]struct{}, len(body)),
	}
	for _, p := range body {
		s.body = append(s.body, p)
		s.cells[p] = struct{}{}
	}
	return s
}

// SpawnSnake lays out a snake of length n on row y, tail at x=1 and head at x=n
func SpawnSnake(n, y int) *Snake {
	body := make([]types.Point, 0, n)
	for x := n; x >= 1; x-- {
		body = append(body, types.Point{X: x, Y: y})
	}
	return NewSnake(body)
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Empty() bool {
	return len(s.body) == 0
}

func (s *Snake) GetHead() types.Point {
	return s.body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.body[len(s.body)-1]
}

// Body returns a copy of the segments, head first
func (s *Snake) Body() []types.Point {
	out := make([]types.Point, len(s.body))
	copy(out, s.body)
	return out
}

func (s *Snake) Contains(p types.Point) bool {
	_, ok := s.cells[p]
	return ok
}

// Move pushes newHead to the front
func (s *Snake) Move(newHead types.Point) {
	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead
	s.cells[newHead] = struct{}{}
}

// RemoveTail drops the last segment
func (s *Snake) RemoveTail() {
	if len(s.body) == 0 {
		return
	}
	tail := s.body[len(s.body)-1]
	s.body = s.body[:len(s.body)-1]
	delete(s.cells, tail)
}

func (s *Snake) Clear() {
	s.body = s.body[:0]
	clear(s.cells)
}

package types

import "testing"

func TestHeadingOpposite(t *testing.T) {
	tests := []struct {
		h    Heading
		want Heading
	}{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
	}

	for _, tt := range tests {
		if got := tt.h.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.h, got, tt.want)
		}
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 3, Height: 2}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{2, 1}, true},
		{Point{3, 1}, false},
		{Point{2, 2}, false},
		{Point{-1, 0}, false},
		{Point{0, -1}, false},
	}

	for _, tt := range tests {
		if got := g.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 1, Y: 1}
	if got := p.Add(Right); got != (Point{X: 2, Y: 1}) {
		t.Errorf("Add(Right) = %v", got)
	}
	if got := p.Add(Up); got != (Point{X: 1, Y: 0}) {
		t.Errorf("Add(Up) = %v", got)
	}
}

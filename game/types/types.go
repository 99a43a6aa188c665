package types

// Point is a tile coordinate on the grid
type Point struct {
	X, Y int
}

// Add returns p moved one step along h
func (p Point) Add(h Heading) Point {
	return Point{X: p.X + h.X, Y: p.Y + h.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Area is the number of tiles on the grid
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Heading is a unit step in one of the four cardinal directions
type Heading struct {
	X, Y int
}

var (
	Up    = Heading{X: 0, Y: -1}
	Down  = Heading{X: 0, Y: 1}
	Left  = Heading{X: -1, Y: 0}
	Right = Heading{X: 1, Y: 0}
)

// Opposite returns the heading pointing the other way
func (h Heading) Opposite() Heading {
	return Heading{X: -h.X, Y: -h.Y}
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// State is the engine lifecycle state
type State int

const (
	NotStarted State = iota
	Running
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	}
	return "none"
}

package core

// Point is an integer grid position
type Point struct {
	X, Y int
}

// Direction is one of the four grid directions
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all directions in neighbour order
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "invalid"
	}
}

// Move returns the adjacent position in direction d
// No wrapping: out-of-bounds results are legal and checked by the caller
func Move(p Point, d Direction) Point {
	switch d {
	case DirLeft:
		return Point{p.X - 1, p.Y}
	case DirRight:
		return Point{p.X + 1, p.Y}
	case DirDown:
		return Point{p.X, p.Y + 1}
	default:
		return Point{p.X, p.Y - 1}
	}
}

// Neighbors returns the four orthogonal neighbours in Directions order
func Neighbors(p Point) [4]Point {
	return [4]Point{
		Move(p, DirUp),
		Move(p, DirDown),
		Move(p, DirLeft),
		Move(p, DirRight),
	}
}

// InBounds reports whether p lies in [0,w)×[0,h)
func (p Point) InBounds(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

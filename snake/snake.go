package snake

import (
	"github.com/lixenwraith/snek/core"
	"github.com/lixenwraith/snek/parameter"
)

// InputKind is the number of buffered directions
type InputKind uint8

const (
	InputNone InputKind = iota
	InputOne
	InputTwo
)

// Input is the pending direction buffer
// InputTwo applies First this tick and keeps Second for the next
type Input struct {
	Kind   InputKind
	First  core.Direction
	Second core.Direction
}

// One buffers a single direction
func One(d core.Direction) Input { return Input{Kind: InputOne, First: d} }

// Two buffers a pair of directions
func Two(a, b core.Direction) Input { return Input{Kind: InputTwo, First: a, Second: b} }

// Snake is the player body with its input buffer and growth counter
type Snake struct {
	body  Body
	input Input
	dir   core.Direction
	food  int
}

// New creates a snake of parameter.SnakeInitialLength segments stacked on start
func New(start core.Point, dir core.Direction) *Snake {
	segments := make([]core.Point, parameter.SnakeInitialLength)
	for i := range segments {
		segments[i] = start
	}
	return &Snake{
		body: NewBody(segments...),
		dir:  dir,
	}
}

// FromBody creates a snake from explicit state, head first
func FromBody(body []core.Point, dir core.Direction, foodBuffer int) *Snake {
	return &Snake{
		body: NewBody(body...),
		dir:  dir,
		food: foodBuffer,
	}
}

// Head returns the first segment; panics on an empty body
// Only the exit walk may observe an empty body, and it uses headSafe
func (s *Snake) Head() core.Point {
	if s.body.Len() < 1 {
		panic("snake: no head")
	}
	return s.body.At(0)
}

// Neck returns the second segment; panics when the body is shorter than two
func (s *Snake) Neck() core.Point {
	if s.body.Len() < 2 {
		panic("snake: no neck")
	}
	return s.body.At(1)
}

func (s *Snake) headSafe() (core.Point, bool) {
	if s.body.Len() < 1 {
		return core.Point{}, false
	}
	return s.body.At(0), true
}

// Len returns the body length
func (s *Snake) Len() int { return s.body.Len() }

// At returns segment i, 0 being the head
func (s *Snake) At(i int) core.Point { return s.body.At(i) }

// Contains reports whether any segment occupies p
func (s *Snake) Contains(p core.Point) bool { return s.body.Contains(p) }

// Points returns a head-first copy of the body
func (s *Snake) Points() []core.Point { return s.body.Points() }

// Dir returns the committed direction of the last move
func (s *Snake) Dir() core.Direction { return s.dir }

// Input returns the pending direction buffer
func (s *Snake) Input() Input { return s.input }

// SetInput replaces the pending direction buffer
func (s *Snake) SetInput(in Input) { s.input = in }

// FoodBuffer returns the remaining growth ticks
func (s *Snake) FoodBuffer() int { return s.food }

// Empty reports whether the body has fully left through the exit
func (s *Snake) Empty() bool { return s.body.Len() == 0 }

// Clone returns an independent copy for look-ahead simulation
func (s *Snake) Clone() *Snake {
	return &Snake{
		body:  s.body.Clone(),
		input: s.input,
		dir:   s.dir,
		food:  s.food,
	}
}

// Occupancy marks body cells in a w×h row-major grid; out-of-bounds segments are skipped
func (s *Snake) Occupancy(w, h int) []bool {
	occ := make([]bool, w*h)
	for i := 0; i < s.body.Len(); i++ {
		p := s.body.At(i)
		if p.InBounds(w, h) {
			occ[p.Y*w+p.X] = true
		}
	}
	return occ
}

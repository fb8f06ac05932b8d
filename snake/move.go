package snake

import (
	"github.com/lixenwraith/snek/core"
	"github.com/lixenwraith/snek/parameter"
)

// Terrain is the read-only board view a move is resolved against
type Terrain interface {
	Size() (w, h int)
	FoodAt(p core.Point) bool
	WallAt(p core.Point) bool
}

// MoveArgs bundles the board state needed to resolve one step
type MoveArgs struct {
	Terrain Terrain
	// Exit is meaningful only when ExitOpen is set
	Exit     core.Point
	ExitOpen bool
}

// Result reports the outcome of one Advance
type Result struct {
	Died   bool
	Exited bool
	Ate    bool
}

// nextDirection pops the direction to apply this tick from the input buffer
func (s *Snake) nextDirection() (core.Direction, Input) {
	switch s.input.Kind {
	case InputOne:
		return s.input.First, Input{}
	case InputTwo:
		return s.input.First, One(s.input.Second)
	default:
		return s.dir, Input{}
	}
}

// Advance moves the snake one step and resolves collisions
// The snake is updated even on death so the fatal position can be drawn
func (s *Snake) Advance(args MoveArgs) Result {
	dir, rest := s.nextDirection()
	head := core.Move(s.Head(), dir)
	w, h := args.Terrain.Size()

	ate := args.Terrain.FoodAt(head)

	died := !head.InBounds(w, h) ||
		args.Terrain.WallAt(head) ||
		s.collidesSelf(head)

	exited := args.ExitOpen && head == args.Exit

	growing := s.food > 0
	s.food = max(0, s.food-1)
	if ate {
		s.food += parameter.FoodGrowth
	}
	if !growing {
		s.body.PopBack()
	}
	s.body.PushFront(head)
	s.dir = dir
	s.input = rest

	return Result{Died: died, Exited: exited, Ate: ate}
}

// collidesSelf checks head against the body before it moves
// The tail vacates its cell this tick unless the snake is growing
func (s *Snake) collidesSelf(head core.Point) bool {
	if s.food > 0 {
		return s.body.Contains(head)
	}
	return s.body.ContainsExcludingTail(head)
}

// ExitStep advances the exit walk by one tick and reports when the body is gone
// The tail always shrinks; the head steps into exitWall when adjacent and stays once inside
func (s *Snake) ExitStep(exitWall core.Point) bool {
	head, ok := s.headSafe()

	if s.body.Len() <= 1 {
		s.body = NewBody()
	} else {
		s.body.PopBack()
	}

	if ok && head != exitWall {
		for _, n := range core.Neighbors(head) {
			if n == exitWall {
				s.body.PushFront(n)
				break
			}
		}
	}

	return s.body.Len() == 0
}

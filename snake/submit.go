package snake

import "github.com/lixenwraith/snek/core"

// LateChoice names the candidate picked for a late input
type LateChoice uint8

const (
	// ChooseSingle buffers only the new direction
	ChooseSingle LateChoice = iota
	// ChoosePair buffers the already buffered direction followed by the new one
	ChoosePair
	// ChooseStay keeps the committed direction
	ChooseStay
)

func (c LateChoice) String() string {
	switch c {
	case ChoosePair:
		return "pair"
	case ChooseStay:
		return "stay"
	default:
		return "single"
	}
}

// ChooseLate ranks the three candidate futures of a late input
// Priority favours the newest input and only falls back to staying on course
// when every input-honouring future dies
func ChooseLate(singleDies, pairDies, stayDies bool) (LateChoice, bool) {
	switch {
	case !pairDies:
		return ChoosePair, true
	case !singleDies:
		return ChooseSingle, true
	case !stayDies:
		return ChooseStay, false
	default:
		return ChooseSingle, false
	}
}

// Submit applies a direction key and reports whether the next scheduled tick should fire now
//
// On time, the input is buffered unless it would turn the head onto the neck.
// Late (close to or past the tick boundary), three futures are simulated against
// args without touching the snake, and ChooseLate picks the buffer to keep.
func (s *Snake) Submit(dir core.Direction, late bool, args MoveArgs) bool {
	if !late {
		if core.Move(s.Head(), dir) != s.Neck() {
			s.input = One(dir)
		}
		return false
	}

	pair := []core.Direction{dir}
	if s.input.Kind != InputNone {
		pair = []core.Direction{s.input.First, dir}
	}

	singleDies := s.simulate(args, dir)
	pairDies := s.simulate(args, pair...)
	stayDies := s.simulate(args, s.dir)

	choice, skip := ChooseLate(singleDies, pairDies, stayDies)
	switch choice {
	case ChoosePair:
		if len(pair) == 2 {
			s.input = Two(pair[0], pair[1])
		} else {
			s.input = One(pair[0])
		}
	case ChooseStay:
		s.input = One(s.dir)
	default:
		s.input = One(dir)
	}
	return skip
}

// simulate runs moves on a clone and reports death
// Reaching the open exit ends the run as a survival
func (s *Snake) simulate(args MoveArgs, moves ...core.Direction) bool {
	sim := s.Clone()
	for _, mv := range moves {
		sim.input = One(mv)
		r := sim.Advance(args)
		if r.Died {
			return true
		}
		if r.Exited {
			return false
		}
	}
	return false
}

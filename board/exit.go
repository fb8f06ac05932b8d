package board

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/snek/core"
	"github.com/lixenwraith/snek/event"
	"github.com/lixenwraith/snek/parameter"
)

// ErrInvalidExit is returned for an exit position that is not on the grid border
var ErrInvalidExit = errors.New("exit not on border")

// ExitPhase distinguishes a locked door from a running countdown
type ExitPhase uint8

const (
	// ExitLocked counts food still needed to open the door
	ExitLocked ExitPhase = iota
	// ExitCountdown counts ticks until the door closes; may go negative
	ExitCountdown
)

func (p ExitPhase) String() string {
	if p == ExitCountdown {
		return "countdown"
	}
	return "locked"
}

// ExitState is the level exit and its unlock/closing counter
type ExitState struct {
	Pos       core.Point
	Phase     ExitPhase
	Remaining int
}

// NewExit returns a locked exit requiring parameter.ExitUnlockFood food
func NewExit(pos core.Point) ExitState {
	return ExitState{Pos: pos, Phase: ExitLocked, Remaining: parameter.ExitUnlockFood}
}

// Update advances the exit by one tick
// Locked counts down only on scoring and converts once to Countdown(levelHeight);
// Countdown decrements every tick and never converts back
func (e ExitState) Update(levelHeight int, scored bool, sink event.Sink) ExitState {
	switch e.Phase {
	case ExitLocked:
		if !scored {
			return e
		}
		e.Remaining--
		if e.Remaining <= 0 {
			e.Phase = ExitCountdown
			e.Remaining = levelHeight
			sink.Emit(event.CueDoorOpen)
		}
	case ExitCountdown:
		e.Remaining--
	}
	return e
}

// Open reports whether the head may leave through the exit
// A countdown that ran out still counts as open
func (e ExitState) Open() bool {
	return e.Phase == ExitCountdown
}

// Closing reports whether the countdown is below window
func (e ExitState) Closing(window int) bool {
	return e.Phase == ExitCountdown && e.Remaining < window
}

// Closed reports whether the countdown has run out
func (e ExitState) Closed() bool {
	return e.Phase == ExitCountdown && e.Remaining <= 0
}

// ExitWall returns the out-of-grid cell behind a border exit
// The exit walk steps the head into this cell
func ExitWall(pos core.Point, w, h int) (core.Point, error) {
	switch {
	case !pos.InBounds(w, h):
		return core.Point{}, fmt.Errorf("%w: %v outside %dx%d", ErrInvalidExit, pos, w, h)
	case pos.X == 0:
		return core.Move(pos, core.DirLeft), nil
	case pos.X == w-1:
		return core.Move(pos, core.DirRight), nil
	case pos.Y == 0:
		return core.Move(pos, core.DirUp), nil
	case pos.Y == h-1:
		return core.Move(pos, core.DirDown), nil
	default:
		return core.Point{}, fmt.Errorf("%w: %v", ErrInvalidExit, pos)
	}
}

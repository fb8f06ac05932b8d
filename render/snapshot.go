package render

import (
	"github.com/lixenwraith/snek/board"
	"github.com/lixenwraith/snek/engine/fsm"
	"github.com/lixenwraith/snek/game"
	"github.com/lixenwraith/snek/input"
)

// Snapshot is a read-only view of one frame
// Board is shared with the game; Draw must not mutate it
type Snapshot struct {
	Board     *board.Board
	Run       game.Run
	State     fsm.StateID
	StateName string
	LastKey   input.Key
}

// Capture builds the snapshot of g's current frame
func Capture(g *game.Game) Snapshot {
	return Snapshot{
		Board:     g.Board,
		Run:       g.Run,
		State:     g.State(),
		StateName: g.StateName(),
		LastKey:   g.LastKey,
	}
}

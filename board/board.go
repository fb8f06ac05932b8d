package board

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snek/core"
	"github.com/lixenwraith/snek/event"
	"github.com/lixenwraith/snek/level"
	"github.com/lixenwraith/snek/parameter"
	"github.com/lixenwraith/snek/snake"
)

// Level is the metadata of the level a board was built from
type Level struct {
	Number int
	Width  int
	Height int
}

// Options carries the collaborators a board needs
type Options struct {
	Hazards HazardConfig
	// Sink receives cues; nil discards
	Sink event.Sink
	// Rand drives food and hazard placement; nil seeds from 1
	Rand *rand.Rand
}

// Board is the per-level mutable aggregate: grid, snake, exit and hazards
// Recreated wholesale on level start or restart
type Board struct {
	Level    Level
	Grid     *Grid
	Snake    *snake.Snake
	Exit     ExitState
	TileSize int

	exitWall core.Point
	hazards  *HazardScheduler
	rng      *rand.Rand
	sink     event.Sink
}

// New builds the board for a parsed level
func New(p level.Parsed, opts Options) (*Board, error) {
	w, h := parameter.LevelWidth, parameter.LevelHeight

	exitWall, err := ExitWall(p.Exit, w, h)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", p.Number, err)
	}

	if opts.Sink == nil {
		opts.Sink = event.Discard
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}

	g := NewGrid(w, h)
	for _, wall := range p.Walls {
		g.Set(wall, Square{Fg: FgWall})
	}
	if sq := g.Ptr(p.Exit); sq != nil {
		sq.Bg = BgExit
	}

	b := &Board{
		Level:    Level{Number: p.Number, Width: w, Height: h},
		Grid:     g,
		Snake:    snake.New(p.SnakeInit, p.SnakeDir),
		Exit:     NewExit(p.Exit),
		TileSize: parameter.TileSize,
		exitWall: exitWall,
		hazards:  NewHazardScheduler(opts.Hazards, opts.Rand),
		rng:      opts.Rand,
		sink:     opts.Sink,
	}
	b.hazards.Seed(g, p.Spawns)
	initFood(g, b.Snake.Occupancy(w, h), b.rng)

	return b, nil
}

// MoveArgs exposes the board to the snake simulator
func (b *Board) MoveArgs() snake.MoveArgs {
	return snake.MoveArgs{
		Terrain:  b.Grid,
		Exit:     b.Exit.Pos,
		ExitOpen: b.Exit.Open(),
	}
}

// ExitWallCell returns the out-of-grid cell the exit walk leads into
func (b *Board) ExitWallCell() core.Point { return b.exitWall }

// Submit forwards a direction key to the snake; reports whether the tick should fire now
func (b *Board) Submit(dir core.Direction, late bool) bool {
	return b.Snake.Submit(dir, late, b.MoveArgs())
}

// Tick runs one play step: move, food, exit, hazards
// Food eaten on a fatal step does not score
func (b *Board) Tick() snake.Result {
	r := b.Snake.Advance(b.MoveArgs())

	scored := !r.Died && r.Ate
	if scored {
		b.sink.Emit(event.CueEat)
	}

	occupied := b.Snake.Occupancy(b.Level.Width, b.Level.Height)
	b.updateFood(occupied, r.Ate)
	b.Exit = b.Exit.Update(b.Level.Height, scored, b.sink)
	b.hazards.Tick(b.Grid, occupied, b.Exit, false, b.sink)

	return r
}

// TickExiting runs one exit-walk step and reports when the snake has fully left
// The exit counter is frozen during the walk
func (b *Board) TickExiting() bool {
	done := b.Snake.ExitStep(b.exitWall)

	occupied := b.Snake.Occupancy(b.Level.Width, b.Level.Height)
	b.updateFood(occupied, false)
	b.hazards.Tick(b.Grid, occupied, b.Exit, true, b.sink)

	return done
}

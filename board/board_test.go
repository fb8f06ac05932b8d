package board

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snek/core"
	"github.com/lixenwraith/snek/event"
	"github.com/lixenwraith/snek/level"
)

func testLevel() level.Parsed {
	return level.Parsed{
		Number:    1,
		SnakeInit: core.Point{X: 5, Y: 7},
		SnakeDir:  core.DirRight,
		Exit:      core.Point{X: 9, Y: 0},
	}
}

func newTestBoard(t *testing.T, p level.Parsed, rec *event.Recorder) *Board {
	t.Helper()
	b, err := New(p, Options{
		Hazards: DefaultHazardConfig(),
		Sink:    rec,
		Rand:    rand.New(rand.NewSource(42)),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := range b.Grid.Cells {
		if b.Grid.Cells[i].Fg == FgFood {
			b.Grid.Cells[i].Fg = FgEmpty
		}
	}
	return b
}

func TestNewBoardFromBuiltinLevel(t *testing.T) {
	p := level.MustLoad(level.Builtin{}, 1)
	b, err := New(p, Options{Rand: rand.New(rand.NewSource(9))})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if b.Level.Width != 20 || b.Level.Height != 15 || b.TileSize != 40 {
		t.Errorf("Unexpected level metadata %+v tile %d", b.Level, b.TileSize)
	}
	if b.Grid.Count(FgWall) != len(p.Walls) {
		t.Errorf("Expected %d walls, got %d", len(p.Walls), b.Grid.Count(FgWall))
	}
	if b.Grid.At(p.Exit).Bg != BgExit {
		t.Error("Expected exit background")
	}
	if b.Exit.Phase != ExitLocked || b.Exit.Remaining != 10 {
		t.Errorf("Expected locked(10), got %s(%d)", b.Exit.Phase, b.Exit.Remaining)
	}
	if n := b.Grid.Count(FgFood); n != 1 {
		t.Errorf("Expected one initial food, got %d", n)
	}
	for i, sq := range b.Grid.Cells {
		if sq.Fg == FgFood && b.Snake.Contains(b.Grid.Point(i)) {
			t.Error("Initial food placed under the snake")
		}
	}
	for i, s := range p.Spawns {
		if sq := b.Grid.At(s); sq.Bg != BgWallSpawn || sq.Delay != 10+10*i {
			t.Errorf("Seed %d: unexpected square %+v", i, sq)
		}
	}
	if b.ExitWallCell() != (core.Point{X: p.Exit.X, Y: -1}) {
		t.Errorf("Unexpected exit wall cell %v", b.ExitWallCell())
	}
}

func TestNewBoardRejectsInteriorExit(t *testing.T) {
	p := testLevel()
	p.Exit = core.Point{X: 5, Y: 5}
	if _, err := New(p, Options{}); !errors.Is(err, ErrInvalidExit) {
		t.Errorf("Expected ErrInvalidExit, got %v", err)
	}
}

func TestBoardTickEats(t *testing.T) {
	rec := &event.Recorder{}
	b := newTestBoard(t, testLevel(), rec)
	b.Grid.Set(core.Point{X: 6, Y: 7}, Square{Fg: FgFood})

	r := b.Tick()
	if !r.Ate || r.Died {
		t.Fatalf("Expected to eat, got %+v", r)
	}
	if rec.Count(event.CueEat) != 1 {
		t.Errorf("Expected one eat cue, got %v", rec.Cues)
	}
	if b.Grid.At(core.Point{X: 6, Y: 7}).Fg != FgEmpty {
		t.Error("Expected eaten food cleared")
	}
	if b.Exit.Remaining != 9 {
		t.Errorf("Expected unlock count 9, got %d", b.Exit.Remaining)
	}
}

func TestBoardTickDeathDoesNotScore(t *testing.T) {
	rec := &event.Recorder{}
	b := newTestBoard(t, testLevel(), rec)
	b.Grid.Set(core.Point{X: 6, Y: 7}, Square{Fg: FgWall})

	r := b.Tick()
	if !r.Died {
		t.Fatal("Expected death")
	}
	if rec.Count(event.CueEat) != 0 || b.Exit.Remaining != 10 {
		t.Error("Death must not score")
	}
}

func TestBoardUnlockAndLeave(t *testing.T) {
	rec := &event.Recorder{}
	p := testLevel()
	p.SnakeInit = core.Point{X: 9, Y: 4}
	p.SnakeDir = core.DirUp
	b := newTestBoard(t, p, rec)
	b.Exit.Remaining = 1

	b.Grid.Set(core.Point{X: 9, Y: 3}, Square{Fg: FgFood})
	if r := b.Tick(); !r.Ate {
		t.Fatal("Expected to eat")
	}
	if !b.Exit.Open() || b.Exit.Remaining != 15 {
		t.Fatalf("Expected countdown(15), got %s(%d)", b.Exit.Phase, b.Exit.Remaining)
	}
	if rec.Count(event.CueDoorOpen) != 1 {
		t.Error("Expected door-open cue")
	}

	exited := false
	for i := 0; i < 3 && !exited; i++ {
		r := b.Tick()
		if r.Died {
			t.Fatalf("Unexpected death at %v", b.Snake.Head())
		}
		exited = r.Exited
	}
	if !exited {
		t.Fatalf("Expected to reach exit, head at %v", b.Snake.Head())
	}

	frozen := b.Exit
	length := b.Snake.Len()
	steps := 0
	for done := false; !done; steps++ {
		if steps > 20 {
			t.Fatal("Exit walk did not finish")
		}
		done = b.TickExiting()
	}
	if b.Exit != frozen {
		t.Error("Exit state must not change during the exit walk")
	}
	if !b.Snake.Empty() {
		t.Error("Expected empty snake after exit walk")
	}
	// One step into the wall cell, then one per segment
	if steps != length+1 {
		t.Errorf("Expected %d exit-walk steps, got %d", length+1, steps)
	}
}

func TestBoardSubmitUsesBoardState(t *testing.T) {
	b := newTestBoard(t, testLevel(), &event.Recorder{})
	b.Grid.Set(core.Point{X: 5, Y: 6}, Square{Fg: FgWall})

	if skip := b.Submit(core.DirUp, true); skip {
		t.Error("Expected no skip when turning into a wall")
	}
	if in := b.Snake.Input(); in.First != core.DirRight {
		t.Errorf("Expected to stay on course, got %+v", in)
	}
}

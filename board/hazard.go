package board

import (
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snek/core"
	"github.com/lixenwraith/snek/event"
	"github.com/lixenwraith/snek/parameter"
)

// HazardConfig tunes the wall-spawn scheduler
type HazardConfig struct {
	// Spread delays are drawn from [SpreadMin+1, SpreadMax+1)
	SpreadMin int
	SpreadMax int
	// Early arms materialisation and countdown from the first tick of a level
	// instead of waiting for the closing window
	Early bool
}

// DefaultHazardConfig returns the stock delay range with late arming
func DefaultHazardConfig() HazardConfig {
	return HazardConfig{
		SpreadMin: parameter.WallSpawnMin,
		SpreadMax: parameter.WallSpawnMax,
	}
}

// HazardScheduler owns the timed wall-spawn tiles layered on the grid
type HazardScheduler struct {
	cfg HazardConfig
	rng *rand.Rand

	// scratch reused across ticks
	sources []int
}

// NewHazardScheduler creates a scheduler drawing spread delays from rng
func NewHazardScheduler(cfg HazardConfig, rng *rand.Rand) *HazardScheduler {
	if cfg.SpreadMax <= cfg.SpreadMin {
		cfg.SpreadMax = cfg.SpreadMin + 1
	}
	return &HazardScheduler{cfg: cfg, rng: rng}
}

// Seed places the authored hazard seeds; the i-th seed waits WallSpawnMin + i*WallSpawnSeedStep ticks
func (h *HazardScheduler) Seed(g *Grid, spawns []core.Point) {
	for i, p := range spawns {
		sq := g.Ptr(p)
		if sq == nil {
			continue
		}
		sq.Bg = BgWallSpawn
		sq.Delay = parameter.WallSpawnMin + i*parameter.WallSpawnSeedStep
		sq.Seed = true
	}
}

// Armed reports whether the scheduler runs this tick
func (h *HazardScheduler) Armed(exit ExitState) bool {
	return h.cfg.Early || exit.Closing(parameter.ClosingWindow)
}

// Tick runs one scheduler step: spread, materialise, count down
// occupied marks snake cells (row-major); exiting selects the exit-walk cue variants
func (h *HazardScheduler) Tick(g *Grid, occupied []bool, exit ExitState, exiting bool, sink event.Sink) {
	if !h.Armed(exit) {
		return
	}

	if exit.Closing(parameter.ClosingWindow) {
		h.spread(g, occupied)
	}

	spawnCue := event.CueWallSpawn
	if exiting {
		spawnCue = event.CueWallSpawnExiting
	}

	// Materialise
	for i := range g.Cells {
		sq := &g.Cells[i]
		if sq.ripe() && !occupied[i] {
			sq.Fg = FgWall
			sq.Delay = 0
			sink.Emit(spawnCue)
		}
	}

	// Count down
	for i := range g.Cells {
		sq := &g.Cells[i]
		if sq.Bg != BgWallSpawn || occupied[i] {
			continue
		}
		sq.Delay = max(0, sq.Delay-1)
		if sq.Delay == parameter.WallSpawnVisibleDelay && sq.Seed && !exiting {
			sink.Emit(event.CueHeartbeat)
		}
	}
}

// spread seeds fresh hazards around every ripe tile not under the snake
// Only squares with an empty background and no wall take the new hazard; food stays on top
func (h *HazardScheduler) spread(g *Grid, occupied []bool) {
	h.sources = h.sources[:0]
	for i := range g.Cells {
		if g.Cells[i].ripe() && !occupied[i] {
			h.sources = append(h.sources, i)
		}
	}

	for _, idx := range h.sources {
		for _, n := range core.Neighbors(g.Point(idx)) {
			sq := g.Ptr(n)
			if sq == nil || occupied[n.Y*g.Width+n.X] {
				continue
			}
			if sq.Bg != BgEmpty || sq.Fg == FgWall {
				continue
			}
			sq.Bg = BgWallSpawn
			sq.Delay = h.spreadDelay()
			sq.Seed = false
		}
	}
}

func (h *HazardScheduler) spreadDelay() int {
	return h.rng.Intn(h.cfg.SpreadMax-h.cfg.SpreadMin) + h.cfg.SpreadMin + 1
}

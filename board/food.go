package board

import (
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snek/event"
	"github.com/lixenwraith/snek/parameter"
)

// FoodInfo is the census feeding the spawn decision
type FoodInfo struct {
	Count int
	Goal  int
	Free  int
}

// foodGoal is the target food count for the exit phase
func foodGoal(exit ExitState) int {
	if exit.Open() {
		return parameter.FoodGoalOpen
	}
	return parameter.FoodGoalLocked
}

// ShouldSpawnFood decides whether this tick attempts a spawn
// The deficit is capped at FoodSpawnScale; a full deficit always spawns,
// a partial one spawns with probability 1/(FoodSpawnScale-deficit)
func ShouldSpawnFood(info FoodInfo, rng *rand.Rand) bool {
	diff := min(info.Free, info.Goal-info.Count)
	diff = max(0, min(diff, parameter.FoodSpawnScale))
	switch {
	case diff == 0:
		return false
	case diff < parameter.FoodSpawnScale:
		return rng.Intn(parameter.FoodSpawnScale-diff) == 0
	default:
		return true
	}
}

// foodEligible reports whether food may be placed on sq
func foodEligible(sq Square) bool {
	return sq.Fg == FgEmpty && (sq.Bg == BgEmpty || sq.Bg == BgWallSpawn)
}

// placeFood probes up to tries random squares and drops food on the first eligible one
func placeFood(g *Grid, occupied []bool, tries int, rng *rand.Rand) bool {
	for ; tries > 0; tries-- {
		idx := rng.Intn(len(g.Cells))
		if occupied[idx] || !foodEligible(g.Cells[idx]) {
			continue
		}
		g.Cells[idx].Fg = FgFood
		return true
	}
	return false
}

// initFood places the first food of a level on a random eligible square
// Falls back to a scan when probing keeps missing
func initFood(g *Grid, occupied []bool, rng *rand.Rand) {
	if placeFood(g, occupied, len(g.Cells), rng) {
		return
	}
	for i := range g.Cells {
		if !occupied[i] && foodEligible(g.Cells[i]) {
			g.Cells[i].Fg = FgFood
			return
		}
	}
}

// updateFood runs the per-tick spawner and clears food eaten at the head
func (b *Board) updateFood(occupied []bool, ate bool) {
	info := b.FoodInfo()
	if ShouldSpawnFood(info, b.rng) {
		if placeFood(b.Grid, occupied, parameter.FoodSpawnTries, b.rng) {
			b.sink.Emit(event.CueFoodSpawn)
		}
	}
	if ate {
		if sq := b.Grid.Ptr(b.Snake.Head()); sq != nil && sq.Fg == FgFood {
			sq.Fg = FgEmpty
		}
	}
}

// FoodInfo counts food, goal and free squares for the spawner
func (b *Board) FoodInfo() FoodInfo {
	count := b.Grid.Count(FgFood)
	w, h := b.Grid.Size()
	return FoodInfo{
		Count: count,
		Goal:  foodGoal(b.Exit),
		Free:  w*h - b.Snake.Len() - b.Grid.Count(FgWall) - count - 1,
	}
}

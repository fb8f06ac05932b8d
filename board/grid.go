package board

import (
	"github.com/lixenwraith/snek/core"
	"github.com/lixenwraith/snek/parameter"
)

// Background is the lower layer of a square
type Background uint8

const (
	BgEmpty Background = iota
	BgExit
	// BgWallSpawn carries Square.Delay and Square.Seed
	BgWallSpawn
)

// Foreground is the upper layer of a square, independent of the background
type Foreground uint8

const (
	FgEmpty Foreground = iota
	FgFood
	FgWall
)

// Square is one grid cell
// Delay and Seed are meaningful only when Bg is BgWallSpawn
type Square struct {
	Bg    Background
	Fg    Foreground
	Delay int
	Seed  bool
}

// WallSpawn returns a hazard background with the given delay
func WallSpawn(delay int, seed bool) Square {
	return Square{Bg: BgWallSpawn, Delay: delay, Seed: seed}
}

// SpawnVisible reports whether a pending hazard is close enough to be shown
func (s Square) SpawnVisible() bool {
	return s.Bg == BgWallSpawn && s.Delay <= parameter.WallSpawnVisibleDelay
}

// ripe reports a hazard whose countdown ran out and has not turned into a wall yet
func (s Square) ripe() bool {
	return s.Bg == BgWallSpawn && s.Delay <= 0 && s.Fg != FgWall
}

// Grid is a dense 2D board with one Square per in-bounds position
type Grid struct {
	Width  int
	Height int
	Cells  []Square // 1D array: index = y*Width + x
}

// NewGrid creates an empty grid of the given dimensions
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]Square, width*height),
	}
}

// Size returns the grid dimensions
func (g *Grid) Size() (int, int) { return g.Width, g.Height }

// At returns the square at p, zero Square when out of bounds
func (g *Grid) At(p core.Point) Square {
	if !p.InBounds(g.Width, g.Height) {
		return Square{}
	}
	return g.Cells[p.Y*g.Width+p.X]
}

// Set replaces the square at p; out of bounds is a no-op
func (g *Grid) Set(p core.Point, s Square) {
	if !p.InBounds(g.Width, g.Height) {
		return
	}
	g.Cells[p.Y*g.Width+p.X] = s
}

// Ptr returns a pointer into the grid for in-place updates, nil when out of bounds
func (g *Grid) Ptr(p core.Point) *Square {
	if !p.InBounds(g.Width, g.Height) {
		return nil
	}
	return &g.Cells[p.Y*g.Width+p.X]
}

// FoodAt reports whether p holds food
func (g *Grid) FoodAt(p core.Point) bool {
	return g.At(p).Fg == FgFood
}

// WallAt reports whether p holds a wall
func (g *Grid) WallAt(p core.Point) bool {
	return g.At(p).Fg == FgWall
}

// Count returns the number of squares with the given foreground
func (g *Grid) Count(fg Foreground) int {
	n := 0
	for i := range g.Cells {
		if g.Cells[i].Fg == fg {
			n++
		}
	}
	return n
}

// Point converts a cell index back to a position
func (g *Grid) Point(idx int) core.Point {
	return core.Point{X: idx % g.Width, Y: idx / g.Width}
}

// Clone returns an independent copy
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height, Cells: make([]Square, len(g.Cells))}
	copy(c.Cells, g.Cells)
	return c
}

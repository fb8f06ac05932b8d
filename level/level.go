package level

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lixenwraith/snek/core"
	"github.com/lixenwraith/snek/parameter"
)

// ErrBadLevel reports level text missing a required item
var ErrBadLevel = errors.New("bad level data")

// Parsed is the structured descriptor of one level
type Parsed struct {
	Number    int
	Walls     []core.Point
	SnakeInit core.Point
	SnakeDir  core.Direction
	Exit      core.Point
	// Spawns are hazard seed positions ordered by marker (1..4)
	Spawns []core.Point
}

// Loader supplies parsed levels by number
type Loader interface {
	Load(n int) (Parsed, error)
}

// Symbol table
const (
	SymWall      = 'W'
	SymSnake     = 'S'
	SymExit      = 'E'
	SymExitAlt   = 'e'
	SymUp        = '^'
	SymRight     = '>'
	SymLeft      = '<'
	SymDown      = 'v'
	SymDownAlt   = 'V'
	SymSeedFirst = '1'
	SymSeedLast  = '4'
)

type seed struct {
	pos   core.Point
	order int
}

// Parse reads a level grid of parameter.LevelWidth × parameter.LevelHeight
// Blank lines are skipped; characters past the grid are ignored
func Parse(n int, text string) (Parsed, error) {
	p := Parsed{Number: n}

	var (
		haveSnake, haveDir, haveExit bool
		seeds                        []seed
	)

	y := 0
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		if y >= parameter.LevelHeight {
			break
		}
		for x, ch := range []rune(line) {
			if x >= parameter.LevelWidth {
				break
			}
			pos := core.Point{X: x, Y: y}
			switch ch {
			case SymWall:
				p.Walls = append(p.Walls, pos)
			case SymSnake:
				p.SnakeInit = pos
				haveSnake = true
			case SymUp:
				p.SnakeDir, haveDir = core.DirUp, true
			case SymRight:
				p.SnakeDir, haveDir = core.DirRight, true
			case SymLeft:
				p.SnakeDir, haveDir = core.DirLeft, true
			case SymDown, SymDownAlt:
				p.SnakeDir, haveDir = core.DirDown, true
			case SymExit, SymExitAlt:
				p.Exit = pos
				haveExit = true
			default:
				if ch >= SymSeedFirst && ch <= SymSeedLast {
					seeds = append(seeds, seed{pos: pos, order: int(ch - SymSeedFirst)})
				}
			}
		}
		y++
	}

	switch {
	case !haveSnake:
		return Parsed{}, fmt.Errorf("level %d: no snake start: %w", n, ErrBadLevel)
	case !haveDir:
		return Parsed{}, fmt.Errorf("level %d: no snake direction: %w", n, ErrBadLevel)
	case !haveExit:
		return Parsed{}, fmt.Errorf("level %d: no exit: %w", n, ErrBadLevel)
	}

	if !onBorder(p.Exit) {
		return Parsed{}, fmt.Errorf("level %d: exit %v not on border: %w", n, p.Exit, ErrBadLevel)
	}

	sort.SliceStable(seeds, func(i, j int) bool { return seeds[i].order < seeds[j].order })
	p.Spawns = make([]core.Point, len(seeds))
	for i, s := range seeds {
		p.Spawns[i] = s.pos
	}

	return p, nil
}

func onBorder(p core.Point) bool {
	return p.X == 0 || p.X == parameter.LevelWidth-1 || p.Y == 0 || p.Y == parameter.LevelHeight-1
}

// MustLoad loads level n and panics on bad content
// Bad built-in level text is a content bug, not a runtime condition
func MustLoad(l Loader, n int) Parsed {
	p, err := l.Load(n)
	if err != nil {
		panic(fmt.Sprintf("level: %v", err))
	}
	return p
}

// Clamp bounds a level number to the built-in range
func Clamp(n int) int {
	if n < 1 {
		return 1
	}
	if n > parameter.LevelCount {
		return parameter.LevelCount
	}
	return n
}

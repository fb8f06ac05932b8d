package level

import (
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/snek/core"
)

func TestBuiltinLevelsParse(t *testing.T) {
	var b Builtin
	for n := 1; n <= 5; n++ {
		p, err := b.Load(n)
		if err != nil {
			t.Fatalf("Level %d failed to parse: %v", n, err)
		}
		if p.Number != n {
			t.Errorf("Level %d: expected number %d, got %d", n, n, p.Number)
		}
		if len(p.Spawns) != 4 {
			t.Errorf("Level %d: expected 4 hazard seeds, got %d", n, len(p.Spawns))
		}
	}
}

func TestLevelOneDescriptor(t *testing.T) {
	p, err := Builtin{}.Load(1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if p.SnakeInit != (core.Point{X: 5, Y: 7}) {
		t.Errorf("Expected snake start (5,7), got %v", p.SnakeInit)
	}
	if p.SnakeDir != core.DirRight {
		t.Errorf("Expected direction right, got %s", p.SnakeDir)
	}
	if p.Exit != (core.Point{X: 9, Y: 0}) {
		t.Errorf("Expected exit (9,0), got %v", p.Exit)
	}
	if len(p.Walls) != 0 {
		t.Errorf("Expected no walls, got %d", len(p.Walls))
	}

	// Seeds ordered by marker, not by reading order
	want := []core.Point{{X: 17, Y: 14}, {X: 0, Y: 11}, {X: 9, Y: 14}, {X: 19, Y: 6}}
	for i, w := range want {
		if p.Spawns[i] != w {
			t.Errorf("Seed %d: expected %v, got %v", i+1, w, p.Spawns[i])
		}
	}
}

func TestLevelTwoWalls(t *testing.T) {
	p, err := Builtin{}.Load(2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(p.Walls) != 14 {
		t.Errorf("Expected 14 walls, got %d", len(p.Walls))
	}
	for _, w := range p.Walls {
		if w.Y != 7 {
			t.Errorf("Expected all walls on row 7, got %v", w)
		}
	}
}

func TestLoadWrapsOutOfRange(t *testing.T) {
	for _, n := range []int{0, 6, -3, 100} {
		p, err := Builtin{}.Load(n)
		if err != nil {
			t.Fatalf("Load(%d) failed: %v", n, err)
		}
		if p.Number != 1 {
			t.Errorf("Load(%d): expected wrap to level 1, got %d", n, p.Number)
		}
	}
}

func TestParseMissingItems(t *testing.T) {
	row := strings.Repeat(".", 20)
	tests := []struct {
		name string
		text string
	}{
		{"no snake", ".........E" + strings.Repeat(".", 10) + "\n>" + row[1:]},
		{"no direction", ".........E" + strings.Repeat(".", 10) + "\nS" + row[1:]},
		{"no exit", row + "\nS>" + row[2:]},
		{"exit inside", row + "\nS>...E" + row[6:]},
	}

	for _, tt := range tests {
		_, err := Parse(9, tt.text)
		if !errors.Is(err, ErrBadLevel) {
			t.Errorf("%s: expected ErrBadLevel, got %v", tt.name, err)
		}
	}
}

func TestMustLoadPanicsOnBadContent(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for bad level")
		}
	}()
	MustLoad(badLoader{}, 1)
}

type badLoader struct{}

func (badLoader) Load(n int) (Parsed, error) {
	return Parse(n, "....")
}

func TestClamp(t *testing.T) {
	cases := map[int]int{-1: 1, 0: 1, 1: 1, 3: 3, 5: 5, 6: 5}
	for in, want := range cases {
		if got := Clamp(in); got != want {
			t.Errorf("Clamp(%d): expected %d, got %d", in, want, got)
		}
	}
}

package core

import (
	"testing"
	"time"
)

func TestMove(t *testing.T) {
	origin := Point{5, 5}
	tests := []struct {
		dir  Direction
		want Point
	}{
		{DirUp, Point{5, 4}},
		{DirDown, Point{5, 6}},
		{DirLeft, Point{4, 5}},
		{DirRight, Point{6, 5}},
	}

	for _, tt := range tests {
		if got := Move(origin, tt.dir); got != tt.want {
			t.Errorf("Move(%v, %s): expected %v, got %v", origin, tt.dir, tt.want, got)
		}
	}
}

func TestMoveDoesNotWrap(t *testing.T) {
	got := Move(Point{0, 0}, DirLeft)
	if got != (Point{-1, 0}) {
		t.Errorf("Expected (-1,0), got %v", got)
	}
	if got.InBounds(20, 15) {
		t.Error("Expected (-1,0) to be out of bounds")
	}
}

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite() == d {
			t.Errorf("Opposite of %s should differ", d)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite twice of %s should be identity", d)
		}
		back := Move(Move(Point{3, 3}, d), d.Opposite())
		if back != (Point{3, 3}) {
			t.Errorf("Move then reverse for %s ended at %v", d, back)
		}
	}
}

func TestNeighborsOrder(t *testing.T) {
	n := Neighbors(Point{1, 1})
	want := [4]Point{{1, 0}, {1, 2}, {0, 1}, {2, 1}}
	if n != want {
		t.Errorf("Expected %v, got %v", want, n)
	}
}

func TestInBounds(t *testing.T) {
	cases := map[Point]bool{
		{0, 0}:   true,
		{19, 14}: true,
		{20, 0}:  false,
		{0, 15}:  false,
		{-1, 3}:  false,
	}
	for p, want := range cases {
		if got := p.InBounds(20, 15); got != want {
			t.Errorf("InBounds(%v): expected %v, got %v", p, want, got)
		}
	}
}

func TestMockTimeProviderAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMockTimeProvider(start)

	m.Advance(150 * time.Millisecond)
	if got := m.Now().Sub(start); got != 150*time.Millisecond {
		t.Errorf("Expected 150ms elapsed, got %v", got)
	}

	m.SetTime(start)
	if !m.Now().Equal(start) {
		t.Errorf("Expected reset to start, got %v", m.Now())
	}
}

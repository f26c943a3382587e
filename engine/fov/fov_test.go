package fov

import (
	"testing"

	"github.com/nathoo/delver/engine/dungeon"
)

// openGrid returns a grid whose interior (1..w-2, 1..h-2) is floor.
func openGrid(w, h int) *dungeon.Grid {
	g := dungeon.NewGrid(w, h)
	g.CarveRoom(dungeon.NewRoom(0, 0, w-1, h-1))
	return g
}

func TestFOV_OriginAlwaysVisible(t *testing.T) {
	m := New(openGrid(20, 20))
	m.Recompute(5, 5, 1)

	if !m.IsVisible(5, 5) {
		t.Error("origin must always be visible")
	}
	if m.IsVisible(7, 5) {
		t.Error("radius 1 should not reach two cells away")
	}
}

func TestFOV_ZeroRadiusIsUnlimited(t *testing.T) {
	m := New(openGrid(40, 20))
	m.Recompute(2, 2, 0)

	if !m.IsVisible(37, 17) {
		t.Error("radius 0 should light the far corner of an open room")
	}
	if !m.IsVisible(39, 19) {
		t.Error("radius 0 should light the far wall")
	}
}

func TestFOV_OpenRoom(t *testing.T) {
	m := New(openGrid(20, 20))
	m.Recompute(10, 10, 5)

	for _, p := range [][2]int{{10, 5}, {15, 10}, {10, 15}, {5, 10}, {13, 13}} {
		if !m.IsVisible(p[0], p[1]) {
			t.Errorf("(%d,%d) should be visible", p[0], p[1])
		}
	}
	if m.IsVisible(10, 4) || m.IsVisible(16, 10) {
		t.Error("cells past the radius should not be visible")
	}
}

func TestFOV_WallBlocksAndIsLit(t *testing.T) {
	g := openGrid(20, 20)
	// Re-wall column x=8; CarveRoom has no inverse so rebuild it by hand.
	for y := 0; y < 20; y++ {
		tile := g.At(8, y)
		tile.Blocked = true
		tile.BlocksSight = true
	}
	m := New(g)
	m.Recompute(5, 5, 10)

	if !m.IsVisible(7, 5) {
		t.Error("floor before the wall should be visible")
	}
	if !m.IsVisible(8, 5) {
		t.Error("the wall itself should be lit")
	}
	for x := 9; x < 19; x++ {
		if m.IsVisible(x, 5) {
			t.Errorf("(%d,5) behind the wall should be hidden", x)
		}
	}
}

func TestFOV_ClearsOldVisibility(t *testing.T) {
	m := New(openGrid(30, 30))
	m.Recompute(3, 3, 4)
	if !m.IsVisible(5, 5) {
		t.Fatal("(5,5) should be visible from (3,3)")
	}
	m.Recompute(25, 25, 4)
	if m.IsVisible(5, 5) {
		t.Error("Recompute should clear stale visibility")
	}
	if !m.IsVisible(25, 25) {
		t.Error("new origin should be visible")
	}
}

func TestFOV_OutOfBounds(t *testing.T) {
	m := New(openGrid(10, 10))
	m.Recompute(1, 1, 20)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {10, 5}, {5, 10}} {
		if m.IsVisible(p[0], p[1]) {
			t.Errorf("(%d,%d) is out of bounds and must not be visible", p[0], p[1])
		}
	}
}

func TestFOV_OriginOutOfBounds(t *testing.T) {
	m := New(openGrid(10, 10))
	m.Recompute(-5, -5, 10) // must not panic
	if m.IsVisible(0, 0) {
		t.Error("nothing should be visible from outside the map")
	}
}

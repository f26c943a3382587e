package dungeon

import "testing"

func TestNewGrid_AllWalls(t *testing.T) {
	g := NewGrid(5, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			tile := g.At(x, y)
			if !tile.Blocked || !tile.BlocksSight || tile.Explored {
				t.Fatalf("tile (%d,%d) = %+v, want blocked unexplored wall", x, y, *tile)
			}
		}
	}
}

func TestGrid_OutOfBounds(t *testing.T) {
	g := NewGrid(3, 3)
	g.CarveRoom(NewRoom(0, 0, 2, 2))

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if !g.Blocked(p[0], p[1]) {
			t.Errorf("Blocked(%d,%d) = false, want true", p[0], p[1])
		}
		if !g.BlocksSight(p[0], p[1]) {
			t.Errorf("BlocksSight(%d,%d) = false, want true", p[0], p[1])
		}
		if g.Explored(p[0], p[1]) {
			t.Errorf("Explored(%d,%d) = true, want false", p[0], p[1])
		}
		g.MarkExplored(p[0], p[1]) // must not panic
	}
}

func TestGrid_CarveRoomKeepsBorder(t *testing.T) {
	g := NewGrid(10, 10)
	r := NewRoom(2, 2, 4, 4) // interior (3..5, 3..5)
	g.CarveRoom(r)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := r.Contains(x, y)
			if got := !g.Blocked(x, y); got != want {
				t.Errorf("(%d,%d) open = %v, want %v", x, y, got, want)
			}
			if g.BlocksSight(x, y) == want {
				t.Errorf("(%d,%d) sight blocking mismatch", x, y)
			}
		}
	}
}

func TestGrid_TunnelsInclusiveAnyOrder(t *testing.T) {
	g := NewGrid(10, 10)
	g.CarveHTunnel(7, 2, 4)
	for x := 2; x <= 7; x++ {
		if g.Blocked(x, 4) {
			t.Errorf("h tunnel cell (%d,4) still blocked", x)
		}
	}
	if !g.Blocked(1, 4) || !g.Blocked(8, 4) {
		t.Error("h tunnel carved past its endpoints")
	}

	g.CarveVTunnel(1, 5, 8)
	for y := 1; y <= 5; y++ {
		if g.Blocked(8, y) {
			t.Errorf("v tunnel cell (8,%d) still blocked", y)
		}
	}
	if !g.Blocked(8, 0) || !g.Blocked(8, 6) {
		t.Error("v tunnel carved past its endpoints")
	}
}

func TestGrid_MarkExplored(t *testing.T) {
	g := NewGrid(4, 4)
	g.MarkExplored(2, 1)
	if !g.Explored(2, 1) {
		t.Error("expected (2,1) explored")
	}
	if g.Explored(1, 2) {
		t.Error("(1,2) should not be explored")
	}
}

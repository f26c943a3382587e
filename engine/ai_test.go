package engine

import (
	"math"
	"testing"

	"github.com/nathoo/delver/types"
)

func TestStepToward(t *testing.T) {
	tests := []struct {
		name           string
		fx, fy, tx, ty int
		dx, dy         int
	}{
		{"east", 0, 0, 5, 0, 1, 0},
		{"west", 5, 0, 0, 0, -1, 0},
		{"diagonal", 0, 0, 3, 3, 1, 1},
		{"back diagonal", 0, 0, -2, -2, -1, -1},
		{"steep", 0, 0, 1, 3, 0, 1},
		{"shallow", 0, 0, 2, 1, 1, 0},
		{"same cell", 4, 4, 4, 4, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := StepToward(tt.fx, tt.fy, tt.tx, tt.ty)
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("expected (%d,%d), got (%d,%d)", tt.dx, tt.dy, dx, dy)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	a := &types.Entity{X: 0, Y: 0}
	b := &types.Entity{X: 3, Y: 4}
	if d := Distance(a, b); d != 5 {
		t.Errorf("expected 5, got %v", d)
	}
	c := &types.Entity{X: 1, Y: 1}
	if d := Distance(a, c); math.Abs(d-math.Sqrt2) > 1e-9 {
		t.Errorf("expected sqrt(2), got %v", d)
	}
}

func TestChase_BlockedByWall(t *testing.T) {
	e := testEngine(t, allVisible{}, spawn(t, "zombie", 1, 5))
	e.State.Player.X, e.State.Player.Y = 1, 8
	z := e.State.Entities[1]
	// Wall the zombie in from the south.
	e.State.Grid.At(1, 6).Blocked = true

	evts, out := e.TakeTurn(z)
	if evts != nil || out != nil {
		t.Errorf("blocked chase should do nothing, got %v %v", evts, out)
	}
	if z.X != 1 || z.Y != 5 {
		t.Errorf("zombie moved through a wall to (%d,%d)", z.X, z.Y)
	}
}

func TestChase_BlockedByMonster(t *testing.T) {
	e := testEngine(t, allVisible{}, spawn(t, "troll", 7, 5), spawn(t, "bat", 8, 5))
	bat := e.State.Entities[2]

	e.TakeTurn(bat)
	if bat.X != 8 {
		t.Errorf("bat should not step onto the troll, got x=%d", bat.X)
	}
}

func TestTakeTurn_NoAI(t *testing.T) {
	e := testEngine(t, allVisible{}, spawn(t, "troll", 6, 5))
	troll := e.State.Entities[1]
	troll.AI = types.AINone
	if evts, out := e.TakeTurn(troll); evts != nil || out != nil {
		t.Errorf("expected nothing, got %v %v", evts, out)
	}
}

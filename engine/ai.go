package engine

import (
	"math"

	"github.com/nathoo/delver/engine/events"
	"github.com/nathoo/delver/engine/state"
	"github.com/nathoo/delver/types"
)

// TakeTurn runs ent's AI for one tick.
func (e *Engine) TakeTurn(ent *types.Entity) ([]types.Event, []string) {
	switch ent.AI {
	case types.AIChase:
		return e.chase(ent)
	default:
		return nil, nil
	}
}

// chase moves a monster the player can see toward the player, or attacks
// when it is adjacent. A monster the player cannot see does nothing.
func (e *Engine) chase(m *types.Entity) ([]types.Event, []string) {
	if !e.Visible(m.X, m.Y) {
		return nil, nil
	}
	p := e.State.Player

	if Distance(m, p) >= 2 {
		dx, dy := StepToward(m.X, m.Y, p.X, p.Y)
		if !e.move(m, dx, dy) {
			return nil, nil
		}
		return []types.Event{{Type: events.Move, Data: map[string]any{
			"entity": m.Name, "x": m.X, "y": m.Y,
		}}}, nil
	}

	if state.Alive(p) {
		return e.Attack(m, p)
	}
	return nil, nil
}

// Distance is the Euclidean distance between two entities.
func Distance(a, b *types.Entity) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

// StepToward returns the single grid step from (fromX, fromY) toward
// (toX, toY): the unit vector with each axis rounded to -1, 0 or 1.
func StepToward(fromX, fromY, toX, toY int) (dx, dy int) {
	vx := float64(toX - fromX)
	vy := float64(toY - fromY)
	d := math.Hypot(vx, vy)
	if d == 0 {
		return 0, 0
	}
	return clampUnit(int(math.Round(vx / d))), clampUnit(int(math.Round(vy / d)))
}

func clampUnit(v int) int {
	return max(-1, min(1, v))
}

// Package engine provides the Step() orchestrator that runs one tick of the
// dungeon: the player's action, then every monster's turn.
package engine

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nathoo/delver/engine/dungeon"
	"github.com/nathoo/delver/engine/events"
	"github.com/nathoo/delver/engine/fov"
	"github.com/nathoo/delver/engine/state"
	"github.com/nathoo/delver/types"
)

// Visibility answers which cells the player can currently see.
type Visibility interface {
	IsVisible(x, y int) bool
	Recompute(originX, originY, radius int)
}

// Options configures a new Engine. The zero value is usable.
type Options struct {
	Seed   int64
	Logger *zap.Logger

	// Random overrides the seeded RNG used for generation.
	Random dungeon.RandomSource

	// Visibility builds the field-of-view provider for the generated grid.
	// Defaults to shadowcasting from package fov.
	Visibility func(g *dungeon.Grid) Visibility
}

// Engine holds the definitions and the mutable state of one session.
type Engine struct {
	Defs      *state.Defs
	State     *state.State
	Level     *dungeon.Level
	Vis       Visibility
	Log       *zap.Logger
	SessionID string
	Seed      int64
	Kills     int

	fovDirty bool
	handlers []events.Handler
}

// New validates defs, generates the dungeon and places every entity.
func New(defs *state.Defs, opts Options) (*Engine, error) {
	if err := state.Validate(defs); err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.NewString()
	log = log.With(zap.String("session", id))

	rng := opts.Random
	if rng == nil {
		rng = NewRNG(opts.Seed)
	}

	lvl, err := dungeon.Generate(defs.GenerationParams(), rng)
	if err != nil {
		log.Error("dungeon generation failed", zap.Int64("seed", opts.Seed), zap.Error(err))
		return nil, fmt.Errorf("generating dungeon: %w", err)
	}
	log.Info("dungeon generated",
		zap.Int64("seed", opts.Seed),
		zap.Int("rooms", len(lvl.Rooms)),
		zap.Int("too_large", lvl.Rejected),
		zap.Int("overlapping", lvl.Overlaps),
		zap.Int("monsters", len(lvl.Monsters)),
	)
	if r, ok := rng.(*RNG); ok {
		log.Debug("generation draws", zap.Int64("draws", r.Position()))
	}

	e := &Engine{
		Defs:      defs,
		State:     state.NewState(defs, lvl),
		Level:     lvl,
		Log:       log,
		SessionID: id,
		Seed:      opts.Seed,
	}
	if opts.Visibility != nil {
		e.Vis = opts.Visibility(lvl.Grid)
	} else {
		e.Vis = fov.New(lvl.Grid)
	}
	e.Subscribe(events.Logger(log))
	e.Subscribe(events.Filter(func(types.Event) { e.Kills++ }, events.Death))
	e.refreshVisibility()
	return e, nil
}

// Subscribe registers h to receive every event produced by Step.
func (e *Engine) Subscribe(h events.Handler) {
	e.handlers = append(e.handlers, h)
}

// Step processes one player intent and returns what happened.
func (e *Engine) Step(intent types.Intent) types.Result {
	var result types.Result

	// 0. Exit and non-turn commands never touch the simulation.
	switch intent.Verb {
	case "quit":
		result.Exit = true
		return result
	case "move":
	default:
		return result
	}

	// 1. A dead player cannot act.
	if e.State.Mode != types.ModePlaying {
		result.Output = append(result.Output, "You are dead.")
		return result
	}
	if !unitStep(intent.DX) || !unitStep(intent.DY) {
		result.Output = append(result.Output, "You can't move that far.")
		return result
	}

	// 2. Player action.
	evts, out := e.playerMoveOrAttack(intent.DX, intent.DY)
	result.Events = append(result.Events, evts...)
	result.Output = append(result.Output, out...)
	result.TookTurn = true

	// 3. Monster turns, in collection order, against the field of view from
	// before the player's move. A player killed mid-tick is not attacked again.
	for _, ent := range e.State.Entities {
		if ent.AI == types.AINone {
			continue
		}
		evts, out := e.TakeTurn(ent)
		result.Events = append(result.Events, evts...)
		result.Output = append(result.Output, out...)
	}

	// 4. Field of view catches up with the player.
	if e.fovDirty {
		e.refreshVisibility()
	}

	// 5. Bookkeeping.
	e.State.TurnCount++
	events.Dispatch(result.Events, e.handlers)

	return result
}

// playerMoveOrAttack attacks whatever can be hit at the destination, and
// otherwise tries to walk there.
func (e *Engine) playerMoveOrAttack(dx, dy int) ([]types.Event, []string) {
	p := e.State.Player
	x, y := p.X+dx, p.Y+dy

	if target := state.AttackableAt(e.State, x, y); target != nil && target != p {
		return e.Attack(p, target)
	}

	e.fovDirty = true
	if dx == 0 && dy == 0 {
		return nil, nil
	}
	if !e.move(p, dx, dy) {
		return []types.Event{{Type: events.Bump, Data: map[string]any{
			"entity": p.Name, "x": x, "y": y,
		}}}, nil
	}
	return []types.Event{{Type: events.Move, Data: map[string]any{
		"entity": p.Name, "x": p.X, "y": p.Y,
	}}}, nil
}

// move shifts ent by (dx, dy) unless the destination is blocked.
func (e *Engine) move(ent *types.Entity, dx, dy int) bool {
	if state.IsBlocked(e.State, ent.X+dx, ent.Y+dy) {
		return false
	}
	ent.X += dx
	ent.Y += dy
	return true
}

// Visible reports whether the player can see (x, y).
func (e *Engine) Visible(x, y int) bool {
	if !e.State.Grid.InBounds(x, y) {
		return false
	}
	return e.Vis.IsVisible(x, y)
}

// refreshVisibility recomputes the field of view around the player and marks
// every lit cell explored.
func (e *Engine) refreshVisibility() {
	p := e.State.Player
	r := e.Defs.Dungeon.TorchRadius
	e.Vis.Recompute(p.X, p.Y, r)

	g := e.State.Grid
	if r <= 0 {
		r = max(g.Width, g.Height)
	}
	for y := max(0, p.Y-r); y <= min(g.Height-1, p.Y+r); y++ {
		for x := max(0, p.X-r); x <= min(g.Width-1, p.X+r); x++ {
			if e.Vis.IsVisible(x, y) {
				g.MarkExplored(x, y)
			}
		}
	}
	e.fovDirty = false
}

// Status returns the player-facing summary.
func (e *Engine) Status() types.Status {
	st := types.Status{Turn: e.State.TurnCount, Mode: e.State.Mode}
	if c := e.State.Player.Combat; c != nil {
		st.HP = c.HP
		st.MaxHP = c.MaxHP
	}
	return st
}

func unitStep(d int) bool {
	return d >= -1 && d <= 1
}

// Package state owns the mutable session: the level, the entity list and the
// game mode, plus the read-only queries the engine runs against them.
package state

import (
	"unicode/utf8"

	"github.com/nathoo/delver/engine/dungeon"
	"github.com/nathoo/delver/types"
)

// State is the complete mutable game state of one session.
type State struct {
	Grid      *dungeon.Grid
	Rooms     []dungeon.Room
	Entities  []*types.Entity // stable order; the player is always first
	Player    *types.Entity
	Mode      types.Mode
	TurnCount int
}

// NewState places the player on the level's spawn cell and one entity per
// monster spawn, in spawn order.
func NewState(defs *Defs, lvl *dungeon.Level) *State {
	s := &State{
		Grid:  lvl.Grid,
		Rooms: lvl.Rooms,
		Mode:  types.ModePlaying,
	}
	s.Player = NewPlayer(defs.Player, lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y)
	s.Entities = append(s.Entities, s.Player)
	for i, sp := range lvl.Monsters {
		s.Entities = append(s.Entities, NewMonster(i+1, sp.Monster, sp.X, sp.Y))
	}
	return s
}

// NewPlayer builds the player entity.
func NewPlayer(def types.FighterDef, x, y int) *types.Entity {
	return &types.Entity{
		ID:     0,
		X:      x,
		Y:      y,
		Glyph:  Glyph(def.Glyph),
		Color:  def.Color,
		Name:   def.Name,
		Blocks: true,
		Combat: &types.Combat{
			MaxHP: def.HP, HP: def.HP,
			Defense: def.Defense, Power: def.Power,
			OnDeath: types.DeathPlayer,
		},
		AI: types.AINone,
	}
}

// NewMonster builds a blocking, chasing monster.
func NewMonster(id int, def types.MonsterDef, x, y int) *types.Entity {
	name := def.Name
	if name == "" {
		name = def.ID
	}
	return &types.Entity{
		ID:     id,
		X:      x,
		Y:      y,
		Glyph:  Glyph(def.Glyph),
		Color:  def.Color,
		Name:   name,
		Blocks: true,
		Combat: &types.Combat{
			MaxHP: def.HP, HP: def.HP,
			Defense: def.Defense, Power: def.Power,
			OnDeath: types.DeathMonster,
		},
		AI: types.AIChase,
	}
}

// Glyph returns the first rune of s, or '?' when s is empty.
func Glyph(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// IsBlocked reports whether (x, y) cannot be entered: out of bounds, a wall,
// or a cell holding a blocking entity.
func IsBlocked(s *State, x, y int) bool {
	if s.Grid.Blocked(x, y) {
		return true
	}
	return BlockerAt(s, x, y) != nil
}

// BlockerAt returns the blocking entity at (x, y), or nil.
func BlockerAt(s *State, x, y int) *types.Entity {
	for _, e := range s.Entities {
		if e.Blocks && e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// AttackableAt returns the first entity at (x, y) that can still be damaged,
// or nil. Corpses are never returned.
func AttackableAt(s *State, x, y int) *types.Entity {
	for _, e := range s.Entities {
		if e.X == x && e.Y == y && Alive(e) {
			return e
		}
	}
	return nil
}

// Alive reports whether e can still fight.
func Alive(e *types.Entity) bool {
	return e.Combat != nil && e.Combat.HP > 0
}

// Living returns the entities that can still fight, in collection order.
func Living(s *State) []*types.Entity {
	var out []*types.Entity
	for _, e := range s.Entities {
		if Alive(e) {
			out = append(out, e)
		}
	}
	return out
}

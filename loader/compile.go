// Package loader loads Lua dungeon configuration into Go structs at startup.
// The Lua VM is discarded after loading — zero Lua at runtime.
package loader

import (
	"fmt"
	"math"

	"github.com/nathoo/delver/engine/state"
	"github.com/nathoo/delver/types"
	lua "github.com/yuin/gopher-lua"
)

// rawMonster holds a monster table before compilation.
type rawMonster struct {
	id    string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or def if missing.
func getString(tbl *lua.LTable, key, def string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return def
}

// getInt returns an integer field from a Lua table, or def if missing. A
// fractional or out-of-range number is an error.
func getInt(tbl *lua.LTable, key string, def int) (int, error) {
	switch v := tbl.RawGetString(key).(type) {
	case *lua.LNilType:
		return def, nil
	case lua.LNumber:
		f := float64(v)
		if math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
			return 0, fmt.Errorf("%s must be between %d and %d, got %v", key, math.MinInt32, math.MaxInt32, f)
		}
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("%s must be a whole number, got %v", key, f)
		}
		return int(f), nil
	default:
		return 0, fmt.Errorf("%s must be a number, got %s", key, v.Type())
	}
}

// intFields reads several integer fields at once, stopping at the first bad one.
type intFields struct {
	tbl *lua.LTable
	err error
}

func (f *intFields) read(key string, dst *int) {
	if f.err != nil {
		return
	}
	*dst, f.err = getInt(f.tbl, key, *dst)
}

// compile applies the collected tables on top of the default configuration.
func compile(coll *collector) (*state.Defs, error) {
	defs := state.DefaultDefs()

	if coll.dungeon != nil {
		d, err := compileDungeon(coll.dungeon, defs.Dungeon)
		if err != nil {
			return nil, fmt.Errorf("Dungeon: %w", err)
		}
		defs.Dungeon = d
	}

	if coll.player != nil {
		p, err := compilePlayer(coll.player, defs.Player)
		if err != nil {
			return nil, fmt.Errorf("Player: %w", err)
		}
		defs.Player = p
	}

	// Declared monsters replace the default table entirely.
	if len(coll.monsters) > 0 {
		defs.Monsters = make([]types.MonsterDef, 0, len(coll.monsters))
		for _, raw := range coll.monsters {
			m, err := compileMonster(raw)
			if err != nil {
				return nil, fmt.Errorf("Monster %q: %w", raw.id, err)
			}
			defs.Monsters = append(defs.Monsters, m)
		}
	}

	return defs, nil
}

func compileDungeon(tbl *lua.LTable, d types.DungeonDef) (types.DungeonDef, error) {
	f := intFields{tbl: tbl}
	f.read("width", &d.Width)
	f.read("height", &d.Height)
	f.read("max_rooms", &d.MaxRooms)
	f.read("room_min_size", &d.RoomMinSize)
	f.read("room_max_size", &d.RoomMaxSize)
	f.read("max_monsters_per_room", &d.MaxMonstersPerRoom)
	f.read("torch_radius", &d.TorchRadius)
	return d, f.err
}

func compilePlayer(tbl *lua.LTable, p types.FighterDef) (types.FighterDef, error) {
	p.Name = getString(tbl, "name", p.Name)
	p.Glyph = getString(tbl, "glyph", p.Glyph)
	p.Color = getString(tbl, "color", p.Color)

	f := intFields{tbl: tbl}
	f.read("hp", &p.HP)
	f.read("defense", &p.Defense)
	f.read("power", &p.Power)
	return p, f.err
}

func compileMonster(raw rawMonster) (types.MonsterDef, error) {
	tbl := raw.table
	m := types.MonsterDef{
		ID:    raw.id,
		Name:  getString(tbl, "name", raw.id),
		Glyph: getString(tbl, "glyph", ""),
		Color: getString(tbl, "color", "white"),
	}

	f := intFields{tbl: tbl}
	f.read("weight", &m.Weight)
	f.read("hp", &m.HP)
	f.read("defense", &m.Defense)
	f.read("power", &m.Power)
	return m, f.err
}

// Package dungeon builds a level: rooms placed by rejection sampling, joined
// by L-shaped tunnels, with monster spawn points rolled per room.
package dungeon

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nathoo/delver/types"
)

var (
	// ErrInvalidConfig is returned before generation starts when the
	// parameters can never describe a valid level.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGenerationFailed is returned when no room could be placed, so there
	// is nowhere to put the player.
	ErrGenerationFailed = errors.New("generation failed")
)

// RandomSource yields uniform integers in [min, max], both inclusive.
type RandomSource interface {
	Int(min, max int) int
}

// Params controls one generation run.
type Params struct {
	Width              int
	Height             int
	MaxRooms           int
	RoomMinSize        int
	RoomMaxSize        int
	MaxMonstersPerRoom int
	Monsters           []types.MonsterDef
}

// ParamsFrom builds generation parameters from configuration.
func ParamsFrom(d types.DungeonDef, monsters []types.MonsterDef) Params {
	return Params{
		Width:              d.Width,
		Height:             d.Height,
		MaxRooms:           d.MaxRooms,
		RoomMinSize:        d.RoomMinSize,
		RoomMaxSize:        d.RoomMaxSize,
		MaxMonstersPerRoom: d.MaxMonstersPerRoom,
		Monsters:           monsters,
	}
}

// Problems lists every reason p cannot be used. An empty result means the
// parameters are usable, though they may still produce zero rooms.
func (p Params) Problems() []string {
	var out []string
	if p.Width <= 0 || p.Height <= 0 {
		out = append(out, fmt.Sprintf("map size %dx%d must be positive", p.Width, p.Height))
	}
	if p.MaxRooms <= 0 {
		out = append(out, fmt.Sprintf("max_rooms %d must be positive", p.MaxRooms))
	}
	// A room narrower than 2 has no interior, so its center would be a wall.
	if p.RoomMinSize < 2 {
		out = append(out, fmt.Sprintf("room_min_size %d must be at least 2", p.RoomMinSize))
	}
	if p.RoomMinSize > p.RoomMaxSize {
		out = append(out, fmt.Sprintf("room_min_size %d is greater than room_max_size %d",
			p.RoomMinSize, p.RoomMaxSize))
	}
	if p.MaxMonstersPerRoom < 0 {
		out = append(out, fmt.Sprintf("max_monsters_per_room %d must not be negative", p.MaxMonstersPerRoom))
	}
	total := 0
	for _, m := range p.Monsters {
		if m.Weight < 0 {
			out = append(out, fmt.Sprintf("monster %q has negative weight %d", m.ID, m.Weight))
		}
		total += m.Weight
	}
	if p.MaxMonstersPerRoom > 0 && total <= 0 {
		out = append(out, "monster table needs at least one entry with a positive weight")
	}
	return out
}

// Spawn is a monster placement chosen by the generator.
type Spawn struct {
	X, Y    int
	Monster types.MonsterDef
}

// Level is the finished map plus everything needed to populate it.
type Level struct {
	Grid        *Grid
	Rooms       []Room // accepted rooms in placement order
	PlayerSpawn types.Point
	Monsters    []Spawn

	Rejected int // candidates too large for the grid
	Overlaps int // candidates discarded for intersecting an accepted room
}

// Generate builds a level. It makes exactly p.MaxRooms placement attempts;
// accepting fewer rooms is normal. It fails only when the parameters are
// invalid or when not a single room was accepted.
func Generate(p Params, rng RandomSource) (*Level, error) {
	if problems := p.Problems(); len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	lvl := &Level{Grid: NewGrid(p.Width, p.Height)}

	for attempt := 0; attempt < p.MaxRooms; attempt++ {
		w := rng.Int(p.RoomMinSize, p.RoomMaxSize)
		h := rng.Int(p.RoomMinSize, p.RoomMaxSize)

		// The room plus its right/bottom wall must fit inside the grid.
		if w > p.Width-1 || h > p.Height-1 {
			lvl.Rejected++
			continue
		}
		x := rng.Int(0, p.Width-w-1)
		y := rng.Int(0, p.Height-h-1)
		room := NewRoom(x, y, w, h)

		if lvl.overlaps(room) {
			lvl.Overlaps++
			continue
		}

		lvl.Grid.CarveRoom(room)
		center := room.Center()

		if len(lvl.Rooms) == 0 {
			lvl.PlayerSpawn = center
		} else {
			prev := lvl.Rooms[len(lvl.Rooms)-1].Center()
			if rng.Int(0, 1) == 1 {
				lvl.Grid.CarveHTunnel(prev.X, center.X, prev.Y)
				lvl.Grid.CarveVTunnel(prev.Y, center.Y, center.X)
			} else {
				lvl.Grid.CarveVTunnel(prev.Y, center.Y, prev.X)
				lvl.Grid.CarveHTunnel(prev.X, center.X, center.Y)
			}
		}

		lvl.populate(room, p, rng)
		lvl.Rooms = append(lvl.Rooms, room)
	}

	if len(lvl.Rooms) == 0 {
		return nil, fmt.Errorf("%w: no room placed in %d attempts on a %dx%d map (%d too large)",
			ErrGenerationFailed, p.MaxRooms, p.Width, p.Height, lvl.Rejected)
	}
	return lvl, nil
}

// overlaps reports whether r intersects any accepted room.
func (l *Level) overlaps(r Room) bool {
	for _, other := range l.Rooms {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}

// populate rolls the monsters for one room. Spawn cells are drawn from the
// whole rectangle, border included; a roll that lands on a wall or an
// occupied cell is dropped.
func (l *Level) populate(r Room, p Params, rng RandomSource) {
	if len(p.Monsters) == 0 {
		return
	}
	n := rng.Int(0, p.MaxMonstersPerRoom)
	for i := 0; i < n; i++ {
		x := rng.Int(r.X1, r.X2)
		y := rng.Int(r.Y1, r.Y2)
		if l.occupied(x, y) {
			continue
		}
		l.Monsters = append(l.Monsters, Spawn{X: x, Y: y, Monster: PickMonster(p.Monsters, rng)})
	}
}

// occupied reports whether a spawn at (x, y) would land on a wall, the
// player or an earlier monster.
func (l *Level) occupied(x, y int) bool {
	if l.Grid.Blocked(x, y) {
		return true
	}
	if l.PlayerSpawn.X == x && l.PlayerSpawn.Y == y {
		return true
	}
	for _, s := range l.Monsters {
		if s.X == x && s.Y == y {
			return true
		}
	}
	return false
}

// PickMonster draws a monster kind by cumulative weight. The roll covers
// [0, total] inclusive; the top value falls through to the last entry with a
// positive weight, so a weight-0 kind is never picked.
func PickMonster(table []types.MonsterDef, rng RandomSource) types.MonsterDef {
	total := 0
	last := len(table) - 1
	for i, m := range table {
		total += m.Weight
		if m.Weight > 0 {
			last = i
		}
	}
	roll := rng.Int(0, total)
	cumulative := 0
	for _, m := range table {
		cumulative += m.Weight
		if roll < cumulative {
			return m
		}
	}
	return table[last]
}

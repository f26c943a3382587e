package state

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nathoo/delver/engine/dungeon"
	"github.com/nathoo/delver/types"
)

// Defs holds the immutable configuration of a session.
type Defs struct {
	Dungeon  types.DungeonDef
	Player   types.FighterDef
	Monsters []types.MonsterDef
}

// DefaultDefs returns the reference configuration: an 80x45 map, up to 30
// rooms of 6 to 10 cells, up to 3 monsters per room, and a torch radius of 10.
func DefaultDefs() *Defs {
	return &Defs{
		Dungeon: types.DungeonDef{
			Width:              80,
			Height:             45,
			MaxRooms:           30,
			RoomMinSize:        6,
			RoomMaxSize:        10,
			MaxMonstersPerRoom: 3,
			TorchRadius:        10,
		},
		Player: types.FighterDef{
			Name: "player", Glyph: "@", Color: "white",
			HP: 30, Defense: 2, Power: 5,
		},
		Monsters: []types.MonsterDef{
			{ID: "bat", Name: "bat", Glyph: "w", Color: "light_yellow",
				Weight: 20, HP: 4, Defense: 1, Power: 1},
			{ID: "troll", Name: "troll", Glyph: "T", Color: "dark_violet",
				Weight: 40, HP: 12, Defense: 1, Power: 4},
			{ID: "zombie", Name: "zombie", Glyph: "Z", Color: "desaturated_green",
				Weight: 40, HP: 5, Defense: 0, Power: 3},
		},
	}
}

// GenerationParams returns the map generator parameters for d.
func (d *Defs) GenerationParams() dungeon.Params {
	return dungeon.ParamsFrom(d.Dungeon, d.Monsters)
}

// ValidationError collects every configuration problem found at once.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Unwrap lets callers match any validation failure with
// errors.Is(err, dungeon.ErrInvalidConfig).
func (e *ValidationError) Unwrap() error {
	return dungeon.ErrInvalidConfig
}

// Validate checks defs before anything is generated. It returns nil or a
// *ValidationError.
func Validate(defs *Defs) error {
	ve := &ValidationError{}
	Check(defs, ve)
	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

// Check appends every problem in defs to ve. Loaders use it to merge
// their own findings into one report.
func Check(defs *Defs, ve *ValidationError) {
	ve.Errors = append(ve.Errors, defs.GenerationParams().Problems()...)

	if defs.Dungeon.TorchRadius < 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("torch_radius %d must not be negative", defs.Dungeon.TorchRadius))
	}

	p := defs.Player
	checkStats(ve, "player", p.Glyph, p.HP, p.Defense, p.Power)

	seen := map[string]bool{}
	for i, m := range defs.Monsters {
		label := fmt.Sprintf("monster %q", m.ID)
		if m.ID == "" {
			label = fmt.Sprintf("monster #%d", i+1)
			ve.Errors = append(ve.Errors, label+" has no id")
		} else if seen[m.ID] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("monster %q is defined more than once", m.ID))
		}
		seen[m.ID] = true
		checkStats(ve, label, m.Glyph, m.HP, m.Defense, m.Power)
	}
}

func checkStats(ve *ValidationError, label, glyph string, hp, defense, power int) {
	if utf8.RuneCountInString(glyph) != 1 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("%s glyph %q must be a single character", label, glyph))
	}
	if hp <= 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("%s hp %d must be positive", label, hp))
	}
	if defense < 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("%s defense %d must not be negative", label, defense))
	}
	if power < 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("%s power %d must not be negative", label, power))
	}
}

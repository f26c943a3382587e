package engine

import (
	"fmt"
	"strings"

	"github.com/nathoo/delver/engine/events"
	"github.com/nathoo/delver/types"
)

// Corpse look shared by every death transition.
const (
	corpseGlyph = '%'
	corpseColor = "dark_red"
)

// Damage computes power - defense. Callers apply it only when positive.
func Damage(power, defense int) int {
	return power - defense
}

// Attack resolves one melee blow from attacker against target.
func (e *Engine) Attack(attacker, target *types.Entity) ([]types.Event, []string) {
	if attacker.Combat == nil || target.Combat == nil {
		return nil, nil
	}

	damage := Damage(attacker.Combat.Power, target.Combat.Defense)
	data := map[string]any{
		"attacker": attacker.Name,
		"target":   target.Name,
		"damage":   damage,
	}

	if damage <= 0 {
		return []types.Event{{Type: events.NoEffect, Data: data}},
			[]string{fmt.Sprintf("%s attacks %s but it has no effect!", capitalize(attacker.Name), target.Name)}
	}

	evts := []types.Event{{Type: events.Attack, Data: data}}
	output := []string{fmt.Sprintf("%s attacks %s for %d hit points.", capitalize(attacker.Name), target.Name, damage)}

	deathEvts, deathOut := e.TakeDamage(target, damage)
	return append(evts, deathEvts...), append(output, deathOut...)
}

// TakeDamage subtracts a positive amount from target's hp and runs its death
// transition when hp reaches zero. Entities that are already dead, or have
// no combat stats, are left untouched.
func (e *Engine) TakeDamage(target *types.Entity, amount int) ([]types.Event, []string) {
	c := target.Combat
	if c == nil || c.HP <= 0 {
		return nil, nil
	}
	if amount > 0 {
		c.HP -= amount
	}
	if c.HP > 0 {
		return nil, nil
	}

	switch c.OnDeath {
	case types.DeathPlayer:
		return e.playerDeath(target)
	default:
		return e.monsterDeath(target)
	}
}

// playerDeath ends the session. The player keeps their stats so the final hp
// can still be shown.
func (e *Engine) playerDeath(p *types.Entity) ([]types.Event, []string) {
	e.State.Mode = types.ModeDead
	p.Glyph = corpseGlyph
	p.Color = corpseColor
	return []types.Event{{Type: events.PlayerDeath, Data: map[string]any{
		"turn": e.State.TurnCount,
	}}}, []string{"You died!"}
}

// monsterDeath turns m into inert remains: no stats, no AI, not blocking.
func (e *Engine) monsterDeath(m *types.Entity) ([]types.Event, []string) {
	msg := capitalize(m.Name) + " is dead!"
	name := m.Name

	m.Glyph = corpseGlyph
	m.Color = corpseColor
	m.Blocks = false
	m.Combat = nil
	m.AI = types.AINone
	m.Name = "remains of " + name

	return []types.Event{{Type: events.Death, Data: map[string]any{
		"name": name, "x": m.X, "y": m.Y,
	}}}, []string{msg}
}

// capitalize upper-cases the first letter of s.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

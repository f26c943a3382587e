// Package events implements single-pass delivery of step events to
// subscribers. Handlers observe; they never feed events back into the step.
package events

import (
	"go.uber.org/zap"

	"github.com/nathoo/delver/types"
)

// Event types emitted by the engine.
const (
	Attack      = "attack"       // damage applied: attacker, target, damage
	NoEffect    = "no_effect"    // blow landed for no damage: attacker, target, damage
	Death       = "death"        // a monster died: name, x, y
	PlayerDeath = "player_death" // the player died: turn
	Move        = "move"         // an entity stepped: entity, x, y
	Bump        = "bump"         // a step was refused: entity, x, y
)

// Handler receives one event.
type Handler func(types.Event)

// Dispatch runs every handler on every event, in order. Single pass.
func Dispatch(evts []types.Event, handlers []Handler) {
	for _, ev := range evts {
		for _, h := range handlers {
			h(ev)
		}
	}
}

// Logger returns a handler that writes each event to log with the event data
// as structured fields. Deaths log at info, everything else at debug.
func Logger(log *zap.Logger) Handler {
	return func(ev types.Event) {
		fields := make([]zap.Field, 0, len(ev.Data))
		for k, v := range ev.Data {
			fields = append(fields, zap.Any(k, v))
		}
		if ev.Type == Death || ev.Type == PlayerDeath {
			log.Info(ev.Type, fields...)
			return
		}
		log.Debug(ev.Type, fields...)
	}
}

// Filter wraps h so it only sees events of the given types.
func Filter(h Handler, kinds ...string) Handler {
	want := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	return func(ev types.Event) {
		if want[ev.Type] {
			h(ev)
		}
	}
}

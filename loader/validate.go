package loader

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/nathoo/delver/engine/state"
	"github.com/nathoo/delver/types"
)

// ValidationError is the engine's aggregate config error; loader adds
// warnings to it.
type ValidationError = state.ValidationError

// validate runs the engine's config checks plus loader-only warnings. It
// returns nil or a *ValidationError; warnings alone never fail a load and
// are logged.
func validate(defs *state.Defs, log *zap.Logger) error {
	ve := &ValidationError{}
	state.Check(defs, ve)

	checkColor(ve, "player", defs.Player.Color)
	for _, m := range defs.Monsters {
		checkColor(ve, fmt.Sprintf("monster %q", m.ID), m.Color)
		if m.Weight == 0 {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("monster %q has weight 0 and never spawns", m.ID))
		}
	}

	for _, w := range ve.Warnings {
		log.Warn("config warning", zap.String("warning", w))
	}
	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func checkColor(ve *ValidationError, who, color string) {
	if !slices.Contains(types.ColorNames, color) {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf("%s color %q is not known and will draw as white", who, color))
	}
}

// Package parser converts typed commands into Intent structs.
// Intentionally dumb: no NLP, just lookup tables.
package parser

import (
	"strings"

	"github.com/nathoo/delver/types"
)

// Delta is a one-cell step.
type Delta struct{ DX, DY int }

// Directions maps every accepted direction word to its step. Single letters
// follow the vi-keys layout; compass names are spelled out or abbreviated to
// two letters.
var Directions = map[string]Delta{
	// vi keys
	"h": {-1, 0},
	"j": {0, 1},
	"k": {0, -1},
	"l": {1, 0},
	"y": {-1, -1},
	"u": {1, -1},
	"b": {-1, 1},
	"n": {1, 1},

	// compass
	"north":     {0, -1},
	"south":     {0, 1},
	"east":      {1, 0},
	"west":      {-1, 0},
	"northeast": {1, -1},
	"northwest": {-1, -1},
	"southeast": {1, 1},
	"southwest": {-1, 1},
	"ne":        {1, -1},
	"nw":        {-1, -1},
	"se":        {1, 1},
	"sw":        {-1, 1},

	// screen
	"up":    {0, -1},
	"down":  {0, 1},
	"left":  {-1, 0},
	"right": {1, 0},

	// numeric keypad
	"1": {-1, 1},
	"2": {0, 1},
	"3": {1, 1},
	"4": {-1, 0},
	"6": {1, 0},
	"7": {-1, -1},
	"8": {0, -1},
	"9": {1, -1},
}

var verbAliases = map[string]string{
	// Wait in place
	"z":    "wait",
	".":    "wait",
	"5":    "wait",
	"rest": "wait",

	// Map
	"map": "look",

	// Status
	"hp":    "status",
	"stats": "status",

	// Help
	"?": "help",

	// Quit
	"q":    "quit",
	"exit": "quit",
}

// Movement verbs that take a direction argument.
var moveVerbs = map[string]bool{
	"go": true, "move": true, "walk": true, "step": true, "attack": true,
}

// Parse converts a raw command string into an Intent. Moves and waits become
// Verb "move"; every other word is passed through (after aliasing) as a
// command that does not use a turn.
func Parse(input string) types.Intent {
	words := strings.Fields(strings.ToLower(input))
	if len(words) == 0 {
		return types.Intent{}
	}

	// Bare direction: "h", "north", "ne".
	if len(words) == 1 {
		if d, ok := Directions[words[0]]; ok {
			return Move(d.DX, d.DY)
		}
	}

	verb := words[0]
	if alias, ok := verbAliases[verb]; ok {
		verb = alias
	}

	switch {
	case verb == "wait":
		return Move(0, 0)
	case moveVerbs[verb]:
		if len(words) == 2 {
			if d, ok := Directions[words[1]]; ok {
				return Move(d.DX, d.DY)
			}
		}
		// "go" with no usable direction is not a turn.
		return types.Intent{Verb: verb}
	}
	return types.Intent{Verb: verb}
}

// Move builds a movement intent.
func Move(dx, dy int) types.Intent {
	return types.Intent{Verb: "move", DX: dx, DY: dy}
}

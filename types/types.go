// Package types defines the shared data structures for the delver engine.
// This package contains only type definitions: no logic, no methods.
package types

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Tile is one map cell.
type Tile struct {
	Blocked     bool
	BlocksSight bool
	Explored    bool
}

// Mode is the session state. It only ever moves Playing → Dead.
type Mode int

const (
	ModePlaying Mode = iota
	ModeDead
)

// AIKind selects the per-turn behavior of an entity.
type AIKind int

const (
	AINone AIKind = iota
	AIChase
)

// DeathKind selects which death transition runs when hp drops to zero.
type DeathKind int

const (
	DeathMonster DeathKind = iota
	DeathPlayer
)

// Combat holds the fighting stats of an entity.
type Combat struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
	OnDeath DeathKind
}

// Entity is anything positioned on the map: the player, monsters, corpses.
type Entity struct {
	ID     int
	X, Y   int
	Glyph  rune
	Color  string // color category, e.g. "light_yellow"
	Name   string
	Blocks bool
	Combat *Combat // nil when the entity cannot fight or be damaged
	AI     AIKind
}

// Intent is the parsed representation of a player action.
type Intent struct {
	Verb string // "move", "quit", or a non-turn command
	DX   int    // move only
	DY   int    // move only
}

// Event is emitted by the engine when something happens during a step.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single game step.
type Result struct {
	Events   []Event
	Output   []string
	TookTurn bool
	Exit     bool
}

// Sprite is a render request for one entity.
type Sprite struct {
	X, Y    int
	Glyph   rune
	Color   string
	Visible bool
}

// Status is the player-facing summary shown after each step.
type Status struct {
	HP    int
	MaxHP int
	Turn  int
	Mode  Mode
}

// DungeonDef holds the map generation and lighting parameters.
type DungeonDef struct {
	Width              int
	Height             int
	MaxRooms           int
	RoomMinSize        int
	RoomMaxSize        int
	MaxMonstersPerRoom int
	TorchRadius        int
}

// FighterDef describes the player's starting stats and look.
type FighterDef struct {
	Name    string
	Glyph   string
	Color   string
	HP      int
	Defense int
	Power   int
}

// MonsterDef is one entry of the monster table.
type MonsterDef struct {
	ID      string
	Name    string
	Glyph   string
	Color   string
	Weight  int
	HP      int
	Defense int
	Power   int
}

// ColorNames lists the color categories front ends know how to draw.
var ColorNames = []string{
	"white", "black", "dark_red", "red", "light_red",
	"yellow", "light_yellow", "green", "desaturated_green", "light_green",
	"blue", "light_blue", "violet", "dark_violet", "orange", "grey",
}

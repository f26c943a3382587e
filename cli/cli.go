// Package cli provides the line-oriented front end: input parsing, output
// formatting and meta-command dispatch.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/nathoo/delver/engine"
	"github.com/nathoo/delver/engine/parser"
	"github.com/nathoo/delver/engine/state"
	"github.com/nathoo/delver/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine) *CLI {
	return &CLI{
		Engine: eng,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run starts the game loop. It draws the starting view, then loops:
// prompt → input → dispatch → output.
func (c *CLI) Run() {
	c.printLine("You descend into the dungeon.")
	c.printMap()
	c.printStatus()

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last game command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		if c.handleCommand(parser.Parse(input)) {
			return
		}
	}
}

// handleCommand runs one parsed command. Returns true if the game should exit.
func (c *CLI) handleCommand(intent types.Intent) bool {
	switch intent.Verb {
	case "look":
		c.printMap()
		return false
	case "status":
		c.printStatus()
		return false
	case "help":
		c.cmdHelp()
		return false
	case "move", "quit":
	default:
		c.printLine("I don't understand that. Type help for commands.")
		return false
	}

	result := c.Engine.Step(intent)
	if result.Exit {
		c.printSystem("Goodbye.")
		return true
	}
	c.printResult(result)
	if c.Trace {
		c.printTrace(result)
	}
	if result.TookTurn {
		c.printStatus()
	}
	return false
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /quit         — Exit game",
		"  /help         — Show this help",
		"  /state        — Debug: dump current state",
		"  /trace        — Toggle debug trace output",
		"",
		"Game commands:",
		"  h j k l y u b n       — Move or attack (vi keys)",
		"  north, ne, left, 8... — Move or attack",
		"  wait (z, .)           — Let the monsters act",
		"  look (map)            — Draw the map",
		"  status (hp)           — Show hit points",
		"  again (g)             — Repeat your last command",
		"  quit (q)              — Exit game",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	e := c.Engine
	s := e.State
	p := s.Player
	c.printSystem(fmt.Sprintf("Session: %s", e.SessionID))
	c.printSystem(fmt.Sprintf("Seed: %d", e.Seed))
	c.printSystem(fmt.Sprintf("Turn: %d", s.TurnCount))
	c.printSystem(fmt.Sprintf("Mode: %s", modeName(s.Mode)))
	c.printSystem(fmt.Sprintf("Player: (%d,%d)", p.X, p.Y))
	c.printSystem(fmt.Sprintf("Rooms: %d", len(s.Rooms)))
	alive := 0
	for _, ent := range state.Living(s) {
		if ent != p {
			alive++
		}
	}
	c.printSystem(fmt.Sprintf("Monsters alive: %d", alive))
	c.printSystem(fmt.Sprintf("Kills: %d", e.Kills))
}

func (c *CLI) printTrace(result types.Result) {
	if len(result.Events) == 0 {
		return
	}
	c.printSystem(fmt.Sprintf("[trace] Events: %d", len(result.Events)))
	for _, e := range result.Events {
		var fields []string
		for _, k := range slices.Sorted(maps.Keys(e.Data)) {
			fields = append(fields, fmt.Sprintf("%s=%v", k, e.Data[k]))
		}
		c.printSystem(fmt.Sprintf("[trace]   %s %s", e.Type, strings.Join(fields, " ")))
	}
}

func (c *CLI) printMap() {
	g := c.Engine.State.Grid
	m := newASCIIMap(g.Width, g.Height)
	c.Engine.Render(m)
	for _, line := range m.Lines() {
		c.printLine(line)
	}
}

func (c *CLI) printStatus() {
	st := c.Engine.Status()
	c.printLine(fmt.Sprintf("HP: %d/%d", st.HP, st.MaxHP))
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}

func modeName(m types.Mode) string {
	if m == types.ModeDead {
		return "dead"
	}
	return "playing"
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Map palette: lit cells are warm, remembered cells are blue.
var (
	colorDarkWall    = lipgloss.Color("#000064")
	colorLightWall   = lipgloss.Color("#826e32")
	colorDarkGround  = lipgloss.Color("#323296")
	colorLightGround = lipgloss.Color("#c8b432")
)

// entityColors maps color categories to terminal colors. Unknown names draw
// as white.
var entityColors = map[string]lipgloss.Color{
	"white":             "#ffffff",
	"black":             "#000000",
	"dark_red":          "#bf0000",
	"red":               "#ff0000",
	"light_red":         "#ff7373",
	"yellow":            "#ffff00",
	"light_yellow":      "#ffff73",
	"green":             "#00ff00",
	"desaturated_green": "#3f7f3f",
	"light_green":       "#73ff73",
	"blue":              "#0000ff",
	"light_blue":        "#7373ff",
	"violet":            "#7f00ff",
	"dark_violet":       "#5f00bf",
	"orange":            "#ff7f00",
	"grey":              "#7f7f7f",
}

func entityColor(name string) lipgloss.Color {
	if c, ok := entityColors[name]; ok {
		return c
	}
	return entityColors["white"]
}

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleStatusDead = styleStatusBar.
			Foreground(lipgloss.Color("196"))

	styleMessage = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleCombat = lipgloss.NewStyle().
			Foreground(lipgloss.Color("215"))

	styleDeath = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of a log line for styling.
type lineKind int

const (
	kindMessage lineKind = iota
	kindCombat
	kindDeath
	kindSystem
	kindTrace
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasSuffix(line, " is dead!"),
		line == "You died!",
		line == "You are dead.":
		return kindDeath
	case strings.Contains(line, " attacks "):
		return kindCombat
	default:
		return kindMessage
	}
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindCombat:
		return styleCombat.Render(line)
	case kindDeath:
		return styleDeath.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	default:
		return styleMessage.Render(line)
	}
}

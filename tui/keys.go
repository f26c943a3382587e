package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/delver/engine/parser"
)

// keyMap holds every binding the TUI reacts to.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	UpLeft    key.Binding
	UpRight   key.Binding
	DownLeft  key.Binding
	DownRight key.Binding
	Wait      key.Binding
	Help      key.Binding
	Trace     key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k", "8"), key.WithHelp("↑/k", "north")),
		Down:      key.NewBinding(key.WithKeys("down", "j", "2"), key.WithHelp("↓/j", "south")),
		Left:      key.NewBinding(key.WithKeys("left", "h", "4"), key.WithHelp("←/h", "west")),
		Right:     key.NewBinding(key.WithKeys("right", "l", "6"), key.WithHelp("→/l", "east")),
		UpLeft:    key.NewBinding(key.WithKeys("y", "7"), key.WithHelp("y", "northwest")),
		UpRight:   key.NewBinding(key.WithKeys("u", "9"), key.WithHelp("u", "northeast")),
		DownLeft:  key.NewBinding(key.WithKeys("b", "1"), key.WithHelp("b", "southwest")),
		DownRight: key.NewBinding(key.WithKeys("n", "3"), key.WithHelp("n", "southeast")),
		Wait:      key.NewBinding(key.WithKeys(".", "z", "5"), key.WithHelp("./z", "wait")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Trace:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "trace")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "older messages")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "newer messages")),
		Quit:      key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Wait, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.UpLeft, k.UpRight, k.DownLeft, k.DownRight},
		{k.Wait, k.Trace, k.PageUp, k.PageDown},
		{k.Help, k.Quit},
	}
}

// step returns the movement bound to msg, if any. Wait is a zero step.
func (k keyMap) step(msg tea.KeyMsg) (parser.Delta, bool) {
	moves := []struct {
		binding key.Binding
		delta   parser.Delta
	}{
		{k.Up, parser.Delta{DX: 0, DY: -1}},
		{k.Down, parser.Delta{DX: 0, DY: 1}},
		{k.Left, parser.Delta{DX: -1, DY: 0}},
		{k.Right, parser.Delta{DX: 1, DY: 0}},
		{k.UpLeft, parser.Delta{DX: -1, DY: -1}},
		{k.UpRight, parser.Delta{DX: 1, DY: -1}},
		{k.DownLeft, parser.Delta{DX: -1, DY: 1}},
		{k.DownRight, parser.Delta{DX: 1, DY: 1}},
		{k.Wait, parser.Delta{}},
	}
	for _, mv := range moves {
		if key.Matches(msg, mv.binding) {
			return mv.delta, true
		}
	}
	return parser.Delta{}, false
}

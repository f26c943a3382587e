// Package tui provides a Bubble Tea terminal UI for the dungeon.
package tui

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/delver/engine"
	"github.com/nathoo/delver/engine/parser"
	"github.com/nathoo/delver/types"
)

// logSize bounds the message log.
const logSize = 200

// minLogHeight keeps a few message lines on screen in small terminals.
const minLogHeight = 3

// Model is the Bubble Tea model for the dungeon TUI.
type Model struct {
	engine *engine.Engine

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	log      *MessageLog

	width    int
	height   int
	ready    bool
	trace    bool
	quitting bool
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine) Model {
	m := Model{
		engine: eng,
		keys:   defaultKeyMap(),
		help:   help.New(),
		log:    NewMessageLog(logSize),
	}
	m.log.Push("You descend into the dungeon. Press ? for help.", kindMessage)
	return m
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine) error {
	p := tea.NewProgram(New(eng), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model. Everything is drawn from the engine state.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages (key presses, window resize).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		if !m.ready {
			m.viewport = viewport.New(m.width, m.logHeight())
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		}
		m.resize()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil

		case key.Matches(msg, m.keys.Trace):
			m.trace = !m.trace
			if m.trace {
				m.log.Push("[Trace output enabled.]", kindSystem)
			} else {
				m.log.Push("[Trace output disabled.]", kindSystem)
			}
			m.refreshViewport()
			return m, nil

		case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

		if d, ok := m.keys.step(msg); ok {
			m.step(parser.Move(d.DX, d.DY))
		}
	}

	return m, nil
}

// step feeds one intent to the engine and logs what happened.
func (m *Model) step(intent types.Intent) {
	result := m.engine.Step(intent)
	for _, line := range result.Output {
		m.log.Push(line, classifyLine(line))
	}
	if m.trace {
		for _, line := range formatTrace(result) {
			m.log.Push(line, kindTrace)
		}
	}
	m.refreshViewport()
}

// logHeight is what is left for the message log below the map, the status
// bar and the help.
func (m Model) logHeight() int {
	used := m.engine.State.Grid.Height + 1 + lineCount(m.help.View(m.keys))
	return max(minLogHeight, m.height-used)
}

func (m *Model) resize() {
	if !m.ready {
		return
	}
	m.viewport.Width = m.width
	m.viewport.Height = m.logHeight()
	m.refreshViewport()
}

// refreshViewport re-wraps and re-styles the log at the current width.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := max(10, m.width)
	var styled []string
	for i, line := range m.log.Lines() {
		styled = append(styled, renderLineKind(wordWrap(line, width), m.log.entries[i].kind))
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)

		if i == 0 {
			result.WriteString(word)
			lineLen = wLen
			continue
		}

		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}

// View renders the full TUI layout: map + status bar + message log + help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	g := m.engine.State.Grid
	mv := newMapView(g.Width, g.Height)
	m.engine.Render(mv)

	return mv.String() + "\n" +
		m.renderStatusBar() + "\n" +
		m.viewport.View() + "\n" +
		m.help.View(m.keys)
}

func formatTrace(result types.Result) []string {
	if len(result.Events) == 0 {
		return nil
	}
	lines := []string{fmt.Sprintf("[trace] Events: %d", len(result.Events))}
	for _, e := range result.Events {
		var fields []string
		for _, k := range slices.Sorted(maps.Keys(e.Data)) {
			fields = append(fields, fmt.Sprintf("%s=%v", k, e.Data[k]))
		}
		lines = append(lines, fmt.Sprintf("[trace]   %s %s", e.Type, strings.Join(fields, " ")))
	}
	return lines
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// viewportKeyMap returns a viewport keymap with only paging enabled; the
// arrow keys move the player.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithDisabled()),
		HalfPageUp:   key.NewBinding(key.WithDisabled()),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nathoo/delver/engine"
	"github.com/nathoo/delver/engine/dungeon"
	"github.com/nathoo/delver/engine/state"
	"github.com/nathoo/delver/types"
)

type allVisible struct{}

func (allVisible) IsVisible(x, y int) bool { return true }
func (allVisible) Recompute(x, y, r int)   {}

// testEngine builds a 7x5 level with one open room, the player at (3, 2)
// and a troll at (5, 2).
func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	defs := state.DefaultDefs()
	g := dungeon.NewGrid(7, 5)
	room := dungeon.NewRoom(0, 0, 6, 4)
	g.CarveRoom(room)
	lvl := &dungeon.Level{
		Grid:        g,
		Rooms:       []dungeon.Room{room},
		PlayerSpawn: types.Point{X: 3, Y: 2},
		Monsters:    []dungeon.Spawn{{X: 5, Y: 2, Monster: defs.Monsters[1]}},
	}
	return &engine.Engine{
		Defs:  defs,
		State: state.NewState(defs, lvl),
		Level: lvl,
		Vis:   allVisible{},
		Log:   zap.NewNop(),
		Seed:  42,
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msgs through Update in order.
func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func sized(t *testing.T) Model {
	t.Helper()
	m, _ := send(New(testEngine(t)), tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func TestModel_MovementKeys(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		dx, dy int
	}{
		{"k", runes("k"), 0, -1},
		{"j", runes("j"), 0, 1},
		{"h", runes("h"), -1, 0},
		{"y", runes("y"), -1, -1},
		{"u", runes("u"), 1, -1},
		{"b", runes("b"), -1, 1},
		{"n", runes("n"), 1, 1},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, 0, -1},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, -1, 0},
		{"keypad 1", runes("1"), -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := send(sized(t), tt.msg)
			p := m.engine.State.Player
			if p.X != 3+tt.dx || p.Y != 2+tt.dy {
				t.Errorf("expected player at (%d,%d), got (%d,%d)", 3+tt.dx, 2+tt.dy, p.X, p.Y)
			}
			if m.engine.State.TurnCount != 1 {
				t.Errorf("expected one turn, got %d", m.engine.State.TurnCount)
			}
		})
	}
}

func TestModel_WaitAndFightLogged(t *testing.T) {
	m, _ := send(sized(t), runes("l"), runes("."))

	lines := m.log.Lines()
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "Troll attacks player for 2 hit points. (x2)") {
		t.Errorf("expected collapsed troll attacks, got:\n%s", joined)
	}
	if m.engine.State.Player.Combat.HP != 26 {
		t.Errorf("expected hp 26, got %d", m.engine.State.Player.Combat.HP)
	}
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m, cmd := send(sized(t), msg)
		if !m.quitting || cmd == nil {
			t.Errorf("%s should quit", msg)
		}
		if m.View() != "" {
			t.Errorf("%s: expected empty view after quitting", msg)
		}
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := sized(t)
	short := m.viewport.Height

	m, _ = send(m, runes("?"))
	if !m.help.ShowAll {
		t.Fatal("expected full help")
	}
	if !strings.Contains(m.View(), "northwest") {
		t.Error("full help should list the diagonal keys")
	}
	if m.viewport.Height > short {
		t.Error("the log should not grow when help takes more room")
	}

	m, _ = send(m, runes("?"))
	if m.help.ShowAll {
		t.Error("expected short help after second toggle")
	}
	if m.engine.State.TurnCount != 0 {
		t.Error("help should not take a turn")
	}
}

func TestModel_Trace(t *testing.T) {
	m, _ := send(sized(t), runes("t"), runes("j"))
	if !m.trace {
		t.Fatal("expected trace on")
	}
	joined := strings.Join(m.log.Lines(), "\n")
	if !strings.Contains(joined, "[Trace output enabled.]") {
		t.Error("expected trace toggle message")
	}
	if !strings.Contains(joined, "[trace]   move entity=player x=3 y=3") {
		t.Errorf("expected move trace, got:\n%s", joined)
	}
}

func TestModel_UnboundKeyIgnored(t *testing.T) {
	m, cmd := send(sized(t), runes("x"))
	if cmd != nil || m.engine.State.TurnCount != 0 {
		t.Error("unbound key should do nothing")
	}
}

func TestModel_ViewBeforeSize(t *testing.T) {
	m := New(testEngine(t))
	if m.View() != "Loading..." {
		t.Errorf("expected loading view, got %q", m.View())
	}
}

func TestModel_ViewLayout(t *testing.T) {
	m := sized(t)
	view := m.View()
	if !strings.Contains(view, "HP: 30/30") {
		t.Error("expected status bar in view")
	}
	if !strings.Contains(view, "You descend into the dungeon.") {
		t.Error("expected welcome message in view")
	}
	if !strings.Contains(view, "@") || !strings.Contains(view, "T") {
		t.Error("expected player and troll glyphs on the map")
	}
}

func TestStatusText(t *testing.T) {
	m := sized(t)
	left, right := m.statusText()
	if left != " HP: 30/30 | Turn 0" || right != "seed 42 " {
		t.Errorf("unexpected status %q / %q", left, right)
	}

	m.engine.TakeDamage(m.engine.State.Player, 100)
	left, _ = m.statusText()
	if !strings.HasSuffix(left, "| DEAD") {
		t.Errorf("expected dead marker, got %q", left)
	}
}

func TestMapView(t *testing.T) {
	v := newMapView(4, 1)
	v.DrawTile(0, 0, types.Tile{Blocked: true}, true)
	v.DrawTile(1, 0, types.Tile{}, true)
	v.DrawTile(2, 0, types.Tile{Blocked: true, Explored: true}, false)
	v.DrawTile(3, 0, types.Tile{}, false)
	v.DrawSprite(types.Sprite{X: 1, Y: 0, Glyph: 'Z', Color: "desaturated_green", Visible: true})
	v.DrawSprite(types.Sprite{X: 3, Y: 0, Glyph: 'T', Color: "dark_violet", Visible: false})

	want := []cell{
		{ch: ' ', bg: colorLightWall},
		{ch: 'Z', fg: entityColors["desaturated_green"], bg: colorLightGround},
		{ch: ' ', bg: colorDarkWall},
		{ch: ' '},
	}
	for i, c := range want {
		if v.cells[i] != c {
			t.Errorf("cell %d = %+v, want %+v", i, v.cells[i], c)
		}
	}
	if !strings.Contains(v.String(), "Z") {
		t.Error("rendered row should contain the sprite")
	}
}

func TestEntityColor_UnknownIsWhite(t *testing.T) {
	if entityColor("chartreuse") != entityColors["white"] {
		t.Error("unknown colors should fall back to white")
	}
	for _, name := range types.ColorNames {
		if _, ok := entityColors[name]; !ok {
			t.Errorf("color %q has no palette entry", name)
		}
	}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"Player attacks troll for 4 hit points.", kindCombat},
		{"Bat attacks player but it has no effect!", kindCombat},
		{"Troll is dead!", kindDeath},
		{"You died!", kindDeath},
		{"You are dead.", kindDeath},
		{"[Trace output enabled.]", kindSystem},
		{"[trace] Events: 2", kindTrace},
		{"You descend into the dungeon.", kindMessage},
		{"", kindMessage},
	}
	for _, tt := range tests {
		got := classifyLine(tt.line)
		if got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 80, "short"},
		{"hello world", 5, "hello\nworld"},
		{"Troll attacks player for 2 hit points.", 20,
			"Troll attacks player\nfor 2 hit points."},
		{"", 80, ""},
		{"a b c d e", 3, "a b\nc d\ne"},
	}
	for _, tt := range tests {
		got := wordWrap(tt.text, tt.width)
		if got != tt.want {
			t.Errorf("wordWrap(%q, %d) =\n  %q\nwant:\n  %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestMessageLog_CollapseRepeats(t *testing.T) {
	l := NewMessageLog(5)
	l.Push("Bat attacks player for 1 hit points.", kindCombat)
	l.Push("Bat attacks player for 1 hit points.", kindCombat)
	l.Push("Bat is dead!", kindDeath)
	l.Push("Bat attacks player for 1 hit points.", kindCombat)

	want := []string{
		"Bat attacks player for 1 hit points. (x2)",
		"Bat is dead!",
		"Bat attacks player for 1 hit points.",
	}
	got := l.Lines()
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMessageLog_Eviction(t *testing.T) {
	l := NewMessageLog(2)
	l.Push("a", kindMessage)
	l.Push("b", kindMessage)
	l.Push("c", kindMessage) // "a" evicted

	if l.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", l.Len())
	}
	if got := l.Lines(); got[0] != "b" || got[1] != "c" {
		t.Errorf("expected [b c], got %v", got)
	}
}

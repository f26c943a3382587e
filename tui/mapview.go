package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/delver/types"
)

// cell is one map position after rendering. Empty colors mean unset.
type cell struct {
	ch rune
	fg lipgloss.Color
	bg lipgloss.Color
}

// mapView is an engine.Presenter that collects colored cells.
type mapView struct {
	width, height int
	cells         []cell
}

func newMapView(width, height int) *mapView {
	cells := make([]cell, width*height)
	for i := range cells {
		cells[i].ch = ' '
	}
	return &mapView{width: width, height: height, cells: cells}
}

func (v *mapView) at(x, y int) *cell {
	return &v.cells[y*v.width+x]
}

// DrawTile colors the background. Never-seen tiles stay blank.
func (v *mapView) DrawTile(x, y int, t types.Tile, visible bool) {
	var bg lipgloss.Color
	switch {
	case visible && t.Blocked:
		bg = colorLightWall
	case visible:
		bg = colorLightGround
	case !t.Explored:
		return
	case t.Blocked:
		bg = colorDarkWall
	default:
		bg = colorDarkGround
	}
	v.at(x, y).bg = bg
}

// DrawSprite draws entities in view over their tile.
func (v *mapView) DrawSprite(s types.Sprite) {
	if !s.Visible {
		return
	}
	c := v.at(s.X, s.Y)
	c.ch = s.Glyph
	c.fg = entityColor(s.Color)
}

// String renders every row, styling runs of cells that share colors together.
func (v *mapView) String() string {
	rows := make([]string, v.height)
	for y := 0; y < v.height; y++ {
		var b strings.Builder
		row := v.cells[y*v.width : (y+1)*v.width]
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end].fg == row[start].fg && row[end].bg == row[start].bg {
				end++
			}
			b.WriteString(cellStyle(row[start]).Render(runesOf(row[start:end])))
			start = end
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

func cellStyle(c cell) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c.bg != "" {
		s = s.Background(c.bg)
	}
	if c.fg != "" {
		s = s.Foreground(c.fg)
	}
	return s
}

func runesOf(cells []cell) string {
	rs := make([]rune, len(cells))
	for i, c := range cells {
		rs[i] = c.ch
	}
	return string(rs)
}

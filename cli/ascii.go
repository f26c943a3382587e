package cli

import (
	"strings"

	"github.com/nathoo/delver/types"
)

// Map characters for the plain front end.
const (
	wallChar   = '#'
	floorChar  = '.'
	unseenChar = ' '
)

// asciiMap is an engine.Presenter that draws into a rune buffer.
type asciiMap struct {
	width int
	cells []rune
}

func newASCIIMap(width, height int) *asciiMap {
	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = unseenChar
	}
	return &asciiMap{width: width, cells: cells}
}

// DrawTile shows a tile that is visible now or was explored before.
func (m *asciiMap) DrawTile(x, y int, t types.Tile, visible bool) {
	if !visible && !t.Explored {
		return
	}
	ch := floorChar
	if t.Blocked {
		ch = wallChar
	}
	m.cells[y*m.width+x] = ch
}

// DrawSprite shows entities in view only.
func (m *asciiMap) DrawSprite(s types.Sprite) {
	if !s.Visible {
		return
	}
	m.cells[s.Y*m.width+s.X] = s.Glyph
}

// Lines returns the map rows with trailing blanks trimmed.
func (m *asciiMap) Lines() []string {
	var lines []string
	for y := 0; y*m.width < len(m.cells); y++ {
		row := string(m.cells[y*m.width : (y+1)*m.width])
		lines = append(lines, strings.TrimRight(row, string(unseenChar)))
	}
	return lines
}

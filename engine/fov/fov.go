// Package fov computes the player's field of view with recursive
// shadowcasting. Opaque cells that are lit are themselves visible, so walls
// bounding a room show up.
package fov

import "github.com/nathoo/delver/engine/dungeon"

// octant transform matrices (xx, xy, yx, yy).
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// Map holds the visibility of every cell of one grid.
type Map struct {
	grid    *dungeon.Grid
	visible []bool
}

// New returns a Map where nothing is visible yet.
func New(g *dungeon.Grid) *Map {
	return &Map{grid: g, visible: make([]bool, g.Width*g.Height)}
}

// IsVisible reports whether (x, y) was lit by the last Recompute.
// Out of bounds is never visible.
func (m *Map) IsVisible(x, y int) bool {
	if !m.grid.InBounds(x, y) {
		return false
	}
	return m.visible[y*m.grid.Width+x]
}

// Recompute clears visibility and casts light from (ox, oy) out to radius.
// A radius of 0 or less is unlimited.
func (m *Map) Recompute(ox, oy, radius int) {
	if radius <= 0 {
		radius = max(m.grid.Width, m.grid.Height)
	}
	for i := range m.visible {
		m.visible[i] = false
	}
	if !m.grid.InBounds(ox, oy) {
		return
	}
	m.light(ox, oy)
	for _, o := range octants {
		m.castLight(ox, oy, 1, 1.0, 0.0, radius, o[0], o[1], o[2], o[3])
	}
}

func (m *Map) light(x, y int) {
	if m.grid.InBounds(x, y) {
		m.visible[y*m.grid.Width+x] = true
	}
}

// castLight scans one octant row by row. Row j sits at dy = -j and dx sweeps
// from -j to 0; slopes are measured at cell edges.
func (m *Map) castLight(cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := radius * radius
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if dx*dx+dy*dy <= radiusSq {
				m.light(wx, wy)
			}

			opaque := m.grid.BlocksSight(wx, wy)

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				m.castLight(cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

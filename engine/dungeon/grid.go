package dungeon

import "github.com/nathoo/delver/types"

// Grid is the tile map of one level. Its size never changes.
type Grid struct {
	Width, Height int
	tiles         []types.Tile
}

// NewGrid returns a grid where every tile is a wall.
func NewGrid(width, height int) *Grid {
	tiles := make([]types.Tile, width*height)
	for i := range tiles {
		tiles[i] = types.Tile{Blocked: true, BlocksSight: true}
	}
	return &Grid{Width: width, Height: height, tiles: tiles}
}

// InBounds reports whether (x, y) is inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (g *Grid) At(x, y int) *types.Tile {
	return &g.tiles[y*g.Width+x]
}

// Blocked reports whether the tile stops movement. Out of bounds is blocked.
func (g *Grid) Blocked(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.At(x, y).Blocked
}

// BlocksSight reports whether the tile is opaque. Out of bounds is opaque.
func (g *Grid) BlocksSight(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.At(x, y).BlocksSight
}

// Explored reports whether the player has ever seen (x, y).
func (g *Grid) Explored(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.At(x, y).Explored
}

// MarkExplored records that (x, y) has been seen. Out of bounds is ignored.
func (g *Grid) MarkExplored(x, y int) {
	if g.InBounds(x, y) {
		g.At(x, y).Explored = true
	}
}

// carve makes a single cell floor. Cells outside the grid are skipped.
func (g *Grid) carve(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	t := g.At(x, y)
	t.Blocked = false
	t.BlocksSight = false
}

// CarveRoom opens the interior of r, leaving its outermost cells as walls.
func (g *Grid) CarveRoom(r Room) {
	for x := r.X1 + 1; x < r.X2; x++ {
		for y := r.Y1 + 1; y < r.Y2; y++ {
			g.carve(x, y)
		}
	}
}

// CarveHTunnel opens row y between x1 and x2 inclusive, in either order.
func (g *Grid) CarveHTunnel(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		g.carve(x, y)
	}
}

// CarveVTunnel opens column x between y1 and y2 inclusive, in either order.
func (g *Grid) CarveVTunnel(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		g.carve(x, y)
	}
}

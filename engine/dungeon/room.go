package dungeon

import "github.com/nathoo/delver/types"

// Room is an axis-aligned rectangle on the map. X2 and Y2 are one past the
// last interior column and row; the cells on all four edges stay walls.
type Room struct {
	X1, Y1, X2, Y2 int
}

// NewRoom builds a room from its top-left corner and size.
func NewRoom(x, y, w, h int) Room {
	return Room{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center cell of the room.
func (r Room) Center() types.Point {
	return types.Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Intersects reports whether r overlaps other. Edges are inclusive, so rooms
// that only touch count as intersecting and always keep a wall between them.
func (r Room) Intersects(other Room) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains reports whether (x, y) lies in the room's carved interior.
func (r Room) Contains(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
}

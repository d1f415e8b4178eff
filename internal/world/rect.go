package world

// Rect is a rectangular room region in map coordinates, stored as its
// two corners with X1 < X2 and Y1 < Y2.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect creates a rectangle from a top-left corner and dimensions.
// The caller guarantees w > 0, h > 0 and that the result fits on the map.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the rectangle's midpoint. Integer division truncates,
// so odd-sized rooms bias toward the lower corner; corridor endpoints
// depend on that bias, keep it.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects returns true if this rectangle overlaps with another.
// The comparison is inclusive on both axes, so rectangles that merely
// share an edge or corner count as intersecting. That guarantees at
// least one wall tile between any two accepted rooms.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

package game

// Vec2 is a 2D point or vector in world pixels. Positions keep sub-pixel
// precision so movement stays smooth at any frame rate.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle with a float origin and size.
type Rect struct {
	X, Y, W, H float64
}

// NewRect builds a rect from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the rect's center point.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports whether two rects intersect. Touching edges do not count
// as overlap, so a grounded player does not collide with its floor.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Inflate grows the rect by dx and dy in each direction, keeping the center.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W + 2*dx, H: r.H + 2*dy}
}

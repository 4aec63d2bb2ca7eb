package game

import "math"

// Static geometry resolution is axis-separated: the caller applies horizontal
// movement and resolves X, then applies vertical movement and resolves Y.
// Running the two passes in that order keeps a moving rect from tunneling
// into tile corners.

// ResolveHorizontal pushes r out of every overlapping collider along the x
// axis only. dx is the horizontal movement applied this frame; its sign picks
// the push-out side, falling back to relative centers when dx is zero.
func ResolveHorizontal(r Rect, dx float64, colliders []Rect) Rect {
	for _, c := range colliders {
		if !r.Overlaps(c) {
			continue
		}
		switch {
		case dx > 0:
			r.X = c.X - r.W
		case dx < 0:
			r.X = c.Right()
		default:
			if r.Center().X < c.Center().X {
				r.X = c.X - r.W
			} else {
				r.X = c.Right()
			}
		}
	}
	return r
}

// ResolveVertical pushes r out of every overlapping collider along the y axis
// only. grounded is true iff a downward-moving overlap was resolved, ceiling
// likewise for upward movement.
func ResolveVertical(r Rect, dy float64, colliders []Rect) (out Rect, grounded, ceiling bool) {
	for _, c := range colliders {
		if !r.Overlaps(c) {
			continue
		}
		switch {
		case dy > 0:
			r.Y = c.Y - r.H
			grounded = true
		case dy < 0:
			r.Y = c.Bottom()
			ceiling = true
		default:
			if r.Center().Y < c.Center().Y {
				r.Y = c.Y - r.H
				grounded = true
			} else {
				r.Y = c.Bottom()
				ceiling = true
			}
		}
	}
	return r, grounded, ceiling
}

// MasksOverlap is the combat collision test: two entities collide only where
// their non-transparent pixels overlap, not merely their bounding rects. The
// bounding-rect check runs first as a cheap reject.
func MasksOverlap(a, b Entity) bool {
	ra, rb := a.Rect(), b.Rect()
	if !ra.Overlaps(rb) {
		return false
	}
	fa, fb := a.Frame(), b.Frame()
	if fa == nil || fb == nil || fa.Mask == nil || fb.Mask == nil {
		return false
	}
	dx := int(math.Round(rb.X - ra.X))
	dy := int(math.Round(rb.Y - ra.Y))
	return fa.Mask.Overlaps(fb.Mask, dx, dy)
}

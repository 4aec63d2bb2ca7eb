package assets

import "image"

// maskAlphaThreshold is the minimum alpha for a pixel to count as solid.
const maskAlphaThreshold = 128

// Mask is a per-pixel opacity bitmap used for accurate combat collision
// checks. Two sprites only collide where their solid pixels overlap, not
// merely their bounding rectangles.
type Mask struct {
	W, H int
	bits []uint64
}

// NewMask creates an empty (fully transparent) mask.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	words := (w*h + 63) / 64
	return &Mask{W: w, H: h, bits: make([]uint64, words)}
}

// MaskFromImage builds a mask from an image's alpha channel.
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 >= maskAlphaThreshold {
				m.Set(x, y)
			}
		}
	}
	return m
}

// Set marks the pixel at (x, y) as solid. Out-of-range coordinates are ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return
	}
	i := y*m.W + x
	m.bits[i/64] |= 1 << (i % 64)
}

// At reports whether the pixel at (x, y) is solid. Out-of-range coordinates
// are transparent.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return false
	}
	i := y*m.W + x
	return m.bits[i/64]&(1<<(i%64)) != 0
}

// Overlaps reports whether any solid pixel of o, offset by (dx, dy) relative
// to m's origin, coincides with a solid pixel of m.
func (m *Mask) Overlaps(o *Mask, dx, dy int) bool {
	// Intersection of the two pixel rectangles in m's coordinate space.
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.W, dx+o.W)
	y1 := min(m.H, dy+o.H)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.At(x, y) && o.At(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}

// Flipped returns a horizontally mirrored copy of the mask.
func (m *Mask) Flipped() *Mask {
	f := NewMask(m.W, m.H)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.At(x, y) {
				f.Set(m.W-1-x, y)
			}
		}
	}
	return f
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

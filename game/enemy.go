package game

import (
	"github.com/YashmitSagari123/python-platformer/assets"
)

const (
	wormAnimFPS = 4.0
	beeAnimFPS  = 8.0
)

// Worm is the ground-crawling enemy. It patrols the horizontal band derived
// from its spawn rectangle, reversing exactly at the band edges, and never
// leaves the band. A destroyed worm schedules one respawn at the same band.
type Worm struct {
	pos   Vec2
	band  Rect
	speed float64
	dir   float64 // +1 right, -1 left

	framesLeft  []*assets.Sprite
	framesRight []*assets.Sprite
	animTime    float64

	destroyed bool
	onDestroy func(band Rect)
}

// NewWorm places a worm at the left edge of its band, resting on the band
// bottom. onDestroy receives the band so the owner can schedule a respawn.
func NewWorm(band Rect, framesLeft, framesRight []*assets.Sprite, speed float64, onDestroy func(Rect)) *Worm {
	h := framesLeft[0].Height
	return &Worm{
		pos:         Vec2{X: band.X, Y: band.Bottom() - h},
		band:        band,
		speed:       speed,
		dir:         1,
		framesLeft:  framesLeft,
		framesRight: framesRight,
		onDestroy:   onDestroy,
	}
}

// Update patrols the band, reversing at its edges.
func (w *Worm) Update(dt float64) {
	w.animTime += dt
	w.pos.X += w.dir * w.speed * dt

	width := w.framesLeft[0].Width
	if w.pos.X+width >= w.band.Right() {
		w.pos.X = w.band.Right() - width
		w.dir = -1
	}
	if w.pos.X <= w.band.X {
		w.pos.X = w.band.X
		w.dir = 1
	}
}

// Frame returns the crawl frame for the current direction.
func (w *Worm) Frame() *assets.Sprite {
	frames := w.framesLeft
	if w.dir > 0 {
		frames = w.framesRight
	}
	return frames[int(w.animTime*wormAnimFPS)%len(frames)]
}

// Rect returns the worm's bounding rectangle.
func (w *Worm) Rect() Rect {
	return NewRect(w.pos.X, w.pos.Y, w.framesLeft[0].Width, w.framesLeft[0].Height)
}

// Band returns the patrol band.
func (w *Worm) Band() Rect { return w.band }

// Destroy marks the worm dead and notifies the owner once. Destroying an
// already-destroyed worm has no effect.
func (w *Worm) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	if w.onDestroy != nil {
		w.onDestroy(w.band)
	}
}

// Destroyed reports whether Destroy has run.
func (w *Worm) Destroyed() bool { return w.destroyed }

// Bee is the flying enemy. It spawns beyond the right edge of the level and
// moves leftward in a straight line at a fixed per-spawn speed.
type Bee struct {
	pos   Vec2
	speed float64

	frames   []*assets.Sprite
	animTime float64

	destroyed bool
	onDestroy func()
}

// NewBee creates a bee at a spawn position moving left at speed px/s.
func NewBee(pos Vec2, frames []*assets.Sprite, speed float64, onDestroy func()) *Bee {
	return &Bee{pos: pos, speed: speed, frames: frames, onDestroy: onDestroy}
}

// Update moves the bee leftward.
func (b *Bee) Update(dt float64) {
	b.animTime += dt
	b.pos.X -= b.speed * dt
}

// Frame returns the current wing-flap frame.
func (b *Bee) Frame() *assets.Sprite {
	return b.frames[int(b.animTime*beeAnimFPS)%len(b.frames)]
}

// Rect returns the bee's bounding rectangle.
func (b *Bee) Rect() Rect {
	return NewRect(b.pos.X, b.pos.Y, b.frames[0].Width, b.frames[0].Height)
}

// OffscreenLeft reports whether the bee has flown past x = -margin and can
// be culled.
func (b *Bee) OffscreenLeft(margin float64) bool {
	return b.Rect().Right() < -margin
}

// Destroy marks the bee dead and notifies the owner once.
func (b *Bee) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	if b.onDestroy != nil {
		b.onDestroy()
	}
}

// Destroyed reports whether Destroy has run.
func (b *Bee) Destroyed() bool { return b.destroyed }

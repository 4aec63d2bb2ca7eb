package game

import (
	"github.com/YashmitSagari123/python-platformer/assets"
)

// Bullet travels horizontally at constant speed and despawns after covering
// its maximum range, a travel distance from spawn rather than a wall-clock
// lifetime.
type Bullet struct {
	pos      Vec2
	dir      float64
	speed    float64
	traveled float64
	maxRange float64

	sprite     *assets.Sprite // facing right
	spriteLeft *assets.Sprite
}

// NewBullet spawns a bullet at the muzzle point: its leading edge starts at
// the muzzle, its vertical center on the muzzle's y.
func NewBullet(muzzle Vec2, dir float64, right, left *assets.Sprite, speed, maxRange float64) *Bullet {
	x := muzzle.X
	if dir < 0 {
		x = muzzle.X - right.Width
	}
	return &Bullet{
		pos:        Vec2{X: x, Y: muzzle.Y - right.Height/2},
		dir:        dir,
		speed:      speed,
		maxRange:   maxRange,
		sprite:     right,
		spriteLeft: left,
	}
}

// Update advances the bullet and accumulates traveled distance.
func (b *Bullet) Update(dt float64) {
	d := b.speed * dt
	b.pos.X += b.dir * d
	b.traveled += d
}

// Expired reports whether the bullet has exceeded its maximum range.
func (b *Bullet) Expired() bool {
	return b.traveled > b.maxRange
}

// Frame returns the sprite for the travel direction.
func (b *Bullet) Frame() *assets.Sprite {
	if b.dir < 0 {
		return b.spriteLeft
	}
	return b.sprite
}

// Rect returns the bullet's bounding rectangle.
func (b *Bullet) Rect() Rect {
	return NewRect(b.pos.X, b.pos.Y, b.sprite.Width, b.sprite.Height)
}

// MuzzleFlash is the short-lived visual effect at the gun barrel. It stays
// attached to its owner's muzzle for its whole lifetime rather than being
// placed once, so it follows a moving player.
type MuzzleFlash struct {
	owner     *Player
	remaining float64

	sprite     *assets.Sprite
	spriteLeft *assets.Sprite
}

// NewMuzzleFlash attaches a flash to the player for lifetime seconds.
func NewMuzzleFlash(owner *Player, right, left *assets.Sprite, lifetime float64) *MuzzleFlash {
	return &MuzzleFlash{owner: owner, remaining: lifetime, sprite: right, spriteLeft: left}
}

// Update counts the lifetime down.
func (f *MuzzleFlash) Update(dt float64) {
	f.remaining -= dt
}

// Expired reports whether the flash's lifetime has elapsed.
func (f *MuzzleFlash) Expired() bool {
	return f.remaining <= 0
}

// Frame returns the flash sprite in the owner's facing.
func (f *MuzzleFlash) Frame() *assets.Sprite {
	if f.owner.Facing() < 0 {
		return f.spriteLeft
	}
	return f.sprite
}

// Rect centers the flash on the owner's current muzzle point.
func (f *MuzzleFlash) Rect() Rect {
	m := f.owner.Muzzle()
	return NewRect(m.X-f.sprite.Width/2, m.Y-f.sprite.Height/2, f.sprite.Width, f.sprite.Height)
}

package game

import (
	"github.com/YashmitSagari123/python-platformer/assets"
)

// Entity is implemented by everything that lives in a Group: the player,
// enemies, bullets, visual effects and static tiles. An entity reads only its
// own state during Update; cross-entity interactions happen in the collision
// pass after all movement is applied.
type Entity interface {
	// Update advances the entity by dt seconds.
	Update(dt float64)

	// Frame returns the current visual frame.
	Frame() *assets.Sprite

	// Rect returns the bounding rectangle derived from the position and the
	// current frame.
	Rect() Rect
}

// Enemy is an entity that can be destroyed by a bullet. Destroy must be
// idempotent: destroying an already-destroyed enemy has no effect.
type Enemy interface {
	Entity
	Destroy()
}

// StaticSprite is a non-moving entity: a collision tile or a decoration.
type StaticSprite struct {
	pos    Vec2
	sprite *assets.Sprite
}

// NewStaticSprite places a sprite at a fixed position.
func NewStaticSprite(pos Vec2, sprite *assets.Sprite) *StaticSprite {
	return &StaticSprite{pos: pos, sprite: sprite}
}

// Update is a no-op; static geometry never moves.
func (s *StaticSprite) Update(dt float64) {}

// Frame returns the tile image.
func (s *StaticSprite) Frame() *assets.Sprite { return s.sprite }

// Rect returns the tile's bounding rectangle.
func (s *StaticSprite) Rect() Rect {
	return NewRect(s.pos.X, s.pos.Y, s.sprite.Width, s.sprite.Height)
}

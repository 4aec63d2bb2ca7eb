package game

import (
	"github.com/YashmitSagari123/python-platformer/assets"
)

// walkAnimFPS is the rate the two walk frames alternate at.
const walkAnimFPS = 6.0

// Player is the controllable character. Horizontal and vertical movement
// resolve against static geometry in two separate passes each frame;
// grounded is true only on frames where a downward collision resolved.
type Player struct {
	pos      Vec2 // top-left corner
	velY     float64
	facing   float64 // +1 right, -1 left
	grounded bool
	moving   bool
	animTime float64

	frames    *assets.CharacterFrames
	colliders []Rect
	input     InputProvider
	fire      func(muzzle Vec2, dir float64)
	shootTmr  *Timer

	cfg Config
}

// NewPlayer creates the player at a spawn position. fire is invoked with the
// muzzle position and facing direction whenever a shot is released.
func NewPlayer(pos Vec2, frames *assets.CharacterFrames, colliders []Rect, input InputProvider, fire func(Vec2, float64), cfg Config) *Player {
	return &Player{
		pos:       pos,
		facing:    1,
		frames:    frames,
		colliders: colliders,
		input:     input,
		fire:      fire,
		shootTmr:  NewTimer(cfg.ShootDelay, nil, false, false),
		cfg:       cfg,
	}
}

// Update applies input, physics and collision resolution for one frame.
func (p *Player) Update(dt float64) {
	moveX := p.input.MoveX()
	if moveX > 1 {
		moveX = 1
	} else if moveX < -1 {
		moveX = -1
	}
	p.moving = moveX != 0
	if moveX > 0 {
		p.facing = 1
	} else if moveX < 0 {
		p.facing = -1
	}

	// Horizontal pass.
	dx := moveX * p.cfg.MoveSpeed * dt
	p.pos.X += dx
	r := ResolveHorizontal(p.Rect(), dx, p.colliders)
	p.pos.X = r.X

	// Vertical pass: jump impulse, gravity, then resolution.
	if p.input.Jump() && p.grounded {
		p.velY = p.cfg.JumpSpeed
	}
	p.velY += p.cfg.Gravity * dt
	dy := p.velY * dt
	p.pos.Y += dy
	r, grounded, ceiling := ResolveVertical(p.Rect(), dy, p.colliders)
	p.pos.Y = r.Y
	p.grounded = grounded
	if grounded || ceiling {
		p.velY = 0
	}

	// Shooting.
	p.shootTmr.Update(dt)
	if p.input.Shoot() && !p.shootTmr.Active() && p.fire != nil {
		p.fire(p.Muzzle(), p.facing)
		p.shootTmr.Start()
	}

	p.animTime += dt
}

// Frame returns idle, alternating walk, or jump depending on state, in the
// current facing.
func (p *Player) Frame() *assets.Sprite {
	f := p.frames
	switch {
	case !p.grounded:
		if p.facing < 0 {
			return f.JumpLeft
		}
		return f.Jump
	case p.moving:
		walkA := int(p.animTime*walkAnimFPS)%2 == 0
		if p.facing < 0 {
			if walkA {
				return f.WalkALeft
			}
			return f.WalkBLeft
		}
		if walkA {
			return f.WalkA
		}
		return f.WalkB
	default:
		if p.facing < 0 {
			return f.IdleLeft
		}
		return f.Idle
	}
}

// Rect returns the bounding rectangle. All character frames share one size,
// so the rect is stable across animation.
func (p *Player) Rect() Rect {
	return NewRect(p.pos.X, p.pos.Y, p.frames.Idle.Width, p.frames.Idle.Height)
}

// Muzzle returns the point bullets and the muzzle flash spawn from, offset
// from the player center in the facing direction.
func (p *Player) Muzzle() Vec2 {
	c := p.Rect().Center()
	return Vec2{X: c.X + p.facing*p.cfg.MuzzleOffset, Y: c.Y}
}

// Facing returns the current facing direction, +1 right or -1 left.
func (p *Player) Facing() float64 { return p.facing }

// Grounded reports whether the player stood on solid geometry this frame.
func (p *Player) Grounded() bool { return p.grounded }

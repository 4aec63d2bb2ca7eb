package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// InputProvider supplies per-frame control intent for the player. Tests
// substitute a scripted provider for the keyboard.
type InputProvider interface {
	// MoveX returns the desired horizontal direction in [-1, 1].
	MoveX() float64

	// Jump reports whether the jump control is held.
	Jump() bool

	// Shoot reports whether the fire control is held.
	Shoot() bool
}

// KeyboardInput reads the keyboard: arrows or A/D to move, space / up / W to
// jump, S or enter to shoot.
type KeyboardInput struct{}

// MoveX returns -1, 0 or 1 from the held movement keys.
func (KeyboardInput) MoveX() float64 {
	var x float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		x -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		x += 1
	}
	return x
}

// Jump reports the jump keys.
func (KeyboardInput) Jump() bool {
	return ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsKeyPressed(ebiten.KeyArrowUp) ||
		ebiten.IsKeyPressed(ebiten.KeyW)
}

// Shoot reports the fire keys.
func (KeyboardInput) Shoot() bool {
	return ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyEnter)
}

// Pointer is the menu-facing input source: cursor position and button state.
type Pointer struct {
	Pos     Vec2
	Pressed bool // held this frame
	Clicked bool // transitioned to pressed this frame
}

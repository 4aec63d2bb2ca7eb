package game

// Config holds the fixed parameters of the game. It is built once in main
// and passed to every component that needs it; there is no package-level
// mutable state.
type Config struct {
	ScreenWidth  int
	ScreenHeight int

	// MaxDeltaTime caps the per-frame elapsed time so a stall cannot make
	// entities tunnel through tiles.
	MaxDeltaTime float64

	// Player physics.
	MoveSpeed  float64 // horizontal speed, px/s
	Gravity    float64 // downward acceleration, px/s^2
	JumpSpeed  float64 // vertical impulse on jump, px/s (negative is up)
	ShootDelay float64 // cooldown between shots, seconds

	// Bullets.
	BulletSpeed    float64 // px/s
	BulletMaxRange float64 // travel distance before despawn, px
	MuzzleOffset   float64 // muzzle distance from the player center, px
	FlashLifetime  float64 // muzzle flash duration, seconds

	// Enemies.
	BeeInterval  float64 // seconds between bee spawns
	BeeSpeedMin  float64 // px/s
	BeeSpeedMax  float64 // px/s
	WormSpeedMin float64 // px/s
	WormSpeedMax float64 // px/s
	RespawnDelay float64 // seconds until a destroyed worm returns
}

// DefaultConfig returns the tuned default configuration. The physics values
// assume 64 px tiles and the original's 60 FPS feel.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:    1280,
		ScreenHeight:   720,
		MaxDeltaTime:   0.1,
		MoveSpeed:      400.0,
		Gravity:        2600.0,
		JumpSpeed:      -960.0,
		ShootDelay:     0.5,
		BulletSpeed:    850.0,
		BulletMaxRange: 1500.0,
		MuzzleOffset:   34.0,
		FlashLifetime:  0.1,
		BeeInterval:    1.0,
		BeeSpeedMin:    300.0,
		BeeSpeedMax:    500.0,
		WormSpeedMin:   160.0,
		WormSpeedMax:   200.0,
		RespawnDelay:   3.0,
	}
}

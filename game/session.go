package game

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/YashmitSagari123/python-platformer/assets"
	"github.com/YashmitSagari123/python-platformer/level"
)

// backgroundColor is the level sky color.
var backgroundColor = color.NRGBA{R: 252, G: 223, B: 205, A: 255}

// Session is one playthrough: the live entities, camera target and level
// geometry for a single game attempt. Restarting the game discards the
// session and builds a fresh one.
type Session struct {
	cfg Config
	lib *assets.Library
	lvl *level.Level

	all     Group // everything drawable, in depth order at draw time
	bullets Group
	enemies Group

	colliders []Rect
	player    *Player
	director  *SpawnDirector
}

// NewSession builds the world from the level provider: collision tiles,
// decorations, the player with the selected skin at the "Player" spawn, and
// a worm per "Worm" area.
func NewSession(cfg Config, lib *assets.Library, lvl *level.Level, skinKey string, input InputProvider) (*Session, error) {
	frames, ok := lib.Characters[skinKey]
	if !ok {
		return nil, fmt.Errorf("unknown character skin %q", skinKey)
	}

	s := &Session{cfg: cfg, lib: lib, lvl: lvl}

	for _, t := range lvl.Tiles {
		tile := NewStaticSprite(Vec2{X: t.X, Y: t.Y}, lib.Tile)
		s.all.Add(tile)
		s.colliders = append(s.colliders, tile.Rect())
	}
	for _, d := range lvl.Decorations {
		s.all.Add(NewStaticSprite(Vec2{X: d.X, Y: d.Y}, lib.Decoration))
	}

	spawn := lvl.PlayerSpawn()
	s.player = NewPlayer(Vec2{X: spawn.X, Y: spawn.Y}, frames, s.colliders, input, s.fireBullet, cfg)
	s.all.Add(s.player)

	for _, ws := range lvl.WormSpawns() {
		s.spawnWorm(NewRect(ws.X, ws.Y, ws.W, ws.H))
	}

	s.director = NewSpawnDirector(cfg.BeeInterval, s.spawnBee, cfg.RespawnDelay, s.spawnWorm)

	return s, nil
}

// spawnWorm creates a patrolling worm on the band with a randomized speed.
// Its destroy hook removes it from every group the same frame and schedules
// the respawn.
func (s *Session) spawnWorm(band Rect) {
	speed := s.cfg.WormSpeedMin + rand.Float64()*(s.cfg.WormSpeedMax-s.cfg.WormSpeedMin)
	var w *Worm
	w = NewWorm(band, s.lib.WormFrames, s.lib.WormFramesRight, speed, func(b Rect) {
		s.all.Remove(w)
		s.enemies.Remove(w)
		s.director.ScheduleRespawn(b)
	})
	s.all.Add(w)
	s.enemies.Add(w)
}

// spawnBee creates a bee just beyond the right edge of the level, one
// viewport width out, at a random height, flying leftward at a randomized
// speed.
func (s *Session) spawnBee() {
	speed := s.cfg.BeeSpeedMin + rand.Float64()*(s.cfg.BeeSpeedMax-s.cfg.BeeSpeedMin)
	pos := Vec2{
		X: s.lvl.Width + float64(s.cfg.ScreenWidth),
		Y: rand.Float64() * s.lvl.Height,
	}
	var b *Bee
	b = NewBee(pos, s.lib.BeeFrames, speed, func() {
		s.all.Remove(b)
		s.enemies.Remove(b)
	})
	s.all.Add(b)
	s.enemies.Add(b)
}

// fireBullet is the player's fire callback: it spawns the bullet at the
// muzzle, attaches a muzzle flash to the player, and plays the shot sound.
func (s *Session) fireBullet(muzzle Vec2, dir float64) {
	b := NewBullet(muzzle, dir, s.lib.Bullet, s.lib.BulletLeft, s.cfg.BulletSpeed, s.cfg.BulletMaxRange)
	s.all.Add(b)
	s.bullets.Add(b)
	s.all.Add(NewMuzzleFlash(s.player, s.lib.Flash, s.lib.FlashLeft, s.cfg.FlashLifetime))
	s.lib.Shoot.Play()
}

// removeBullet drops a bullet from every group that references it.
func (s *Session) removeBullet(b *Bullet) {
	s.all.Remove(b)
	s.bullets.Remove(b)
}

// Update runs one frame in the required order: timers first, then entity
// movement, then expiry sweeps, then combat collisions, then the
// out-of-bounds check. It reports whether the player died this frame.
func (s *Session) Update(dt float64) (playerDied bool) {
	s.director.Update(dt)
	s.all.Update(dt)

	for _, e := range s.all.Entities() {
		switch v := e.(type) {
		case *Bullet:
			if v.Expired() {
				s.removeBullet(v)
			}
		case *MuzzleFlash:
			if v.Expired() {
				s.all.Remove(v)
			}
		case *Bee:
			if v.OffscreenLeft(float64(s.cfg.ScreenWidth)) {
				v.Destroy()
			}
		}
	}

	if s.resolveCombat() {
		return true
	}

	// Falling out of the level: the player's top edge below the level's
	// bottom edge is fatal.
	return s.player.Rect().Y > s.lvl.Height
}

// resolveCombat runs the mask-accurate combat pass after all movement:
// bullets against enemies, then enemies against the player.
func (s *Session) resolveCombat() (playerHit bool) {
	for _, be := range s.bullets.Entities() {
		bullet := be.(*Bullet)
		if !s.bullets.Contains(bullet) {
			continue
		}
		for _, ee := range s.enemies.Entities() {
			if !s.enemies.Contains(ee) {
				continue
			}
			if MasksOverlap(bullet, ee) {
				s.lib.Impact.Play()
				s.removeBullet(bullet)
				ee.(Enemy).Destroy()
				break
			}
		}
	}

	for _, ee := range s.enemies.Entities() {
		if MasksOverlap(s.player, ee) {
			return true
		}
	}
	return false
}

// Draw renders the world with the camera locked on the player's center.
func (s *Session) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.all.Draw(screen, s.player.Rect().Center(), float64(s.cfg.ScreenWidth), float64(s.cfg.ScreenHeight))
}

// Player returns the session's player.
func (s *Session) Player() *Player { return s.player }

// Enemies returns the live enemy group.
func (s *Session) Enemies() *Group { return &s.enemies }

// Bullets returns the live bullet group.
func (s *Session) Bullets() *Group { return &s.bullets }

// All returns the full entity group.
func (s *Session) All() *Group { return &s.all }

// Director returns the spawn director.
func (s *Session) Director() *SpawnDirector { return s.director }

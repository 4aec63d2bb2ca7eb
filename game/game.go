package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/YashmitSagari123/python-platformer/assets"
	"github.com/YashmitSagari123/python-platformer/level"
)

// Mode is the top-level game state. Transitions: Menu→Playing (play),
// Playing→GameOver (death), GameOver→Playing (restart). There is no direct
// Menu↔GameOver edge.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
)

// Game owns the mode state machine and drives one session per playthrough.
// It implements ebiten.Game.
type Game struct {
	cfg Config
	lib *assets.Library
	lvl *level.Level

	mode     Mode
	session  *Session
	menu     *Menu
	gameOver *GameOverScreen

	// gameOverCuePlayed ensures the jingle plays exactly once per entry
	// into ModeGameOver.
	gameOverCuePlayed bool

	lastUpdate time.Time

	// FPS tracking, shown on the F1 stats overlay. Sustained drops trigger
	// an automatic CPU profile capture.
	fps       float64
	fpsTimer  float64
	fpsFrames int
	showStats bool
	profiler  *Profiler
}

// NewGame loads assets and the level, then starts in the menu. Any load
// failure is returned and fatal to the caller.
func NewGame(cfg Config) (*Game, error) {
	lib, err := assets.Load()
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	lvl, err := level.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}

	g := &Game{
		cfg:        cfg,
		lib:        lib,
		lvl:        lvl,
		mode:       ModeMenu,
		menu:       NewMenu(cfg, lib),
		gameOver:   NewGameOverScreen(cfg, lib),
		lastUpdate: time.Now(),
		profiler:   NewProfiler(),
	}

	// The menu draws the world darkened behind it, so a session must exist
	// before the first frame.
	g.session, err = NewSession(cfg, lib, lvl, g.menu.SelectedSkin(), KeyboardInput{})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// readPointer samples the menu-facing input source.
func (g *Game) readPointer() Pointer {
	x, y := ebiten.CursorPosition()
	return Pointer{
		Pos:     Vec2{X: float64(x), Y: float64(y)},
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Clicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

// startSession builds a fresh session with the selected skin and enters
// ModePlaying. Everything from the previous attempt is discarded, including
// pending spawn timers.
func (g *Game) startSession() error {
	s, err := NewSession(g.cfg, g.lib, g.lvl, g.menu.SelectedSkin(), KeyboardInput{})
	if err != nil {
		return err
	}
	g.session = s
	g.gameOverCuePlayed = false
	g.lib.Music.Play()
	g.mode = ModePlaying
	return nil
}

// Update advances one frame: clamp elapsed time, then dispatch on mode.
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now
	if dt > g.cfg.MaxDeltaTime {
		dt = g.cfg.MaxDeltaTime
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showStats = !g.showStats
	}
	g.trackFPS(dt)

	switch g.mode {
	case ModeMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		if g.menu.Update(g.readPointer()) {
			return g.startSession()
		}
	case ModePlaying:
		if g.session.Update(dt) {
			g.mode = ModeGameOver
			g.lib.Music.Stop()
		}
	case ModeGameOver:
		if !g.gameOverCuePlayed {
			g.lib.GameOver.Play()
			g.gameOverCuePlayed = true
		}
		if g.gameOver.Update(g.readPointer()) {
			return g.startSession()
		}
	}

	return nil
}

// trackFPS recomputes the frame rate every half second, like the stats
// overlay expects.
func (g *Game) trackFPS(dt float64) {
	g.fpsTimer += dt
	g.fpsFrames++
	if g.fpsTimer >= 0.5 {
		g.fps = float64(g.fpsFrames) / g.fpsTimer
		g.fpsTimer = 0
		g.fpsFrames = 0
		if g.mode == ModePlaying && g.fps > 0 && g.fps < lowFPSThreshold {
			g.profiler.Capture("low-fps")
		}
	}
}

// Draw renders the world, then the mode-specific UI over it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Draw(screen)

	switch g.mode {
	case ModeMenu:
		g.darken(screen)
		g.menu.Draw(screen, g.readPointer())
	case ModeGameOver:
		g.darken(screen)
		g.gameOver.Draw(screen, g.readPointer())
	}

	if g.showStats {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.0f  Entities: %d", g.fps, g.session.All().Len()))
	}
}

// darken dims the whole screen for menu and game-over backdrops.
func (g *Game) darken(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0,
		float32(g.cfg.ScreenWidth), float32(g.cfg.ScreenHeight),
		color.NRGBA{A: 128}, false)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

// CurrentMode returns the active mode.
func (g *Game) CurrentMode() Mode { return g.mode }

package game

import (
	"github.com/YashmitSagari123/python-platformer/assets"
	"github.com/YashmitSagari123/python-platformer/level"
)

// solidSprite builds a headless sprite (no GPU image) whose mask is fully
// opaque, so bounding-rect overlap and mask overlap agree.
func solidSprite(w, h int) *assets.Sprite {
	m := assets.NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y)
		}
	}
	return &assets.Sprite{Mask: m, Width: float64(w), Height: float64(h)}
}

// spriteWithMask builds a headless sprite from an explicit mask.
func spriteWithMask(m *assets.Mask) *assets.Sprite {
	return &assets.Sprite{Mask: m, Width: float64(m.W), Height: float64(m.H)}
}

// testLibrary assembles the minimal asset library sessions need, with all
// sounds nil (silent) and all sprites headless.
func testLibrary() *assets.Library {
	char := solidSprite(48, 64)
	frames := &assets.CharacterFrames{
		Idle: char, WalkA: char, WalkB: char, Jump: char,
		IdleLeft: char, WalkALeft: char, WalkBLeft: char, JumpLeft: char,
	}
	chars := make(map[string]*assets.CharacterFrames)
	for _, skin := range assets.Skins {
		chars[skin.Key] = frames
	}
	return &assets.Library{
		Characters:      chars,
		BeeFrames:       []*assets.Sprite{solidSprite(48, 40), solidSprite(48, 40)},
		WormFrames:      []*assets.Sprite{solidSprite(80, 40), solidSprite(80, 40)},
		WormFramesRight: []*assets.Sprite{solidSprite(80, 40), solidSprite(80, 40)},
		Bullet:          solidSprite(24, 12),
		BulletLeft:      solidSprite(24, 12),
		Flash:           solidSprite(30, 24),
		FlashLeft:       solidSprite(30, 24),
		Tile:            solidSprite(64, 64),
		Decoration:      solidSprite(64, 64),
	}
}

// testLevel builds a small level in memory: a ground strip from x=0 to
// x=1280 at y=512, player spawn above it, no worms unless added.
func testLevel(extraSpawns ...level.Spawn) *level.Level {
	lvl := &level.Level{
		TileSize: 64,
		Width:    2560,
		Height:   768,
		Spawns:   append([]level.Spawn{{Name: "Player", X: 200, Y: 300}}, extraSpawns...),
	}
	for x := 0.0; x < 1280; x += 64 {
		lvl.Tiles = append(lvl.Tiles, level.Placed{X: x, Y: 512})
	}
	return lvl
}

// scriptedInput is a controllable InputProvider for player tests.
type scriptedInput struct {
	moveX float64
	jump  bool
	shoot bool
}

func (s *scriptedInput) MoveX() float64 { return s.moveX }
func (s *scriptedInput) Jump() bool     { return s.jump }
func (s *scriptedInput) Shoot() bool    { return s.shoot }

// fakeEntity is a minimal Entity recording its updates.
type fakeEntity struct {
	rect     Rect
	sprite   *assets.Sprite
	updates  int
	onUpdate func()
}

func (f *fakeEntity) Update(dt float64) {
	f.updates++
	if f.onUpdate != nil {
		f.onUpdate()
	}
}

func (f *fakeEntity) Frame() *assets.Sprite { return f.sprite }
func (f *fakeEntity) Rect() Rect            { return f.rect }

// newTestSession builds a session on the test library and level.
func newTestSession(cfg Config, lvl *level.Level, input InputProvider) *Session {
	s, err := NewSession(cfg, testLibrary(), lvl, "beige", input)
	if err != nil {
		panic(err)
	}
	return s
}

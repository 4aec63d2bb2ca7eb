package assets

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Skin describes one selectable player character.
type Skin struct {
	Key   string
	Name  string
	Color color.NRGBA // menu name color, also the sprite body fill
	fill  string      // hex fill injected into the SVG templates
}

// Skins is the fixed catalog of selectable characters, in menu order.
var Skins = []Skin{
	{Key: "beige", Name: "Ember", Color: color.NRGBA{210, 180, 140, 255}, fill: "#D2B48C"},
	{Key: "green", Name: "Sage", Color: color.NRGBA{80, 200, 120, 255}, fill: "#50C878"},
	{Key: "pink", Name: "Coral", Color: color.NRGBA{255, 105, 180, 255}, fill: "#FF69B4"},
	{Key: "purple", Name: "Iris", Color: color.NRGBA{170, 140, 255, 255}, fill: "#AA8CFF"},
	{Key: "yellow", Name: "Solar", Color: color.NRGBA{255, 200, 0, 255}, fill: "#FFC800"},
}

// CharacterFrames holds one skin's animation frames in both facings.
type CharacterFrames struct {
	Idle, WalkA, WalkB, Jump                 *Sprite // facing right
	IdleLeft, WalkALeft, WalkBLeft, JumpLeft *Sprite
}

// Library is the asset provider: every sprite, font face and sound the game
// needs, loaded once at startup. A load failure is fatal to the process.
type Library struct {
	Characters map[string]*CharacterFrames

	BeeFrames       []*Sprite // facing left, the direction of travel
	WormFrames      []*Sprite // facing left
	WormFramesRight []*Sprite
	Bullet          *Sprite // facing right
	BulletLeft      *Sprite
	Flash           *Sprite
	FlashLeft       *Sprite
	Tile            *Sprite
	Decoration      *Sprite
	Logo            *Sprite

	FontSmall font.Face
	FontLarge font.Face

	Shoot    *Sound
	Impact   *Sound
	GameOver *Sound
	Music    *Music
}

// Load rasterizes all sprites, prepares fonts and synthesizes audio.
func Load() (*Library, error) {
	lib := &Library{Characters: make(map[string]*CharacterFrames)}

	poses := []struct {
		template string
		set      func(c *CharacterFrames, right, left *Sprite)
	}{
		{characterIdleSVG, func(c *CharacterFrames, r, l *Sprite) { c.Idle, c.IdleLeft = r, l }},
		{characterWalkASVG, func(c *CharacterFrames, r, l *Sprite) { c.WalkA, c.WalkALeft = r, l }},
		{characterWalkBSVG, func(c *CharacterFrames, r, l *Sprite) { c.WalkB, c.WalkBLeft = r, l }},
		{characterJumpSVG, func(c *CharacterFrames, r, l *Sprite) { c.Jump, c.JumpLeft = r, l }},
	}
	for _, skin := range Skins {
		frames := &CharacterFrames{}
		for _, pose := range poses {
			img, err := renderCharacterPose(pose.template, skin.fill)
			if err != nil {
				return nil, fmt.Errorf("skin %q: %w", skin.Key, err)
			}
			right, left := newSpritePair(img)
			pose.set(frames, right, left)
		}
		lib.Characters[skin.Key] = frames
	}

	for _, svg := range []string{beeFrameASVG, beeFrameBSVG} {
		img, err := rasterizeSVG([]byte(svg), beeWidth, beeHeight)
		if err != nil {
			return nil, fmt.Errorf("bee frame: %w", err)
		}
		lib.BeeFrames = append(lib.BeeFrames, NewSprite(img))
	}

	// The worm artwork faces left, so the unflipped sprite is the
	// left-facing frame.
	for _, svg := range []string{wormFrameASVG, wormFrameBSVG} {
		img, err := rasterizeSVG([]byte(svg), wormWidth, wormHeight)
		if err != nil {
			return nil, fmt.Errorf("worm frame: %w", err)
		}
		left, right := newSpritePair(img)
		lib.WormFrames = append(lib.WormFrames, left)
		lib.WormFramesRight = append(lib.WormFramesRight, right)
	}

	bulletImg, err := rasterizeSVG([]byte(bulletSVG), bulletWidth, bulletHeight)
	if err != nil {
		return nil, fmt.Errorf("bullet: %w", err)
	}
	lib.Bullet, lib.BulletLeft = newSpritePair(bulletImg)

	flashImg, err := rasterizeSVG([]byte(flashSVG), flashWidth, flashHeight)
	if err != nil {
		return nil, fmt.Errorf("muzzle flash: %w", err)
	}
	lib.Flash, lib.FlashLeft = newSpritePair(flashImg)

	for _, fixed := range []struct {
		svg  string
		w, h int
		dst  **Sprite
	}{
		{tileSVG, 64, 64, &lib.Tile},
		{decorationSVG, 64, 64, &lib.Decoration},
		{logoSVG, logoWidth, logoHeight, &lib.Logo},
	} {
		img, err := rasterizeSVG([]byte(fixed.svg), fixed.w, fixed.h)
		if err != nil {
			return nil, fmt.Errorf("sprite %dx%d: %w", fixed.w, fixed.h, err)
		}
		*fixed.dst = NewSprite(img)
	}

	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	lib.FontSmall, err = opentype.NewFace(tt, &opentype.FaceOptions{Size: 30, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("font face 30: %w", err)
	}
	lib.FontLarge, err = opentype.NewFace(tt, &opentype.FaceOptions{Size: 60, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("font face 60: %w", err)
	}

	ctx := audio.NewContext(SampleRate)
	lib.Shoot, lib.Impact, lib.GameOver, lib.Music, err = synthesizeSounds(ctx)
	if err != nil {
		return nil, fmt.Errorf("synthesize audio: %w", err)
	}

	return lib, nil
}

// SkinByKey returns the catalog entry for a skin key.
func SkinByKey(key string) (Skin, bool) {
	for _, s := range Skins {
		if s.Key == key {
			return s, true
		}
	}
	return Skin{}, false
}

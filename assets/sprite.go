package assets

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite bundles a drawable bitmap with its collision mask and pixel size.
// Width/Height and Mask are kept separate from the GPU image so game logic
// and tests can work without a live graphics context (Image may be nil).
type Sprite struct {
	Image  *ebiten.Image
	Mask   *Mask
	Width  float64
	Height float64
}

// NewSprite converts a decoded image into a sprite, building its mask from
// the alpha channel.
func NewSprite(img image.Image) *Sprite {
	b := img.Bounds()
	return &Sprite{
		Image:  ebiten.NewImageFromImage(img),
		Mask:   MaskFromImage(img),
		Width:  float64(b.Dx()),
		Height: float64(b.Dy()),
	}
}

// newSpritePair returns the sprite and its horizontally mirrored twin.
func newSpritePair(img image.Image) (right, left *Sprite) {
	return NewSprite(img), NewSprite(flipImage(img))
}

// Draw renders the sprite with its top-left corner at (x, y).
func (s *Sprite) Draw(dst *ebiten.Image, x, y float64) {
	if s == nil || s.Image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(s.Image, op)
}

// flipImage mirrors an image horizontally.
func flipImage(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.Set(b.Dx()-1-x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}

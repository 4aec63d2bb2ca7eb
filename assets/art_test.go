package assets

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// opaquePixels counts pixels at or above the mask alpha threshold.
func opaquePixels(img image.Image) int {
	b := img.Bounds()
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a>>8 >= maskAlphaThreshold {
				n++
			}
		}
	}
	return n
}

func TestRasterizeSVGProducesBitmapOfRequestedSize(t *testing.T) {
	img, err := rasterizeSVG([]byte(tileSVG), 64, 64)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
	assert.Greater(t, opaquePixels(img), 0)
}

func TestRasterizeSVGRejectsMalformedMarkup(t *testing.T) {
	_, err := rasterizeSVG([]byte("<svg><unclosed"), 16, 16)
	assert.Error(t, err)
}

func TestEverySpriteTemplateRasterizes(t *testing.T) {
	cases := []struct {
		name string
		svg  string
		w, h int
	}{
		{"bee a", beeFrameASVG, beeWidth, beeHeight},
		{"bee b", beeFrameBSVG, beeWidth, beeHeight},
		{"worm a", wormFrameASVG, wormWidth, wormHeight},
		{"worm b", wormFrameBSVG, wormWidth, wormHeight},
		{"bullet", bulletSVG, bulletWidth, bulletHeight},
		{"flash", flashSVG, flashWidth, flashHeight},
		{"tile", tileSVG, 64, 64},
		{"decoration", decorationSVG, 64, 64},
		{"logo", logoSVG, logoWidth, logoHeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			img, err := rasterizeSVG([]byte(tc.svg), tc.w, tc.h)
			require.NoError(t, err)
			assert.Greater(t, opaquePixels(img), 0, "sprite must have visible pixels")
		})
	}
}

func TestRenderCharacterPoseSubstitutesFill(t *testing.T) {
	for _, skin := range Skins {
		img, err := renderCharacterPose(characterIdleSVG, skin.fill)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, characterWidth, characterHeight), img.Bounds())
		assert.Greater(t, opaquePixels(img), 0)
	}
}

func TestCharacterPosesShareSize(t *testing.T) {
	// Player bounding rects assume every pose has identical dimensions.
	for _, tpl := range []string{characterIdleSVG, characterWalkASVG, characterWalkBSVG, characterJumpSVG} {
		img, err := renderCharacterPose(tpl, "#FFC800")
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, characterWidth, characterHeight), img.Bounds())
	}
}

func TestFlipImageMirrorsHorizontally(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(2, 1, color.NRGBA{0, 0, 255, 255})

	flipped := flipImage(img)
	assert.Equal(t, image.Rect(0, 0, 3, 2), flipped.Bounds())
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, flipped.At(2, 0))
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, flipped.At(0, 1))
	assert.Equal(t, color.NRGBA{}, flipped.At(1, 0))
}

func TestSkinByKey(t *testing.T) {
	s, ok := SkinByKey("green")
	require.True(t, ok)
	assert.Equal(t, "Sage", s.Name)

	_, ok = SkinByKey("chartreuse")
	assert.False(t, ok)
}

func TestSkinCatalogIsWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Skins {
		assert.NotEmpty(t, s.Key)
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.fill)
		assert.False(t, seen[s.Key], "duplicate skin key %q", s.Key)
		seen[s.Key] = true
	}
}

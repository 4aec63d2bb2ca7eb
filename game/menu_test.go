package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/YashmitSagari123/python-platformer/assets"
)

// menuLibrary is a test library with real font faces, which the menu needs
// for button hit-testing.
func menuLibrary(t *testing.T) *assets.Library {
	t.Helper()
	lib := testLibrary()

	tt, err := opentype.Parse(goregular.TTF)
	require.NoError(t, err)
	lib.FontSmall, err = opentype.NewFace(tt, &opentype.FaceOptions{Size: 30, DPI: 72, Hinting: font.HintingFull})
	require.NoError(t, err)
	lib.FontLarge, err = opentype.NewFace(tt, &opentype.FaceOptions{Size: 60, DPI: 72, Hinting: font.HintingFull})
	require.NoError(t, err)
	return lib
}

func TestMenuDefaultsToFirstSkin(t *testing.T) {
	m := NewMenu(DefaultConfig(), menuLibrary(t))
	assert.Equal(t, assets.Skins[0].Key, m.SelectedSkin())
}

func TestMenuPressSelectsSkinUnderPointer(t *testing.T) {
	m := NewMenu(DefaultConfig(), menuLibrary(t))

	target := m.slotRect(3).Center()
	started := m.Update(Pointer{Pos: target, Pressed: true})

	assert.False(t, started)
	assert.Equal(t, assets.Skins[3].Key, m.SelectedSkin())
}

func TestMenuPressOutsideSlotsKeepsSelection(t *testing.T) {
	m := NewMenu(DefaultConfig(), menuLibrary(t))
	m.Update(Pointer{Pos: m.slotRect(2).Center(), Pressed: true})

	m.Update(Pointer{Pos: Vec2{X: 5, Y: 5}, Pressed: true})

	assert.Equal(t, assets.Skins[2].Key, m.SelectedSkin())
}

func TestMenuPlayButtonStartsOnClick(t *testing.T) {
	m := NewMenu(DefaultConfig(), menuLibrary(t))
	center := m.playRect().Center()

	// Held but not freshly clicked: no start.
	assert.False(t, m.Update(Pointer{Pos: center, Pressed: true}))

	assert.True(t, m.Update(Pointer{Pos: center, Pressed: true, Clicked: true}))
}

func TestMenuSlotsAreEvenlySpacedAndDistinct(t *testing.T) {
	m := NewMenu(DefaultConfig(), menuLibrary(t))

	for i := 1; i < len(assets.Skins); i++ {
		prev := m.slotRect(i - 1)
		cur := m.slotRect(i)
		assert.InDelta(t, slotSpacing, cur.Center().X-prev.Center().X, 1e-9)
		assert.False(t, cur.Overlaps(prev), "slot hitboxes must not overlap")
	}
}

func TestGameOverRestartOnClick(t *testing.T) {
	s := NewGameOverScreen(DefaultConfig(), menuLibrary(t))
	center := s.restartRect().Center()

	assert.False(t, s.Update(Pointer{Pos: center, Pressed: true}))
	assert.True(t, s.Update(Pointer{Pos: center, Clicked: true}))
	assert.False(t, s.Update(Pointer{Pos: Vec2{X: 1, Y: 1}, Clicked: true}))
}

func TestBrightenClampsAt255(t *testing.T) {
	c := brighten(assets.Skins[4].Color, highlightBump)
	assert.LessOrEqual(t, int(c.R), 255)
	assert.Equal(t, uint8(255), c.R, "255,200,0 lifted by 40 clamps red")
	assert.Equal(t, uint8(240), c.G)
	assert.Equal(t, uint8(40), c.B)
}

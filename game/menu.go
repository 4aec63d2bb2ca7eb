package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/YashmitSagari123/python-platformer/assets"
)

// Menu slot layout, relative to the screen size.
const (
	slotSpacing   = 130.0
	slotNameDrop  = 25.0 // name baseline below the preview
	buttonPadX    = 40.0
	buttonPadY    = 40.0
	selectDrop    = 100.0 // "Select Character" above the slot row
	highlightBump = 40    // brightness added to the selected name
)

var (
	buttonIdleColor  = color.NRGBA{R: 50, G: 50, B: 50, A: 255}
	buttonHoverColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	white            = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	gameOverRed      = color.NRGBA{R: 220, G: 40, B: 40, A: 255}
)

// Menu is the character-selection screen. Hovering and clicking a preview
// selects that skin; the PLAY button starts a session.
type Menu struct {
	cfg      Config
	lib      *assets.Library
	selected int // index into assets.Skins
}

// NewMenu creates the menu with the first skin selected.
func NewMenu(cfg Config, lib *assets.Library) *Menu {
	return &Menu{cfg: cfg, lib: lib}
}

// SelectedSkin returns the key of the currently selected skin.
func (m *Menu) SelectedSkin() string {
	return assets.Skins[m.selected].Key
}

// Update applies pointer input and reports whether PLAY was activated.
func (m *Menu) Update(ptr Pointer) bool {
	if ptr.Pressed {
		for i := range assets.Skins {
			if m.slotRect(i).Contains(ptr.Pos) {
				m.selected = i
			}
		}
	}
	return ptr.Clicked && m.playRect().Contains(ptr.Pos)
}

// slotRect is the clickable preview rect of skin i, centered on its slot.
func (m *Menu) slotRect(i int) Rect {
	w := float64(m.cfg.ScreenWidth)
	h := float64(m.cfg.ScreenHeight)
	cx := w/2 - 2*slotSpacing + float64(i)*slotSpacing
	cy := h/2 + 120
	preview := m.previewSprite(i)
	return NewRect(cx-preview.Width/2, cy-preview.Height/2, preview.Width, preview.Height)
}

// playRect is the PLAY button including its padded background.
func (m *Menu) playRect() Rect {
	w := float64(m.cfg.ScreenWidth)
	h := float64(m.cfg.ScreenHeight)
	return centeredTextRect(m.lib.FontLarge, "PLAY", w/2, h/1.3).Inflate(buttonPadX, buttonPadY)
}

func (m *Menu) previewSprite(i int) *assets.Sprite {
	return m.lib.Characters[assets.Skins[i].Key].Idle
}

// Draw renders the logo, the skin previews with their names, and PLAY.
func (m *Menu) Draw(screen *ebiten.Image, ptr Pointer) {
	w := float64(m.cfg.ScreenWidth)
	h := float64(m.cfg.ScreenHeight)

	logo := m.lib.Logo
	logo.Draw(screen, w/2-logo.Width/2, h/4-logo.Height/2)

	drawTextCentered(screen, "Select Character", m.lib.FontLarge, w/2, h/2+120-selectDrop, white)

	for i, skin := range assets.Skins {
		slot := m.slotRect(i)
		m.previewSprite(i).Draw(screen, slot.X, slot.Y)

		nameColor := skin.Color
		if i == m.selected {
			nameColor = brighten(nameColor, highlightBump)
		}
		drawTextCentered(screen, skin.Name, m.lib.FontSmall, slot.Center().X, slot.Bottom()+slotNameDrop, nameColor)
	}

	play := m.playRect()
	bg := buttonIdleColor
	if play.Contains(ptr.Pos) {
		bg = buttonHoverColor
	}
	vector.DrawFilledRect(screen, float32(play.X), float32(play.Y), float32(play.W), float32(play.H), bg, true)
	drawTextCentered(screen, "PLAY", m.lib.FontLarge, w/2, h/1.3, white)
}

// GameOverScreen shows the death message and the restart control.
type GameOverScreen struct {
	cfg Config
	lib *assets.Library
}

// NewGameOverScreen creates the game-over screen.
func NewGameOverScreen(cfg Config, lib *assets.Library) *GameOverScreen {
	return &GameOverScreen{cfg: cfg, lib: lib}
}

// restartRect is the Restart button including its padded background.
func (s *GameOverScreen) restartRect() Rect {
	w := float64(s.cfg.ScreenWidth)
	h := float64(s.cfg.ScreenHeight)
	return centeredTextRect(s.lib.FontLarge, "Restart", w/2, h/2).Inflate(20, 10)
}

// Update reports whether Restart was activated.
func (s *GameOverScreen) Update(ptr Pointer) bool {
	return ptr.Clicked && s.restartRect().Contains(ptr.Pos)
}

// Draw renders the message and the restart button with hover feedback.
func (s *GameOverScreen) Draw(screen *ebiten.Image, ptr Pointer) {
	w := float64(s.cfg.ScreenWidth)
	h := float64(s.cfg.ScreenHeight)

	drawTextCentered(screen, "Game Over", s.lib.FontLarge, w/2, h/3, gameOverRed)

	restart := s.restartRect()
	bg := buttonIdleColor
	if restart.Contains(ptr.Pos) {
		bg = buttonHoverColor
	}
	vector.DrawFilledRect(screen, float32(restart.X), float32(restart.Y), float32(restart.W), float32(restart.H), bg, true)
	drawTextCentered(screen, "Restart", s.lib.FontLarge, w/2, h/2, white)
}

// drawTextCentered draws s with its visual center at (cx, cy).
func drawTextCentered(dst *ebiten.Image, s string, face font.Face, cx, cy float64, clr color.Color) {
	b := text.BoundString(face, s)
	x := int(cx) - b.Min.X - b.Dx()/2
	y := int(cy) - b.Min.Y - b.Dy()/2
	text.Draw(dst, s, face, x, y, clr)
}

// centeredTextRect returns the rect the text would occupy when drawn
// centered at (cx, cy), used for button hit-testing.
func centeredTextRect(face font.Face, s string, cx, cy float64) Rect {
	b := text.BoundString(face, s)
	w := float64(b.Dx())
	h := float64(b.Dy())
	return NewRect(cx-w/2, cy-h/2, w, h)
}

// brighten lifts each color channel by n, clamping at 255.
func brighten(c color.NRGBA, n int) color.NRGBA {
	lift := func(v uint8) uint8 {
		if int(v)+n > 255 {
			return 255
		}
		return uint8(int(v) + n)
	}
	return color.NRGBA{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: c.A}
}

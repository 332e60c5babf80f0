package core

// Sprite identifies a pre-built image owned by the renderer. The core only
// names sprites; how they look is up to each frontend.
type Sprite int

const (
	SpriteBird Sprite = iota
	SpriteBackgroundDay
	SpriteBackgroundNight
	SpriteHomepage
	SpriteRules
	SpriteGameOverClassic
	SpriteGameOverShooting
)

// SpriteSize returns the size of a sprite in world units.
func SpriteSize(s Sprite) (w, h float64) {
	switch s {
	case SpriteBird:
		return 50, 38
	default:
		return 400, 600
	}
}

// Font selects a text size.
type Font int

const (
	FontHUD    Font = iota // score line
	FontLarge              // "You're dead"
	FontMedium             // start prompt, overlay titles
	FontSmall              // hints and button labels
)

// Align controls how DrawText positions a string relative to its anchor.
type Align int

const (
	AlignLeft   Align = iota // anchor is the top-left corner
	AlignCenter              // anchor is the centre of the text box
)

// TextStyle groups the text attributes understood by every Renderer.
type TextStyle struct {
	Font  Font
	Color Color
	Align Align
}

// Renderer is the immediate-mode drawing capability the game draws through.
// Calls arrive once per tick in layering order: background, entities, HUD,
// overlays, then Present.
type Renderer interface {
	DrawSprite(s Sprite, x, y float64)
	DrawRect(c Color, r Rect)
	DrawPolygon(c Color, points []Point)
	DrawText(text string, x, y float64, style TextStyle)
	Present()
}

// NopRenderer discards every draw call. Headless evaluation uses it.
type NopRenderer struct{}

func (NopRenderer) DrawSprite(Sprite, float64, float64) {}
func (NopRenderer) DrawRect(Color, Rect) {}
func (NopRenderer) DrawPolygon(Color, []Point) {}
func (NopRenderer) DrawText(string, float64, float64, TextStyle) {}
func (NopRenderer) Present() {}

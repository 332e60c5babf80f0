package flappy

import "github.com/vovakirdan/flappy-arcade/internal/core"

// Screen is the top-level state of the game.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenRules
	ScreenPlaying
	ScreenGameOver
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenRules:
		return "rules"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Button is a clickable region with a label. Hit-testing uses exclusive
// bounds.
type Button struct {
	Label string
	Rect  core.Rect
}

// Hit reports whether p lies strictly inside the button.
func (b Button) Hit(p core.Point) bool {
	return b.Rect.ContainsOpen(p.X, p.Y)
}

// Buttons of the menu and rules pages, in world units.
var (
	ButtonClassic  = Button{Label: "1  Classic", Rect: core.NewRect(75, 220, 280, 30)}
	ButtonShooting = Button{Label: "2  Shooting", Rect: core.NewRect(65, 250, 300, 30)}
	ButtonRules    = Button{Label: "R  Rules", Rect: core.NewRect(135, 320, 135, 40)}
	ButtonBack     = Button{Label: "B  Back", Rect: core.NewRect(165, 337, 70, 37)}
)

// RulesText is shown on the rules page.
var RulesText = []string{
	"CLASSIC",
	"SPACE flaps. Fly through the gaps.",
	"Every pipe passed scores a point.",
	"From 10 points pipes drift,",
	"from 20 their gaps breathe.",
	"",
	"SHOOTING",
	"S fires. Each star shot scores.",
	"Touching a star ends the run.",
	"",
	"A toggles the autopilot.",
}

package core

// Color is a named palette entry. Frontends map it to whatever their output
// supports (ANSI colours in the terminal, RGBA in the window).
type Color uint8

// Palette used by the game.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorGreen
	ColorLightGreen
	ColorYellow
	ColorOrange
	ColorSky
	ColorNight
	ColorGround
	ColorGray
)

// RGBA returns the colour's components in 0-255 range.
func (c Color) RGBA() (r, g, b, a uint8) {
	switch c {
	case ColorBlack:
		return 0, 0, 0, 255
	case ColorWhite:
		return 255, 255, 255, 255
	case ColorRed:
		return 255, 0, 0, 255
	case ColorGreen:
		return 0, 128, 0, 255
	case ColorLightGreen:
		return 0, 255, 0, 255
	case ColorYellow:
		return 255, 255, 0, 255
	case ColorOrange:
		return 255, 165, 0, 255
	case ColorSky:
		return 112, 197, 206, 255
	case ColorNight:
		return 18, 24, 56, 255
	case ColorGround:
		return 222, 216, 149, 255
	case ColorGray:
		return 128, 128, 128, 255
	default:
		return 255, 255, 255, 255
	}
}

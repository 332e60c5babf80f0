package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// ansiColors maps the palette to ANSI 256-colour codes. ColorDefault is
// absent and leaves the terminal colour untouched.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:      lipgloss.Color("16"),
	core.ColorWhite:      lipgloss.Color("231"),
	core.ColorRed:        lipgloss.Color("196"),
	core.ColorGreen:      lipgloss.Color("28"),
	core.ColorLightGreen: lipgloss.Color("46"),
	core.ColorYellow:     lipgloss.Color("226"),
	core.ColorOrange:     lipgloss.Color("214"),
	core.ColorSky:        lipgloss.Color("116"),
	core.ColorNight:      lipgloss.Color("17"),
	core.ColorGround:     lipgloss.Color("187"),
	core.ColorGray:       lipgloss.Color("244"),
}

type colorPair struct {
	fg, bg core.Color
}

// cellStyles holds a style for every foreground/background pair. It is
// built once so concurrent SSH sessions can share it read-only.
var cellStyles = buildCellStyles()

func buildCellStyles() map[colorPair]lipgloss.Style {
	colors := []core.Color{core.ColorDefault}
	for c := range ansiColors {
		colors = append(colors, c)
	}
	styles := make(map[colorPair]lipgloss.Style, len(colors)*len(colors))
	for _, fg := range colors {
		for _, bg := range colors {
			st := lipgloss.NewStyle()
			if ansi, ok := ansiColors[fg]; ok {
				st = st.Foreground(ansi)
			}
			if ansi, ok := ansiColors[bg]; ok {
				st = st.Background(ansi)
			}
			styles[colorPair{fg, bg}] = st
		}
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			pair := colorPair{cell.FG, cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.FG, cell.BG}) != pair {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := cellStyles[pair]
			if !ok {
				style = lipgloss.NewStyle()
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

package tui

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// cellAspect is the height of a terminal cell divided by its width.
const cellAspect = 2.0

// Canvas is a core.Renderer that rasterizes world-space draw calls onto a
// grid of terminal cells. The world is scaled to fit the grid and
// letterboxed; drawing goes to a back buffer and Present publishes it.
type Canvas struct {
	back  *core.Screen
	front *core.Screen

	worldW, worldH float64
	// unit is the world width of one cell column. A row spans
	// unit*cellAspect world units.
	unit       float64
	offX, offY int
	cols, rows int // viewport size in cells
}

// NewCanvas creates a canvas of the given cell size for a world of the
// given size.
func NewCanvas(cols, rows int, worldW, worldH float64) *Canvas {
	c := &Canvas{
		back:   core.NewScreen(cols, rows),
		front:  core.NewScreen(cols, rows),
		worldW: worldW,
		worldH: worldH,
	}
	c.fit(cols, rows)
	return c
}

// Resize changes the grid size and refits the world into it.
func (c *Canvas) Resize(cols, rows int) {
	c.back.Resize(cols, rows)
	c.back.Clear()
	c.front.Resize(cols, rows)
	c.fit(cols, rows)
}

func (c *Canvas) fit(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c.unit = math.Max(c.worldW/float64(cols), c.worldH/(float64(rows)*cellAspect))
	c.cols = int(math.Ceil(c.worldW/c.unit - 1e-9))
	c.rows = int(math.Ceil(c.worldH/(c.unit*cellAspect) - 1e-9))
	c.offX = (cols - c.cols) / 2
	c.offY = (rows - c.rows) / 2
}

// Front returns the last presented frame.
func (c *Canvas) Front() *core.Screen {
	return c.front
}

// Viewport returns the cell rectangle the world occupies.
func (c *Canvas) Viewport() (x, y, w, h int) {
	return c.offX, c.offY, c.cols, c.rows
}

// ToWorld maps a cell to the world position of its centre. ok is false for
// cells in the letterbox.
func (c *Canvas) ToWorld(col, row int) (x, y float64, ok bool) {
	col -= c.offX
	row -= c.offY
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return 0, 0, false
	}
	x = (float64(col) + 0.5) * c.unit
	y = (float64(row) + 0.5) * c.unit * cellAspect
	return x, y, true
}

func (c *Canvas) toCell(x, y float64) (col, row int) {
	col = int(math.Floor(x / c.unit))
	row = int(math.Floor(y / (c.unit * cellAspect)))
	return col, row
}

// cellSpan returns the viewport-relative cell range touched by [lo, hi).
func cellSpan(lo, hi, size float64, limit int) (first, last int) {
	first = int(math.Floor(lo / size))
	last = int(math.Ceil(hi/size)) - 1
	if first < 0 {
		first = 0
	}
	if last > limit-1 {
		last = limit - 1
	}
	return first, last
}

func (c *Canvas) paint(col, row int, bg core.Color) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	c.back.Paint(c.offX+col, c.offY+row, bg)
}

func (c *Canvas) glyph(col, row int, r rune, fg core.Color) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	c.back.SetFG(c.offX+col, c.offY+row, r, fg)
}

// DrawRect paints every cell the rectangle overlaps.
func (c *Canvas) DrawRect(color core.Color, r core.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	c0, c1 := cellSpan(r.X, r.Right(), c.unit, c.cols)
	r0, r1 := cellSpan(r.Y, r.Bottom(), c.unit*cellAspect, c.rows)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			c.paint(col, row, color)
		}
	}
}

// DrawPolygon fills the cells whose centres lie inside the polygon
// (even-odd rule). A polygon smaller than a cell still marks the cell under
// its centroid.
func (c *Canvas) DrawPolygon(color core.Color, pts []core.Point) {
	if len(pts) < 3 {
		return
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	var cx, cy float64
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
		cx += p.X
		cy += p.Y
	}

	filled := false
	c0, c1 := cellSpan(minX, maxX, c.unit, c.cols)
	r0, r1 := cellSpan(minY, maxY, c.unit*cellAspect, c.rows)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x := (float64(col) + 0.5) * c.unit
			y := (float64(row) + 0.5) * c.unit * cellAspect
			if insidePolygon(pts, x, y) {
				c.paint(col, row, color)
				filled = true
			}
		}
	}
	if !filled {
		n := float64(len(pts))
		col, row := c.toCell(cx/n, cy/n)
		c.paint(col, row, color)
	}
}

func insidePolygon(pts []core.Point, x, y float64) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) &&
			x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			in = !in
		}
		j = i
	}
	return in
}

// DrawText writes text in cells. Large text is upper-cased since the
// terminal has a single font size.
func (c *Canvas) DrawText(text string, x, y float64, style core.TextStyle) {
	if style.Font == core.FontLarge {
		text = strings.ToUpper(text)
	}
	col, row := c.toCell(x, y)
	if style.Align == core.AlignCenter {
		col -= utf8.RuneCountInString(text) / 2
	}
	for _, r := range text {
		c.glyph(col, row, r, style.Color)
		col++
	}
}

// DrawSprite draws one of the procedural sprites.
func (c *Canvas) DrawSprite(s core.Sprite, x, y float64) {
	w, h := core.SpriteSize(s)
	switch s {
	case core.SpriteBird:
		c.drawBird(core.NewRect(x, y, w, h))
	case core.SpriteBackgroundDay:
		c.DrawRect(core.ColorSky, core.NewRect(x, y, w, h))
	case core.SpriteBackgroundNight, core.SpriteRules, core.SpriteGameOverShooting:
		c.DrawRect(core.ColorNight, core.NewRect(x, y, w, h))
		c.sprinkleStars()
	case core.SpriteHomepage:
		c.DrawRect(core.ColorSky, core.NewRect(x, y, w, h))
		c.DrawRect(core.ColorGround, core.NewRect(x, y+h-50, w, 50))
	case core.SpriteGameOverClassic:
		c.DrawRect(core.ColorBlack, core.NewRect(x, y, w, h))
	}
}

// sprinkleStars dots a fixed pattern of stars over the whole viewport.
func (c *Canvas) sprinkleStars() {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			if (col*7+row*13)%23 == 0 {
				c.glyph(col, row, '.', core.ColorWhite)
			}
		}
	}
}

func (c *Canvas) drawBird(r core.Rect) {
	c.DrawRect(core.ColorYellow, r)
	c0, c1 := cellSpan(r.X, r.Right(), c.unit, c.cols)
	r0, r1 := cellSpan(r.Y, r.Bottom(), c.unit*cellAspect, c.rows)
	c.glyph(c1, r0, 'o', core.ColorBlack)
	c.paint(c1+1, (r0+r1)/2, core.ColorOrange)
	if c1 > c0 {
		c.glyph(c0, (r0+r1+1)/2, '<', core.ColorWhite)
	}
}

// Present publishes the back buffer and clears it for the next frame.
func (c *Canvas) Present() {
	c.front.CopyFrom(c.back)
	c.back.Clear()
}

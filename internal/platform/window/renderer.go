package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Renderer draws the game onto an ebiten image in world units. The window
// layout is the world size, so no scaling happens here.
type Renderer struct {
	target *ebiten.Image
	face   font.Face
	// white is the source image for filled polygons.
	white *ebiten.Image
}

// NewRenderer creates a renderer. It draws nothing until SetTarget is called.
func NewRenderer() *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Renderer{
		face:  basicfont.Face7x13,
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// SetTarget sets the image the next frame is drawn on.
func (r *Renderer) SetTarget(dst *ebiten.Image) {
	r.target = dst
}

func rgba(c core.Color) color.RGBA {
	cr, cg, cb, ca := c.RGBA()
	return color.RGBA{R: cr, G: cg, B: cb, A: ca}
}

// DrawRect fills a rectangle.
func (r *Renderer) DrawRect(c core.Color, rect core.Rect) {
	if r.target == nil || rect.W <= 0 || rect.H <= 0 {
		return
	}
	vector.DrawFilledRect(r.target, float32(rect.X), float32(rect.Y),
		float32(rect.W), float32(rect.H), rgba(c), false)
}

// DrawPolygon fills a closed polygon.
func (r *Renderer) DrawPolygon(c core.Color, pts []core.Point) {
	if r.target == nil || len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := c.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(cr) / 255
		vs[i].ColorG = float32(cg) / 255
		vs[i].ColorB = float32(cb) / 255
		vs[i].ColorA = float32(ca) / 255
	}
	op := &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleEvenOdd}
	r.target.DrawTriangles(vs, is, r.white, op)
}

// fontScale is the magnification of the bitmap font per text size.
func fontScale(f core.Font) float64 {
	switch f {
	case core.FontLarge:
		return 3
	case core.FontHUD, core.FontMedium:
		return 2
	default:
		return 1.5
	}
}

// textOrigin returns the top-left corner of a text box of the given size
// anchored at (x, y).
func textOrigin(x, y, w, h float64, align core.Align) (float64, float64) {
	if align == core.AlignCenter {
		return x - w/2, y - h/2
	}
	return x, y
}

// DrawText draws text with the bitmap font, magnified per style.Font.
func (r *Renderer) DrawText(s string, x, y float64, style core.TextStyle) {
	if r.target == nil || s == "" {
		return
	}
	scale := fontScale(style.Font)
	b := text.BoundString(r.face, s)
	ascent := float64(r.face.Metrics().Ascent.Ceil())
	w := float64(b.Dx()) * scale
	h := float64(r.face.Metrics().Height.Ceil()) * scale
	ox, oy := textOrigin(x, y, w, h, style.Align)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, ascent)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(ox, oy)
	op.ColorScale.ScaleWithColor(rgba(style.Color))
	text.DrawWithOptions(r.target, s, r.face, op)
}

// DrawSprite draws one of the procedural sprites.
func (r *Renderer) DrawSprite(s core.Sprite, x, y float64) {
	w, h := core.SpriteSize(s)
	switch s {
	case core.SpriteBird:
		r.drawBird(x, y, w, h)
	case core.SpriteBackgroundDay:
		r.DrawRect(core.ColorSky, core.NewRect(x, y, w, h))
		for _, c := range [][3]float64{{40, 90, 70}, {220, 60, 90}, {300, 160, 60}} {
			r.DrawRect(core.ColorWhite, core.NewRect(x+c[0], y+c[1], c[2], 18))
			r.DrawRect(core.ColorWhite, core.NewRect(x+c[0]+c[2]/4, y+c[1]-10, c[2]/2, 12))
		}
	case core.SpriteBackgroundNight, core.SpriteRules, core.SpriteGameOverShooting:
		r.DrawRect(core.ColorNight, core.NewRect(x, y, w, h))
		for i := range 40 {
			sx := float64((i*97 + 13) % int(w))
			sy := float64((i*53 + 29) % int(h))
			r.DrawRect(core.ColorWhite, core.NewRect(x+sx, y+sy, 2, 2))
		}
	case core.SpriteHomepage:
		r.DrawRect(core.ColorSky, core.NewRect(x, y, w, h))
		r.DrawRect(core.ColorGreen, core.NewRect(x+20, y+h-170, 40, 120))
		r.DrawRect(core.ColorGreen, core.NewRect(x+w-60, y+h-230, 40, 180))
		r.DrawRect(core.ColorGround, core.NewRect(x, y+h-50, w, 50))
	case core.SpriteGameOverClassic:
		r.DrawRect(core.ColorBlack, core.NewRect(x, y, w, h))
	}
}

func (r *Renderer) drawBird(x, y, w, h float64) {
	r.DrawRect(core.ColorYellow, core.NewRect(x, y+h*0.15, w*0.85, h*0.7))
	r.DrawRect(core.ColorWhite, core.NewRect(x+w*0.55, y+h*0.2, w*0.2, h*0.25))
	r.DrawRect(core.ColorBlack, core.NewRect(x+w*0.65, y+h*0.25, w*0.08, h*0.12))
	r.DrawPolygon(core.ColorOrange, []core.Point{
		{X: x + w*0.8, Y: y + h*0.45},
		{X: x + w, Y: y + h*0.55},
		{X: x + w*0.8, Y: y + h*0.7},
	})
	r.DrawRect(core.ColorOrange, core.NewRect(x+w*0.1, y+h*0.45, w*0.3, h*0.2))
}

// Present is a no-op: ebiten shows the frame once Draw returns.
func (r *Renderer) Present() {}

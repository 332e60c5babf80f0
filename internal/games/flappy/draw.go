package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

const pipeCap = 10

var (
	styleTitle  = core.TextStyle{Font: core.FontLarge, Color: core.ColorYellow, Align: core.AlignCenter}
	styleButton = core.TextStyle{Font: core.FontSmall, Color: core.ColorWhite, Align: core.AlignCenter}
	styleBody   = core.TextStyle{Font: core.FontSmall, Color: core.ColorWhite, Align: core.AlignCenter}
	styleHUD    = core.TextStyle{Font: core.FontHUD, Color: core.ColorWhite, Align: core.AlignLeft}
	stylePrompt = core.TextStyle{Font: core.FontMedium, Color: core.ColorWhite, Align: core.AlignCenter}
	styleDead   = core.TextStyle{Font: core.FontLarge, Color: core.ColorRed, Align: core.AlignCenter}
)

// draw renders the active screen in layering order: background, entities,
// HUD, overlays.
func (g *Game) draw(r core.Renderer) {
	switch g.screen {
	case ScreenMenu:
		g.drawMenu(r)
	case ScreenRules:
		g.drawRules(r)
	case ScreenPlaying:
		g.drawPlaying(r)
	case ScreenGameOver:
		g.drawGameOver(r)
	}
}

func (g *Game) drawMenu(r core.Renderer) {
	r.DrawSprite(core.SpriteHomepage, 0, 0)
	r.DrawText("FLAPPY BIRD", g.tuning.WindowW/2, 120, styleTitle)
	for _, b := range []Button{ButtonClassic, ButtonShooting, ButtonRules} {
		drawButton(r, b)
	}
	r.DrawText("Q quits", g.tuning.WindowW/2, 420, styleBody)
}

func (g *Game) drawRules(r core.Renderer) {
	r.DrawSprite(core.SpriteRules, 0, 0)
	y := 70.0
	for _, line := range RulesText {
		if line != "" {
			r.DrawText(line, g.tuning.WindowW/2, y, styleBody)
		}
		y += 22
	}
	drawButton(r, ButtonBack)
}

func drawButton(r core.Renderer, b Button) {
	// One unit inset keeps adjacent buttons visually apart.
	inner := core.NewRect(b.Rect.X+1, b.Rect.Y+1, b.Rect.W-2, b.Rect.H-2)
	r.DrawRect(core.ColorOrange, inner)
	c := b.Rect.Center()
	r.DrawText(b.Label, c.X, c.Y, styleButton)
}

func (g *Game) drawPlaying(r core.Renderer) {
	s := g.session
	t := g.tuning

	bg := core.SpriteBackgroundDay
	if s.Mode == ModeShooting {
		bg = core.SpriteBackgroundNight
	}
	r.DrawSprite(bg, 0, 0)

	for _, p := range s.Pipes {
		drawPipe(r, p)
	}
	for _, st := range s.Stars {
		c := core.ColorYellow
		if st.Hit {
			c = core.ColorWhite
		}
		r.DrawPolygon(c, st.Points())
	}
	r.DrawRect(core.ColorGround, core.NewRect(0, t.WindowH-s.FloorHeight, t.WindowW, s.FloorHeight))

	r.DrawSprite(core.SpriteBird, s.Bird.X, s.Bird.Y)
	for _, b := range s.Bird.Bullets {
		r.DrawRect(core.ColorRed, b.Rect())
	}

	if !s.Started {
		r.DrawText("Press SPACE to start", t.WindowW/2, t.WindowH/2, stylePrompt)
		return
	}
	r.DrawText(fmt.Sprintf("Score: %d", s.Score), 10, 10, styleHUD)
	if s.AIEnabled {
		r.DrawText("AI", t.WindowW-40, 10, styleHUD)
	}
}

func drawPipe(r core.Renderer, p *Pipe) {
	top := p.TopRect()
	bottom := p.BottomRect()
	r.DrawRect(core.ColorGreen, top)
	r.DrawRect(core.ColorGreen, bottom)
	r.DrawRect(core.ColorLightGreen, core.NewRect(top.X, top.Bottom()-pipeCap, top.W, pipeCap))
	r.DrawRect(core.ColorLightGreen, core.NewRect(bottom.X, bottom.Y, bottom.W, pipeCap))
}

func (g *Game) drawGameOver(r core.Renderer) {
	s := g.session
	t := g.tuning

	if !g.gameOverShown {
		r.DrawRect(core.ColorBlack, core.NewRect(0, 0, t.WindowW, t.WindowH))
		r.DrawText("You're dead", t.WindowW/2, t.WindowH/2-20, styleDead)
		return
	}

	sprite := core.SpriteGameOverClassic
	if s.Mode == ModeShooting {
		sprite = core.SpriteGameOverShooting
	}
	r.DrawSprite(sprite, 0, 0)
	r.DrawText(fmt.Sprintf("Score: %d", s.Score), t.WindowW/2, 360, stylePrompt)
	r.DrawText("SPACE replay   M menu", t.WindowW/2, 400, styleBody)
}

// Package window runs the game in a desktop window with ebiten.
package window

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// Window adapts a flappy.Game to ebiten.Game.
type Window struct {
	game       *flappy.Game
	renderer   *Renderer
	inputFrame core.InputFrame
	width      int
	height     int
}

// New creates a window for a game whose renderer is r.
func New(game *flappy.Game, r *Renderer) *Window {
	t := game.Tuning()
	return &Window{
		game:       game,
		renderer:   r,
		inputFrame: core.NewInputFrame(),
		width:      int(t.WindowW),
		height:     int(t.WindowH),
	}
}

// Update gathers this tick's input and advances the game.
func (w *Window) Update() error {
	w.inputFrame.Clear()
	for _, a := range keyActions(w.game.Screen(), inpututil.IsKeyJustPressed) {
		w.inputFrame.Set(a)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		w.inputFrame.Click(float64(x), float64(y))
	}

	if !w.game.Update(w.inputFrame) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current state.
func (w *Window) Draw(screen *ebiten.Image) {
	w.renderer.SetTarget(screen)
	w.game.Draw()
}

// Layout keeps the logical screen at world size; ebiten scales it to the
// window.
func (w *Window) Layout(int, int) (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until the player quits or closes it.
func Run(w *Window, title string, scale float64, tickRate int) error {
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(w.width)*scale), int(float64(w.height)*scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(tickRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

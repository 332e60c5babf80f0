package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// binding maps a set of keys to an action on the screens where it applies.
// A nil screens list means every screen.
type binding struct {
	keys    []ebiten.Key
	action  core.Action
	screens []flappy.Screen
}

var bindings = []binding{
	{[]ebiten.Key{ebiten.KeyQ}, core.ActionQuit, nil},
	{[]ebiten.Key{ebiten.KeyDigit1, ebiten.KeyNumpad1}, core.ActionSelectClassic, []flappy.Screen{flappy.ScreenMenu}},
	{[]ebiten.Key{ebiten.KeyDigit2, ebiten.KeyNumpad2}, core.ActionSelectShooting, []flappy.Screen{flappy.ScreenMenu}},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionOpenRules, []flappy.Screen{flappy.ScreenMenu}},
	{[]ebiten.Key{ebiten.KeyB, ebiten.KeyEscape}, core.ActionCloseRules, []flappy.Screen{flappy.ScreenRules}},
	{[]ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}, core.ActionJump, []flappy.Screen{flappy.ScreenPlaying, flappy.ScreenGameOver}},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowRight}, core.ActionShoot, []flappy.Screen{flappy.ScreenPlaying}},
	{[]ebiten.Key{ebiten.KeyA}, core.ActionToggleAI, []flappy.Screen{flappy.ScreenPlaying}},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart, []flappy.Screen{flappy.ScreenGameOver}},
	{[]ebiten.Key{ebiten.KeyM}, core.ActionMenu, []flappy.Screen{flappy.ScreenGameOver}},
}

// keyActions returns the actions triggered on screen by the keys for which
// justPressed reports true, in binding order.
func keyActions(screen flappy.Screen, justPressed func(ebiten.Key) bool) []core.Action {
	var actions []core.Action
	for _, b := range bindings {
		if !appliesTo(b.screens, screen) {
			continue
		}
		for _, k := range b.keys {
			if justPressed(k) {
				actions = append(actions, b.action)
				break
			}
		}
	}
	return actions
}

func appliesTo(screens []flappy.Screen, s flappy.Screen) bool {
	if screens == nil {
		return true
	}
	for _, candidate := range screens {
		if candidate == s {
			return true
		}
	}
	return false
}

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// KeyMap holds the game's key bindings. Some keys mean different things on
// different screens, so mapping depends on the active screen.
type KeyMap struct {
	Classic  key.Binding
	Shooting key.Binding
	Rules    key.Binding
	Back     key.Binding
	Jump     key.Binding
	Shoot    key.Binding
	AI       key.Binding
	Restart  key.Binding
	Menu     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Classic: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "classic"),
		),
		Shooting: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "shooting"),
		),
		Rules: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rules"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "back"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "space", "up", "w"),
			key.WithHelp("space", "flap"),
		),
		Shoot: key.NewBinding(
			key.WithKeys("s", "right"),
			key.WithHelp("s", "shoot"),
		),
		AI: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "autopilot"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r/space", "replay"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Map translates a key press to the action it means on the given screen.
// Returns core.ActionNone for keys that do nothing there.
func (k KeyMap) Map(msg tea.KeyMsg, screen flappy.Screen) core.Action {
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit
	}

	switch screen {
	case flappy.ScreenMenu:
		switch {
		case key.Matches(msg, k.Classic):
			return core.ActionSelectClassic
		case key.Matches(msg, k.Shooting):
			return core.ActionSelectShooting
		case key.Matches(msg, k.Rules):
			return core.ActionOpenRules
		}
	case flappy.ScreenRules:
		if key.Matches(msg, k.Back) {
			return core.ActionCloseRules
		}
	case flappy.ScreenPlaying:
		switch {
		case key.Matches(msg, k.Jump):
			return core.ActionJump
		case key.Matches(msg, k.Shoot):
			return core.ActionShoot
		case key.Matches(msg, k.AI):
			return core.ActionToggleAI
		}
	case flappy.ScreenGameOver:
		switch {
		case key.Matches(msg, k.Jump):
			return core.ActionJump
		case key.Matches(msg, k.Restart):
			return core.ActionRestart
		case key.Matches(msg, k.Menu):
			return core.ActionMenu
		}
	}
	return core.ActionNone
}

// ForScreen returns a help.KeyMap listing the bindings live on a screen.
func (k KeyMap) ForScreen(screen flappy.Screen) help.KeyMap {
	return screenHelp{keys: k, screen: screen}
}

type screenHelp struct {
	keys   KeyMap
	screen flappy.Screen
}

func (h screenHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.screen {
	case flappy.ScreenMenu:
		return []key.Binding{k.Classic, k.Shooting, k.Rules, k.Quit}
	case flappy.ScreenRules:
		return []key.Binding{k.Back, k.Quit}
	case flappy.ScreenPlaying:
		return []key.Binding{k.Jump, k.Shoot, k.AI, k.Quit}
	case flappy.ScreenGameOver:
		return []key.Binding{k.Restart, k.Menu, k.Quit}
	}
	return []key.Binding{k.Quit}
}

func (h screenHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

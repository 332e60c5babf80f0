package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/audio"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

func newTestModel(t *testing.T) (Model, *flappy.Game) {
	t.Helper()
	tuning := flappy.DefaultTuning()
	canvas := NewCanvas(100, 75, tuning.WindowW, tuning.WindowH)
	game, err := flappy.New(flappy.Options{
		Renderer: canvas,
		Audio:    audio.Silent{},
		Policy:   flappy.PolicyFunc(func([]float64) int { return 0 }),
		Clock:    &core.TickClock{TickRate: 60},
		Tuning:   &tuning,
		Seed:     1,
	})
	if err != nil {
		t.Fatalf("flappy.New() failed: %v", err)
	}
	return NewModel(game, canvas, 60), game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelKeyStartsGameOnTick(t *testing.T) {
	m, game := newTestModel(t)

	m, _ = update(t, m, runeKey('1'))
	if game.Screen() != flappy.ScreenMenu {
		t.Fatal("input should only apply on the next tick")
	}

	m, cmd := update(t, m, TickMsg{})
	if game.Screen() != flappy.ScreenPlaying {
		t.Errorf("screen = %v, want playing", game.Screen())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if len(m.inputFrame.Events) != 0 {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelMouseClickSelectsMode(t *testing.T) {
	m, game := newTestModel(t)

	// Cell (53, 29) maps to world (214, 236), inside the classic button.
	m, _ = update(t, m, tea.MouseMsg{
		X:      53,
		Y:      29,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	update(t, m, TickMsg{})

	if game.Screen() != flappy.ScreenPlaying {
		t.Fatalf("screen = %v, want playing", game.Screen())
	}
	if game.Session().Mode != flappy.ModeClassic {
		t.Errorf("mode = %v, want classic", game.Session().Mode)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, runeKey('q'))
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit command produced %T, want tea.QuitMsg", cmd())
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeReservesHelpLine(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 41})
	update(t, m, TickMsg{})

	if got := m.canvas.Front().Height(); got != 40 {
		t.Errorf("canvas height = %d, want 40", got)
	}
	view := m.View()
	if got := strings.Count(view, "\n"); got != 40 {
		t.Errorf("view has %d line breaks, want 40", got)
	}
	if !strings.Contains(view, "classic") {
		t.Error("menu help should list the classic key")
	}
}

// Package flappy implements the Flappy Bird simulation: entities, obstacle
// spawning, collisions, the screen state machine and the per-tick frame loop.
// Drawing and sound go through the core.Renderer and core.AudioPlayer
// collaborators so the package runs identically in a terminal, a window, an
// SSH session or headless.
package flappy

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// RunSummary describes a finished run.
type RunSummary struct {
	Mode  Mode
	Score int
	AI    bool
	Cause Cause
	Ticks int
}

// Options configures a Game.
type Options struct {
	Renderer core.Renderer
	Audio    core.AudioPlayer
	Policy   Policy
	Clock    core.Clock
	Logger   *log.Logger
	Tuning   *Tuning    // nil uses DefaultTuning
	Rand     RandSource // nil seeds from Seed
	Seed     int64

	// OnGameOver is called once each time a run ends.
	OnGameOver func(RunSummary)
}

// Game owns the collaborators and the current session and is driven one
// tick at a time by a frontend.
type Game struct {
	renderer core.Renderer
	audio    core.AudioPlayer
	policy   Policy
	clock    core.Clock
	log      *log.Logger
	tuning   *Tuning
	rng      RandSource

	screen  Screen
	session *Session
	// gameOverShown is set once the death cue has finished and the
	// game-over music started.
	gameOverShown bool
	onGameOver    func(RunSummary)
}

// Errors returned by New when a collaborator is missing.
var (
	ErrNoRenderer = errors.New("flappy: renderer is required")
	ErrNoAudio    = errors.New("flappy: audio player is required")
	ErrNoPolicy   = errors.New("flappy: policy is required")
	ErrNoClock    = errors.New("flappy: clock is required")
)

// New creates a game on the menu screen and starts the menu music.
func New(opts Options) (*Game, error) {
	switch {
	case opts.Renderer == nil:
		return nil, ErrNoRenderer
	case opts.Audio == nil:
		return nil, ErrNoAudio
	case opts.Policy == nil:
		return nil, ErrNoPolicy
	case opts.Clock == nil:
		return nil, ErrNoClock
	}

	g := &Game{
		renderer:   opts.Renderer,
		audio:      opts.Audio,
		policy:     opts.Policy,
		clock:      opts.Clock,
		log:        opts.Logger,
		tuning:     opts.Tuning,
		rng:        opts.Rand,
		onGameOver: opts.OnGameOver,
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}
	if g.tuning == nil {
		t := DefaultTuning()
		g.tuning = &t
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(opts.Seed))
	}

	g.toMenu()
	return g, nil
}

// Screen returns the active screen.
func (g *Game) Screen() Screen {
	return g.screen
}

// Session returns the current run, or nil on the menu and rules screens.
func (g *Game) Session() *Session {
	return g.session
}

// Tuning returns the constants in use.
func (g *Game) Tuning() *Tuning {
	return g.tuning
}

// Frame runs one complete tick: input, simulation, then drawing.
// It returns false once a quit event has been seen.
func (g *Game) Frame(in core.InputFrame) bool {
	if !g.Update(in) {
		return false
	}
	g.Draw()
	return true
}

// Update dispatches input to the active screen and advances the simulation
// by one tick. It returns false when the player asked to quit.
func (g *Game) Update(in core.InputFrame) bool {
	for _, ev := range in.Events {
		if ev.Action == core.ActionQuit {
			return false
		}
		g.handle(ev)
	}
	g.step()
	return true
}

// Draw issues the draw calls for the active screen and presents the frame.
func (g *Game) Draw() {
	g.draw(g.renderer)
	g.renderer.Present()
}

func (g *Game) handle(ev core.Event) {
	if ev.Action == core.ActionClick {
		g.audio.Play(core.CueClick, false)
	}

	switch g.screen {
	case ScreenMenu:
		g.handleMenu(ev)
	case ScreenRules:
		g.handleRules(ev)
	case ScreenPlaying:
		g.handlePlaying(ev)
	case ScreenGameOver:
		g.handleGameOver(ev)
	}
}

func (g *Game) handleMenu(ev core.Event) {
	switch ev.Action {
	case core.ActionSelectClassic:
		g.audio.Play(core.CueClick, false)
		g.start(ModeClassic)
	case core.ActionSelectShooting:
		g.audio.Play(core.CueClick, false)
		g.start(ModeShooting)
	case core.ActionOpenRules:
		g.audio.Play(core.CueClick, false)
		g.toRules()
	case core.ActionClick:
		switch {
		case ButtonRules.Hit(ev.Pos):
			g.toRules()
		case ButtonClassic.Hit(ev.Pos):
			g.start(ModeClassic)
		case ButtonShooting.Hit(ev.Pos):
			g.start(ModeShooting)
		}
	}
}

func (g *Game) handleRules(ev core.Event) {
	switch ev.Action {
	case core.ActionCloseRules:
		g.toMenu()
	case core.ActionClick:
		if ButtonBack.Hit(ev.Pos) {
			g.toMenu()
		}
	}
}

func (g *Game) handlePlaying(ev core.Event) {
	s := g.session
	switch ev.Action {
	case core.ActionJump:
		if !s.Started {
			g.log.Debug("run started", "mode", s.Mode)
		}
		s.Jump()
		g.audio.Play(core.CueJump, false)
	case core.ActionShoot:
		if s.Shoot() {
			g.audio.Play(core.CueShoot, false)
		}
	case core.ActionToggleAI:
		s.SetAI(!s.AIEnabled)
		g.log.Debug("autopilot", "enabled", s.AIEnabled)
	}
}

func (g *Game) handleGameOver(ev core.Event) {
	switch ev.Action {
	case core.ActionJump, core.ActionRestart:
		g.log.Debug("replay", "mode", g.session.Mode)
		g.start(g.session.Mode)
	case core.ActionMenu:
		g.toMenu()
	}
}

func (g *Game) toMenu() {
	g.screen = ScreenMenu
	g.session = nil
	g.gameOverShown = false
	g.audio.StopAll()
	g.audio.Play(core.CueMenuMusic, true)
	g.log.Debug("screen", "to", g.screen)
}

func (g *Game) toRules() {
	g.screen = ScreenRules
	g.log.Debug("screen", "to", g.screen)
}

// start replaces the session with a fresh run in mode.
func (g *Game) start(m Mode) {
	g.screen = ScreenPlaying
	g.session = NewSession(g.tuning, m, g.rng)
	g.gameOverShown = false
	g.audio.StopAll()
	g.audio.Play(musicFor(m), true)
	g.log.Debug("mode selected", "mode", m)
}

func musicFor(m Mode) core.Cue {
	if m == ModeShooting {
		return core.CueShootingMusic
	}
	return core.CueClassicMusic
}

func (g *Game) step() {
	switch g.screen {
	case ScreenPlaying:
		g.stepPlaying()
	case ScreenGameOver:
		g.stepGameOver()
	}
}

func (g *Game) stepPlaying() {
	s := g.session
	if s.Started && s.AIEnabled {
		if consultPolicy(g.policy, s) {
			g.audio.Play(core.CueJump, false)
		}
	}

	now := g.clock.Now()
	res := s.Step(now)
	for range res.Hits {
		g.audio.Play(core.CueHit, false)
	}
	if res.Cause != CauseNone {
		g.gameOver()
	}
}

// gameOver runs the side effects of a lethal collision. The session has
// already recorded the cause and the death time.
func (g *Game) gameOver() {
	s := g.session
	g.screen = ScreenGameOver
	g.gameOverShown = false
	g.audio.StopAll()
	g.audio.Play(core.CueDeath, false)
	g.log.Info("run finished", "mode", s.Mode, "score", s.Score, "cause", s.Cause, "ai", s.AIUsed)

	if g.onGameOver != nil {
		g.onGameOver(RunSummary{
			Mode:  s.Mode,
			Score: s.Score,
			AI:    s.AIUsed,
			Cause: s.Cause,
			Ticks: s.Ticks,
		})
	}
}

func (g *Game) stepGameOver() {
	if g.gameOverShown || !g.deathCueDone() {
		return
	}
	g.gameOverShown = true
	g.audio.Play(core.CueGameOver, true)
}

// deathCueDone reports whether the death sound has had time to finish.
func (g *Game) deathCueDone() bool {
	return g.clock.Now()-g.session.DeathAt >= g.audio.Length(core.CueDeath)
}

package flappy

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

type played struct {
	cue  core.Cue
	loop bool
}

type fakeAudio struct {
	plays []played
	stops int
	death time.Duration
}

func (a *fakeAudio) Play(c core.Cue, loop bool) {
	a.plays = append(a.plays, played{c, loop})
}

func (a *fakeAudio) StopAll() {
	a.stops++
}

func (a *fakeAudio) Length(c core.Cue) time.Duration {
	if c == core.CueDeath {
		return a.death
	}
	return time.Second
}

func (a *fakeAudio) count(c core.Cue) int {
	n := 0
	for _, p := range a.plays {
		if p.cue == c {
			n++
		}
	}
	return n
}

func (a *fakeAudio) last() played {
	return a.plays[len(a.plays)-1]
}

type fakeRenderer struct {
	sprites  []core.Sprite
	texts    []string
	presents int
}

func (r *fakeRenderer) DrawSprite(s core.Sprite, _, _ float64) {
	r.sprites = append(r.sprites, s)
}

func (r *fakeRenderer) DrawRect(core.Color, core.Rect) {}

func (r *fakeRenderer) DrawPolygon(core.Color, []core.Point) {}

func (r *fakeRenderer) DrawText(text string, _, _ float64, _ core.TextStyle) {
	r.texts = append(r.texts, text)
}

func (r *fakeRenderer) Present() {
	r.presents++
}

func (r *fakeRenderer) reset() {
	r.sprites = nil
	r.texts = nil
}

type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Now() time.Duration {
	return c.now
}

type harness struct {
	game   *Game
	audio  *fakeAudio
	render *fakeRenderer
	clock  *fakeClock
	calls  [][]float64
	action int
	runs   []RunSummary
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		audio:  &fakeAudio{death: 1200 * time.Millisecond},
		render: &fakeRenderer{},
		clock:  &fakeClock{},
	}
	g, err := New(Options{
		Renderer: h.render,
		Audio:    h.audio,
		Policy: PolicyFunc(func(obs []float64) int {
			h.calls = append(h.calls, slices.Clone(obs))
			return h.action
		}),
		Clock:      h.clock,
		Rand:       &scriptedRand{vals: []int{100}},
		OnGameOver: func(r RunSummary) { h.runs = append(h.runs, r) },
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	h.game = g
	return h
}

func (h *harness) press(actions ...core.Action) bool {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return h.game.Frame(in)
}

func (h *harness) click(x, y float64) {
	in := core.NewInputFrame()
	in.Click(x, y)
	h.game.Frame(in)
}

// kill puts the bird on the floor and runs one tick.
func (h *harness) kill() {
	h.game.Session().Bird.Y = 590
	h.press()
}

func TestNewRequiresCollaborators(t *testing.T) {
	full := Options{
		Renderer: core.NopRenderer{},
		Audio:    &fakeAudio{},
		Policy:   PolicyFunc(func([]float64) int { return 0 }),
		Clock:    &fakeClock{},
	}

	tests := []struct {
		name   string
		mutate func(*Options)
		want   error
	}{
		{"renderer", func(o *Options) { o.Renderer = nil }, ErrNoRenderer},
		{"audio", func(o *Options) { o.Audio = nil }, ErrNoAudio},
		{"policy", func(o *Options) { o.Policy = nil }, ErrNoPolicy},
		{"clock", func(o *Options) { o.Clock = nil }, ErrNoClock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := full
			tt.mutate(&opts)
			if _, err := New(opts); !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := New(full); err != nil {
		t.Errorf("New() with every collaborator: %v", err)
	}
}

func TestGameStartsOnMenu(t *testing.T) {
	h := newHarness(t)

	if h.game.Screen() != ScreenMenu {
		t.Fatalf("Screen = %v, want menu", h.game.Screen())
	}
	if h.audio.last() != (played{core.CueMenuMusic, true}) {
		t.Errorf("last cue = %+v, want looping menu music", h.audio.last())
	}
}

func TestMenuKeySelectsMode(t *testing.T) {
	tests := []struct {
		action core.Action
		mode   Mode
		floor  float64
		music  core.Cue
	}{
		{core.ActionSelectClassic, ModeClassic, 50, core.CueClassicMusic},
		{core.ActionSelectShooting, ModeShooting, 80, core.CueShootingMusic},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			h := newHarness(t)
			stops := h.audio.stops
			h.press(tt.action)

			if h.game.Screen() != ScreenPlaying {
				t.Fatalf("Screen = %v, want playing", h.game.Screen())
			}
			s := h.game.Session()
			if s.Mode != tt.mode || s.FloorHeight != tt.floor || s.Started {
				t.Errorf("session = mode %v floor %v started %v", s.Mode, s.FloorHeight, s.Started)
			}
			if h.audio.stops != stops+1 {
				t.Error("music was not stopped on mode change")
			}
			if h.audio.last() != (played{tt.music, true}) {
				t.Errorf("last cue = %+v, want looping %v", h.audio.last(), tt.music)
			}
			if h.audio.count(core.CueClick) != 1 {
				t.Errorf("click played %d times, want 1", h.audio.count(core.CueClick))
			}
		})
	}
}

func TestMenuClickRegions(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		screen Screen
		mode   Mode
	}{
		{"classic", 200, 235, ScreenPlaying, ModeClassic},
		{"shooting", 300, 265, ScreenPlaying, ModeShooting},
		{"rules", 200, 340, ScreenRules, ModeUnset},
		{"classic left edge", 75, 235, ScreenMenu, ModeUnset},
		{"between classic and shooting", 200, 250, ScreenMenu, ModeUnset},
		{"empty space", 20, 20, ScreenMenu, ModeUnset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.click(tt.x, tt.y)

			if h.game.Screen() != tt.screen {
				t.Fatalf("Screen = %v, want %v", h.game.Screen(), tt.screen)
			}
			if tt.mode != ModeUnset && h.game.Session().Mode != tt.mode {
				t.Errorf("Mode = %v, want %v", h.game.Session().Mode, tt.mode)
			}
			if h.audio.count(core.CueClick) != 1 {
				t.Errorf("click played %d times, want 1", h.audio.count(core.CueClick))
			}
		})
	}
}

func TestRulesScreen(t *testing.T) {
	h := newHarness(t)
	h.press(core.ActionOpenRules)
	if h.game.Screen() != ScreenRules {
		t.Fatalf("Screen = %v, want rules", h.game.Screen())
	}

	// Only closing does anything here.
	h.press(core.ActionJump, core.ActionSelectClassic)
	if h.game.Screen() != ScreenRules {
		t.Fatalf("Screen = %v after ignored input, want rules", h.game.Screen())
	}

	h.click(300, 355)
	if h.game.Screen() != ScreenRules {
		t.Fatalf("click outside Back left the rules page")
	}
	h.click(200, 355)
	if h.game.Screen() != ScreenMenu {
		t.Fatalf("Screen = %v after Back, want menu", h.game.Screen())
	}

	h.press(core.ActionOpenRules)
	h.press(core.ActionCloseRules)
	if h.game.Screen() != ScreenMenu {
		t.Fatalf("Screen = %v after close, want menu", h.game.Screen())
	}
}

func TestMenuIgnoresGameplayInput(t *testing.T) {
	h := newHarness(t)
	h.press(core.ActionJump, core.ActionShoot, core.ActionToggleAI, core.ActionRestart)

	if h.game.Screen() != ScreenMenu || h.game.Session() != nil {
		t.Fatalf("menu reacted to gameplay input")
	}
}

func TestQuitStopsFrame(t *testing.T) {
	h := newHarness(t)
	presents := h.render.presents
	if h.press(core.ActionQuit) {
		t.Fatal("Frame returned true after quit")
	}
	if h.render.presents != presents {
		t.Error("frame drawn after quit")
	}
	if !h.press() {
		t.Fatal("Frame returned false without quit")
	}
}

func TestPlayingJumpAndShootCues(t *testing.T) {
	h := newHarness(t)
	h.press(core.ActionSelectShooting)
	h.press(core.ActionJump)

	s := h.game.Session()
	if !s.Started {
		t.Fatal("jump did not start the run")
	}
	if h.audio.count(core.CueJump) != 1 {
		t.Errorf("jump cue played %d times, want 1", h.audio.count(core.CueJump))
	}

	h.press(core.ActionShoot)
	if h.audio.count(core.CueShoot) != 1 || len(s.Bird.Bullets) != 1 {
		t.Errorf("shoot: cue=%d bullets=%d, want 1 and 1", h.audio.count(core.CueShoot), len(s.Bird.Bullets))
	}
}

func TestClassicShootIsIgnored(t *testing.T) {
	h := newHarness(t)
	h.press(core.ActionSelectClassic)
	h.press(core.ActionJump, core.ActionShoot)

	if h.audio.count(core.CueShoot) != 0 || len(h.game.Session().Bird.Bullets) != 0 {
		t.Error("classic mode fired a bullet")
	}
}

func TestPolicyNotConsultedBeforeStart(t *testing.T) {
	h := newHarness(t)
	h.action = 1
	h.press(core.ActionSelectClassic)
	h.press(core.ActionToggleAI)
	for range 5 {
		h.press()
	}

	if len(h.calls) != 0 {
		t.Errorf("policy called %d times before the first jump", len(h.calls))
	}
	if h.game.Session().Started {
		t.Error("policy started the run")
	}
}

// With no pipes on screen the autopilot sees zeroed obstacle fields and still flaps.
func TestPolicyWithoutPipes(t *testing.T) {
	h := newHarness(t)
	h.press(core.ActionSelectClassic)
	h.press(core.ActionJump)
	s := h.game.Session()
	s.Pipes = nil

	h.action = 1
	h.press(core.ActionToggleAI)

	if len(h.calls) != 1 {
		t.Fatalf("policy called %d times, want 1", len(h.calls))
	}
	obs := h.calls[0]
	if len(obs) != ObservationSize || obs[2] != 0 || obs[4] != 0 {
		t.Errorf("observation = %v, want obstacle x and reference y of 0", obs)
	}
	if s.Bird.Velocity != -7.5 {
		t.Errorf("Velocity = %v, want -7.5 after policy jump", s.Bird.Velocity)
	}
	if !s.AIUsed {
		t.Error("AIUsed not recorded")
	}
}

func TestPolicyStopsAtGameOver(t *testing.T) {
	h := newHarness(t)
	h.press(core.ActionSelectClassic)
	h.press(core.ActionJump)
	h.press(core.ActionToggleAI)
	calls := len(h.calls)

	h.kill()
	if h.game.Screen() != ScreenGameOver {
		t.Fatalf("Screen = %v, want game over", h.game.Screen())
	}
	if h.game.Session().AIEnabled {
		t.Error("autopilot still enabled after death")
	}
	for range 5 {
		h.press()
	}
	if len(h.calls) != calls+1 {
		t.Errorf("policy called %d times, want %d", len(h.calls), calls+1)
	}
}

func TestPolicyBadActionPanics(t *testing.T) {
	h := newHarness(t)
	h.press(core.ActionSelectClassic)
	h.press(core.ActionJump)
	h.action = 7

	defer func() {
		if recover() == nil {
			t.Error("expected panic for an out-of-range action")
		}
	}()
	h.press(core.ActionToggleAI)
}

// A death at T with a 1.2s death cue shows only the dead text
// until T+1.2s, then the game-over screen with looping music.
func TestGameOverDeathGate(t *testing.T) {
	h := newHarness(t)
	h.press(core.ActionSelectClassic)
	h.press(core.ActionJump)

	h.clock.now = 10 * time.Second
	stops := h.audio.stops
	h.kill()

	if h.game.Screen() != ScreenGameOver {
		t.Fatalf("Screen = %v, want game over", h.game.Screen())
	}
	if h.audio.stops != stops+1 {
		t.Error("music not stopped on death")
	}
	if h.audio.count(core.CueDeath) != 1 {
		t.Errorf("death cue played %d times, want 1", h.audio.count(core.CueDeath))
	}

	steps := []struct {
		at       time.Duration
		gameOver bool
	}{
		{10 * time.Second, false},
		{11*time.Second + 199*time.Millisecond, false},
		{11*time.Second + 200*time.Millisecond, true},
		{15 * time.Second, true},
	}
	for _, st := range steps {
		h.clock.now = st.at
		h.render.reset()
		h.press()

		shown := slices.Contains(h.render.sprites, core.SpriteGameOverClassic)
		if shown != st.gameOver {
			t.Errorf("at %v: game-over image shown = %v, want %v", st.at, shown, st.gameOver)
		}
		dead := slices.Contains(h.render.texts, "You're dead")
		if dead == st.gameOver {
			t.Errorf("at %v: dead text shown = %v, want %v", st.at, dead, !st.gameOver)
		}
		want := 0
		if st.gameOver {
			want = 1
		}
		if n := h.audio.count(core.CueGameOver); n != want {
			t.Errorf("at %v: game-over music started %d times, want %d", st.at, n, want)
		}
	}

	if h.audio.count(core.CueDeath) != 1 {
		t.Errorf("death cue played %d times, want 1", h.audio.count(core.CueDeath))
	}
}

func TestGameOverReportsRun(t *testing.T) {
	h := newHarness(t)
	h.press(core.ActionSelectClassic)
	h.press(core.ActionJump)
	h.game.Session().Score = 4
	h.kill()
	h.press()
	h.press()

	if len(h.runs) != 1 {
		t.Fatalf("OnGameOver called %d times, want 1", len(h.runs))
	}
	got := h.runs[0]
	if got.Mode != ModeClassic || got.Score != 4 || got.Cause != CauseFloor || got.AI {
		t.Errorf("run = %+v", got)
	}
}

func TestGameOverReplay(t *testing.T) {
	for _, action := range []core.Action{core.ActionJump, core.ActionRestart} {
		t.Run(action.String(), func(t *testing.T) {
			h := newHarness(t)
			h.press(core.ActionSelectShooting)
			h.press(core.ActionJump)
			h.game.Session().Score = 3
			old := h.game.Session()
			h.kill()

			h.press(action)
			s := h.game.Session()
			if h.game.Screen() != ScreenPlaying || s == old {
				t.Fatalf("replay did not start a fresh run")
			}
			if s.Mode != ModeShooting || s.Score != 0 || s.Started || len(s.Stars) != 0 {
				t.Errorf("replayed session = mode %v score %d started %v stars %d",
					s.Mode, s.Score, s.Started, len(s.Stars))
			}
			if h.audio.last() != (played{core.CueShootingMusic, true}) {
				t.Errorf("last cue = %+v, want looping shooting music", h.audio.last())
			}
		})
	}
}

func TestGameOverToMenu(t *testing.T) {
	h := newHarness(t)
	h.press(core.ActionSelectClassic)
	h.press(core.ActionJump)
	h.kill()

	h.press(core.ActionMenu)
	if h.game.Screen() != ScreenMenu || h.game.Session() != nil {
		t.Fatalf("Screen = %v, want menu with no session", h.game.Screen())
	}
	if h.audio.last() != (played{core.CueMenuMusic, true}) {
		t.Errorf("last cue = %+v, want looping menu music", h.audio.last())
	}
}

func TestShootingHitCue(t *testing.T) {
	h := newHarness(t)
	h.press(core.ActionSelectShooting)
	h.press(core.ActionJump)
	s := h.game.Session()
	s.Stars = []*Star{NewStar(h.game.Tuning(), 300, 300)}
	s.Bird.Bullets = []Bullet{{X: 290, Y: 310, Speed: 10, W: 10, H: 5}}

	h.press()
	if h.audio.count(core.CueHit) != 1 {
		t.Errorf("hit cue played %d times, want 1", h.audio.count(core.CueHit))
	}
}

func TestDrawLayers(t *testing.T) {
	h := newHarness(t)
	h.press(core.ActionSelectClassic)

	if !slices.Contains(h.render.texts, "Press SPACE to start") {
		t.Errorf("texts = %v, want start prompt", h.render.texts)
	}

	h.render.reset()
	h.press(core.ActionJump)
	if h.render.sprites[0] != core.SpriteBackgroundDay {
		t.Errorf("first sprite = %v, want day background", h.render.sprites[0])
	}
	if !slices.Contains(h.render.texts, "Score: 0") {
		t.Errorf("texts = %v, want score line", h.render.texts)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (int, int) {
		clock := &core.TickClock{TickRate: 60}
		g, err := New(Options{
			Renderer: core.NopRenderer{},
			Audio:    &fakeAudio{},
			Policy:   PolicyFunc(func([]float64) int { return 0 }),
			Clock:    clock,
			Seed:     12345,
		})
		if err != nil {
			t.Fatal(err)
		}
		in := core.NewInputFrame()
		in.Set(core.ActionSelectClassic)
		g.Frame(in)
		for i := range 2000 {
			in := core.NewInputFrame()
			if i%15 == 0 {
				in.Set(core.ActionJump)
			}
			g.Frame(in)
			clock.Advance()
			if g.Screen() == ScreenGameOver {
				break
			}
		}
		return g.Session().Score, g.Session().Ticks
	}

	s1, t1 := run()
	s2, t2 := run()
	if s1 != s2 || t1 != t2 {
		t.Errorf("runs differ: score %d/%d ticks %d/%d", s1, s2, t1, t2)
	}
}

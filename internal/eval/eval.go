// Package eval plays headless episodes with a policy at the controls and
// reports how well it does. Episodes run through the same Game as the
// interactive frontends, with a no-op renderer, silent audio and a clock
// that advances one tick per frame.
package eval

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/audio"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// Options configures an evaluation.
type Options struct {
	Policy   flappy.Policy
	Mode     flappy.Mode // ModeUnset means classic
	Episodes int
	MaxTicks int   // Episodes still alive after this many ticks are cut off
	Seed     int64 // Episode i is seeded with Seed+i
	TickRate int
	Logger   *log.Logger
	// OnRun, if set, receives the summary of every episode that ended in a
	// collision.
	OnRun func(flappy.RunSummary)
}

// Episode is the outcome of one evaluated run.
type Episode struct {
	Seed   int64
	Score  int
	Ticks  int
	Cause  flappy.Cause
	Capped bool // Cut off by MaxTicks while still alive
}

// Report aggregates an evaluation.
type Report struct {
	Episodes  []Episode
	MeanScore float64
	MeanTicks float64
	Best      int
}

// ErrNoEpisodes is returned when Options.Episodes is not positive.
var ErrNoEpisodes = errors.New("eval: episodes must be positive")

// Run plays opts.Episodes episodes one after the other. It stops early with
// ctx's error if ctx is cancelled between episodes.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Episodes <= 0 {
		return Report{}, ErrNoEpisodes
	}
	if opts.Policy == nil {
		return Report{}, flappy.ErrNoPolicy
	}
	if opts.Mode == flappy.ModeUnset {
		opts.Mode = flappy.ModeClassic
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.MaxTicks <= 0 {
		opts.MaxTicks = 10000
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	var rep Report
	for i := range opts.Episodes {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		ep, err := runEpisode(opts, opts.Seed+int64(i))
		if err != nil {
			return rep, fmt.Errorf("eval: episode %d: %w", i, err)
		}
		opts.Logger.Info("episode",
			"n", i+1,
			"seed", ep.Seed,
			"score", ep.Score,
			"ticks", ep.Ticks,
			"cause", ep.Cause,
			"capped", ep.Capped,
		)
		rep.add(ep)
	}
	return rep, nil
}

func (r *Report) add(ep Episode) {
	r.Episodes = append(r.Episodes, ep)
	if ep.Score > r.Best {
		r.Best = ep.Score
	}
	n := float64(len(r.Episodes))
	r.MeanScore += (float64(ep.Score) - r.MeanScore) / n
	r.MeanTicks += (float64(ep.Ticks) - r.MeanTicks) / n
}

func runEpisode(opts Options, seed int64) (Episode, error) {
	var summary *flappy.RunSummary
	clock := &core.TickClock{TickRate: opts.TickRate}
	game, err := flappy.New(flappy.Options{
		Renderer: core.NopRenderer{},
		Audio:    audio.Silent{},
		Policy:   opts.Policy,
		Clock:    clock,
		Logger:   opts.Logger,
		Seed:     seed,
		OnGameOver: func(s flappy.RunSummary) {
			summary = &s
			if opts.OnRun != nil {
				opts.OnRun(s)
			}
		},
	})
	if err != nil {
		return Episode{}, err
	}

	// Pick the mode, then hand over to the policy with the opening flap.
	in := core.NewInputFrame()
	in.Set(selectAction(opts.Mode))
	game.Update(in)
	in.Clear()
	in.Set(core.ActionToggleAI)
	in.Set(core.ActionJump)
	clock.Advance()
	game.Update(in)
	in.Clear()

	for summary == nil && game.Session().Ticks < opts.MaxTicks {
		clock.Advance()
		game.Update(in)
	}

	if summary == nil {
		s := game.Session()
		return Episode{Seed: seed, Score: s.Score, Ticks: s.Ticks, Capped: true}, nil
	}
	return Episode{Seed: seed, Score: summary.Score, Ticks: summary.Ticks, Cause: summary.Cause}, nil
}

func selectAction(m flappy.Mode) core.Action {
	if m == flappy.ModeShooting {
		return core.ActionSelectShooting
	}
	return core.ActionSelectClassic
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-arcade/internal/audio"
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/platform/window"
	"github.com/vovakirdan/flappy-arcade/internal/policy"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagMute   bool
	flagWindow bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game on its menu.

Controls:
  1 / 2      - Classic / shooting mode (menu)
  R          - Rules (menu), replay (after game over)
  Space/Up   - Flap; the first flap starts the run
  S          - Shoot (shooting mode)
  A          - Toggle the autopilot
  M          - Back to the menu (after game over)
  Q/Ctrl+C   - Quit

The mouse works on the menu buttons too.

Examples:
  flappy play
  flappy play --window
  flappy play --mute --seed 42
  flappy play --policy mlp --weights ./net.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of using the terminal")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// The terminal frontend owns stdout, so logs only go to a file there.
	var fallback io.Writer = io.Discard
	if flagWindow {
		fallback = os.Stderr
	}
	logger, closeLog, err := newLogger(settings.Log, "flappy", fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	tuning := flappy.DefaultTuning()
	pol, err := policy.New(settings.Policy, &tuning)
	if err != nil {
		return err
	}

	player, closeAudio, err := openAudio(settings.Audio, flagMute)
	if err != nil {
		return err
	}
	defer closeAudio()

	store, err := storage.Open(settings.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
	}

	opts := flappy.Options{
		Audio:      player,
		Policy:     pol,
		Clock:      core.NewWallClock(),
		Logger:     logger,
		Tuning:     &tuning,
		Seed:       seedFrom(settings),
		OnGameOver: store.Recorder(logger),
	}

	if flagWindow {
		return playWindow(opts, settings)
	}
	return playTerminal(opts, settings)
}

// openAudio returns the synthesizer, or the silent player when sound is
// off. A synthesizer that cannot open the speaker is a fatal error.
func openAudio(s config.AudioSettings, mute bool) (core.AudioPlayer, func(), error) {
	if mute || !s.Enabled {
		return audio.Silent{}, func() {}, nil
	}
	synth := audio.NewSynth(s)
	if err := synth.Open(); err != nil {
		return nil, nil, fmt.Errorf("%w (use --mute to play without sound)", err)
	}
	return synth, synth.Close, nil
}

func playTerminal(opts flappy.Options, settings config.Settings) error {
	cols, rows := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cols, rows = w, h
	}

	canvas := tui.NewCanvas(cols, rows-1, opts.Tuning.WindowW, opts.Tuning.WindowH)
	opts.Renderer = canvas
	game, err := flappy.New(opts)
	if err != nil {
		return err
	}

	if err := tui.Run(tui.NewModel(game, canvas, settings.Game.TickRate)); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

func playWindow(opts flappy.Options, settings config.Settings) error {
	r := window.NewRenderer()
	opts.Renderer = r
	game, err := flappy.New(opts)
	if err != nil {
		return err
	}

	opts.Logger.Info("opening window", "scale", settings.Window.Scale)
	if err := window.Run(window.New(game, r), "Flappy Bird", settings.Window.Scale, settings.Game.TickRate); err != nil {
		return fmt.Errorf("error running window: %w", err)
	}
	return nil
}

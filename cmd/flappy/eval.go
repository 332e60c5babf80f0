package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/eval"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/policy"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagEpisodes int
	flagMaxTicks int
	flagEvalMode string
	flagRecord   bool
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Measure the autopilot over headless episodes",
	Long: `Let the configured autopilot play a number of episodes without any
window, terminal or sound, then report the mean score and survival time.

Episode i uses seed --seed + i, so results are reproducible.

Examples:
  flappy eval
  flappy eval --episodes 100 --seed 1
  flappy eval --policy mlp --weights ./net.yaml --max-ticks 20000
  flappy eval --record   # also store each run in the run log`,
	Args: cobra.NoArgs,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().IntVar(&flagEpisodes, "episodes", 10, "Number of episodes")
	evalCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 10000, "Cut an episode off after this many ticks")
	evalCmd.Flags().StringVar(&flagEvalMode, "mode", "classic", "Mode to evaluate: classic or shooting")
	evalCmd.Flags().BoolVar(&flagRecord, "record", false, "Store every finished episode in the run log")
}

func runEval(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	mode, err := parseMode(flagEvalMode)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(settings.Log, "flappy-eval", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	tuning := flappy.DefaultTuning()
	pol, err := policy.New(settings.Policy, &tuning)
	if err != nil {
		return err
	}

	opts := eval.Options{
		Policy:   pol,
		Mode:     mode,
		Episodes: flagEpisodes,
		MaxTicks: flagMaxTicks,
		Seed:     settings.Game.Seed,
		TickRate: settings.Game.TickRate,
		Logger:   logger,
	}
	if flagRecord {
		store, err := storage.Open(settings.Storage.DBPath)
		if err != nil {
			return fmt.Errorf("error opening run log: %w", err)
		}
		defer store.Close()
		opts.OnRun = store.Recorder(logger)
	}

	rep, err := eval.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	capped := 0
	for _, ep := range rep.Episodes {
		if ep.Capped {
			capped++
		}
	}
	fmt.Printf("Policy:     %s\n", settings.Policy.Kind)
	fmt.Printf("Mode:       %s\n", mode)
	fmt.Printf("Episodes:   %d (%d reached the tick cap)\n", len(rep.Episodes), capped)
	fmt.Printf("Mean score: %.2f\n", rep.MeanScore)
	fmt.Printf("Mean ticks: %.1f\n", rep.MeanTicks)
	fmt.Printf("Best score: %d\n", rep.Best)
	return nil
}

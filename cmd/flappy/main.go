// flappy is Flappy Bird for the terminal, a desktop window, or SSH, with a
// classic mode, a shooting mode and an autopilot.
//
// Usage:
//
//	flappy play              - Play in the terminal (--window for a desktop window)
//	flappy serve             - Start SSH server for remote play
//	flappy scores [mode]     - Show the best runs
//	flappy eval              - Let the autopilot play headless episodes
//
// Global flags:
//
//	--config <path>   - Settings file (default search: ~/.flappy/config.yaml, ./configs/flappy.yaml)
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.flappy/runs.db)
//	--log-file <path> - Write logs to a file
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagPolicy  string
	flagWeights string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy Bird with two modes: classic pipes, and shooting stars.
Press A during a run to hand control to the autopilot.

Available commands:
  play     - Play in the terminal or a desktop window
  serve    - Start SSH server for remote play
  scores   - View the best runs
  eval     - Measure the autopilot over headless episodes

Examples:
  flappy play
  flappy play --window
  flappy serve --ssh :2222
  flappy scores classic
  flappy eval --episodes 20 --policy mlp --weights ./net.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to settings YAML")
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.flappy/runs.db", "Path to run log database")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagPolicy, "policy", "heuristic", "Autopilot: heuristic or mlp")
	pf.StringVar(&flagWeights, "weights", "", "Weights YAML for the mlp autopilot")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(evalCmd)
}

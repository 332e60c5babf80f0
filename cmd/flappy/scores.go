package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [classic|shooting]",
	Short: "Show the best runs",
	Long: `Display the best runs per mode.

In a terminal this opens an interactive table; use Tab to switch modes.
With --plain, or when output is not a terminal, the top runs are printed.

Examples:
  flappy scores
  flappy scores shooting --plain
  flappy scores --limit 25 > runs.txt`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"classic", "shooting"},
	RunE:      runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print per mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	modes := []flappy.Mode{flappy.ModeClassic, flappy.ModeShooting}
	if len(args) == 1 {
		m, err := parseMode(args[0])
		if err != nil {
			return err
		}
		modes = []flappy.Mode{m}
	}

	store, err := storage.Open(settings.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("error opening run log: %w", err)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		_, err := tui.RunScoreboard(store, width, height)
		return err
	}

	for i, m := range modes {
		if i > 0 {
			fmt.Println()
		}
		if err := printRuns(os.Stdout, store, m, flagLimit); err != nil {
			return err
		}
	}
	return nil
}

func parseMode(s string) (flappy.Mode, error) {
	switch s {
	case "classic":
		return flappy.ModeClassic, nil
	case "shooting":
		return flappy.ModeShooting, nil
	}
	return flappy.ModeUnset, fmt.Errorf("unknown mode %q (want classic or shooting)", s)
}

// printRuns writes the top runs and the totals of one mode.
func printRuns(w io.Writer, store *storage.Store, m flappy.Mode, limit int) error {
	runs, err := store.TopRuns(m.String(), limit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Fprintf(w, "Best runs - %s\n\n", m)
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-6s  %-3s  %-8s  %s\n", "Rank", "Score", "AI", "Cause", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-3s  %-8s  %s\n", "----", "-----", "--", "-----", "----")

	for i, r := range runs {
		ai := ""
		if r.AI {
			ai = "yes"
		}
		fmt.Fprintf(w, "  %-4d  %-6d  %-3s  %-8s  %s\n",
			i+1, r.Score, ai, r.Cause, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.ModeStats(m.String())
	if err == nil {
		fmt.Fprintf(w, "\nRuns: %d  Best: %d  Mean: %.1f\n", stats.Runs, stats.Best, stats.MeanScore)
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

// loadSettings loads the settings file and applies the flags the user set
// explicitly on top of it.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	s, err := config.Load(flagConfig)
	if err != nil {
		return config.Settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		s.Game.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		s.Game.Seed = flagSeed
	}
	if flags.Changed("db") {
		s.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-file") {
		s.Log.File = flagLogFile
	}
	if flags.Changed("policy") {
		s.Policy.Kind = flagPolicy
	}
	if flags.Changed("weights") {
		s.Policy.Weights = flagWeights
	}

	if err := s.Validate(); err != nil {
		return config.Settings{}, err
	}
	return s, nil
}

// newLogger builds the logger described by settings. Without a log file it
// writes to fallback, which is io.Discard for frontends that own the terminal.
// The returned function closes the log file.
func newLogger(s config.LogSettings, prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	out, closeFn := fallback, func() {}
	if s.File != "" {
		f, err := os.OpenFile(s.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if s.Level != "" {
		level, err := log.ParseLevel(s.Level)
		if err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("invalid log level %q: %w", s.Level, err)
		}
		logger.SetLevel(level)
	}
	return logger, closeFn, nil
}

// seedFrom returns the configured seed, or a time-based one for 0.
func seedFrom(s config.Settings) int64 {
	if s.Game.Seed != 0 {
		return s.Game.Seed
	}
	return time.Now().UnixNano()
}

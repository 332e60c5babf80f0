package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// Recorder returns a flappy.Options.OnGameOver hook that saves every
// finished run. Saving is best-effort: failures are logged and the game
// carries on. A nil store yields a hook that only logs.
func (s *Store) Recorder(logger *log.Logger) func(flappy.RunSummary) {
	return func(sum flappy.RunSummary) {
		if s == nil {
			logger.Debug("run not recorded, no store", "mode", sum.Mode, "score", sum.Score)
			return
		}
		id, err := s.SaveRun(RunFromSummary(sum))
		if err != nil {
			logger.Warn("could not record run", "error", err)
			return
		}
		logger.Debug("run recorded", "id", id, "mode", sum.Mode, "score", sum.Score)
	}
}

// RunFromSummary converts a game's run summary to a log row.
func RunFromSummary(sum flappy.RunSummary) Run {
	return Run{
		Mode:  sum.Mode.String(),
		Score: sum.Score,
		AI:    sum.AI,
		Cause: sum.Cause.String(),
		Ticks: sum.Ticks,
	}
}

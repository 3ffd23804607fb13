package storage

import "github.com/charmbracelet/log"

// Recorder returns a game-over hook that saves each finished run.
// Saving is best-effort: failures are logged and play continues.
// Runs scoring zero are not recorded. A nil Store yields a no-op hook.
func (s *Store) Recorder(gameID string, seed int64, logger *log.Logger) func(score int) {
	if logger == nil {
		logger = log.Default()
	}
	return func(score int) {
		if s == nil || score <= 0 {
			return
		}

		rank, err := s.Rank(gameID, score)
		if err != nil {
			logger.Warn("could not rank score", "game", gameID, "err", err)
		}

		if _, err := s.SaveRun(Run{GameID: gameID, Score: score, Seed: seed}); err != nil {
			logger.Warn("could not save score", "game", gameID, "score", score, "err", err)
			return
		}
		logger.Info("run recorded", "game", gameID, "score", score, "rank", rank)
	}
}

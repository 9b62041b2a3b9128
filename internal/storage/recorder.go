package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout/internal/core"
)

// ScoreSaver is the part of Store a Recorder needs.
type ScoreSaver interface {
	SaveScore(player string, score int, outcome string) (int64, error)
}

// Recorder watches the per-frame game summary and saves each finished game
// exactly once. A nil saver turns it into a no-op.
type Recorder struct {
	saver  ScoreSaver
	player string
	logger *log.Logger
	saved  bool
}

// NewRecorder creates a recorder saving games under player.
func NewRecorder(saver ScoreSaver, player string, logger *log.Logger) *Recorder {
	if player == "" {
		player = "anonymous"
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{saver: saver, player: player, logger: logger}
}

// Observe is called after every frame. Games that end with a zero score
// are not recorded.
func (r *Recorder) Observe(state core.GameState) {
	if !state.GameOver {
		r.saved = false
		return
	}
	if r.saved {
		return
	}
	r.saved = true

	if r.saver == nil || state.Score <= 0 {
		return
	}
	id, err := r.saver.SaveScore(r.player, state.Score, state.Phase)
	if err != nil {
		r.logger.Warn("could not save score", "player", r.player, "score", state.Score, "err", err)
		return
	}
	r.logger.Info("score saved", "id", id, "player", r.player, "score", state.Score, "outcome", state.Phase)
}

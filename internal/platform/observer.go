// Package platform holds what every frontend shares: reacting to the events
// a game step reports.
package platform

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-attack/internal/core"
)

// CuePlayer plays a short sound for an event kind.
type CuePlayer interface {
	Play(kind core.EventKind)
}

// Observer logs step events and forwards them to an optional cue player.
type Observer struct {
	gameID string
	logger *log.Logger
	cues   CuePlayer
}

// NewObserver creates an observer. A nil logger discards output and a nil
// cue player keeps the game silent.
func NewObserver(gameID string, logger *log.Logger, cues CuePlayer) *Observer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Observer{
		gameID: gameID,
		logger: logger.With("game", gameID),
		cues:   cues,
	}
}

// Observe handles the events of one step.
func (o *Observer) Observe(res core.StepResult) {
	for _, ev := range res.Events {
		switch ev.Kind {
		case core.EventLevelUp:
			o.logger.Info("level up", "level", ev.Level, "tick", ev.Tick, "score", res.State.Score)
		case core.EventGameOver:
			o.logger.Info("game over", "level", ev.Level, "tick", ev.Tick, "score", res.State.Score)
		default:
			o.logger.Debug(ev.Kind.String(), "level", ev.Level, "tick", ev.Tick)
		}

		if o.cues != nil {
			o.cues.Play(ev.Kind)
		}
	}
}

// Restarted records a new session after game over.
func (o *Observer) Restarted(seed int64) {
	o.logger.Info("restart", "seed", seed)
}

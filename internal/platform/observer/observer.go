// Package observer reacts to the events a game reports from each step.
// Frontends share it so logging, sound and run history behave the same in
// the terminal, over SSH and in the desktop window.
package observer

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/homebound/internal/core"
	"github.com/vovakirdan/homebound/internal/storage"
)

// Sound plays feedback for simulation events.
type Sound interface {
	Play(kind core.EventKind)
}

// Observer logs, sounds and records the runs of one game instance.
type Observer struct {
	recorder *storage.Recorder
	logger   *log.Logger
	sound    Sound
}

// New creates an observer for gameID. A nil store disables run history,
// a nil logger discards output and a nil sound stays silent.
func New(gameID string, store *storage.Store, logger *log.Logger, sound Sound) *Observer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Observer{
		recorder: storage.NewRecorder(store, gameID),
		logger:   logger.With("game", gameID),
		sound:    sound,
	}
}

// Logger returns the observer's game-scoped logger.
func (o *Observer) Logger() *log.Logger {
	return o.logger
}

// Observe handles the outcome of one step.
func (o *Observer) Observe(result core.StepResult) {
	for _, e := range result.Events {
		if o.sound != nil {
			o.sound.Play(e.Kind)
		}

		switch e.Kind {
		case core.EventStarted:
			runID := o.recorder.Begin()
			o.logger.Info("run started", "run", runID)
		case core.EventRestarted:
			o.logger.Info("restarted", "runs", e.Value)
		case core.EventHit:
			o.logger.Debug("hit", "lives", e.Value, "frame", e.Frame)
		case core.EventPickupHeart, core.EventPickupClock:
			o.logger.Debug("pickup", "item", e.Kind, "frame", e.Frame)
		case core.EventCleared, core.EventGameOver:
			o.logger.Info("run ended",
				"run", o.recorder.RunID(),
				"outcome", e.Kind,
				"score", result.State.Score,
				"frames", result.State.Frames,
			)
		}
	}

	saved, err := o.recorder.Finish(result.State)
	if err != nil {
		o.logger.Warn("could not save run", "error", err)
	} else if saved {
		o.logger.Debug("run saved", "run", o.recorder.RunID())
	}
}

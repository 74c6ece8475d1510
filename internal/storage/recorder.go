package storage

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/homebound/internal/core"
)

// Recorder saves each run exactly once when it ends.
// A nil Store turns every call into a no-op so play continues without history.
type Recorder struct {
	store  *Store
	gameID string
	runID  string
	active bool
}

// NewRecorder creates a recorder for runs of the given game.
func NewRecorder(store *Store, gameID string) *Recorder {
	return &Recorder{store: store, gameID: gameID}
}

// Begin assigns a fresh run ID. Calling it again discards an unfinished run.
func (r *Recorder) Begin() string {
	r.runID = uuid.NewString()
	r.active = true
	return r.runID
}

// RunID returns the ID of the current or last run.
func (r *Recorder) RunID() string {
	return r.runID
}

// Active reports whether a run has begun and not yet been saved.
func (r *Recorder) Active() bool {
	return r.active
}

// Finish stores the run if the state is terminal and it was not saved yet.
// Reports whether a record was written.
func (r *Recorder) Finish(state core.GameState) (bool, error) {
	if !r.active || !state.GameOver {
		return false, nil
	}
	r.active = false

	if r.store == nil {
		return false, nil
	}

	outcome := OutcomeOver
	if state.Cleared {
		outcome = OutcomeCleared
	}

	_, err := r.store.SaveRun(Run{
		RunID:   r.runID,
		GameID:  r.gameID,
		Score:   state.Score,
		Outcome: outcome,
		Level:   state.Level,
		Lives:   state.Lives,
		Frames:  state.Frames,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

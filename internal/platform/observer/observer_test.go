package observer

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/homebound/internal/core"
	"github.com/vovakirdan/homebound/internal/storage"
)

type recordingSound struct {
	played []core.EventKind
}

func (s *recordingSound) Play(kind core.EventKind) {
	s.played = append(s.played, kind)
}

func step(state core.GameState, kinds ...core.EventKind) core.StepResult {
	events := make([]core.Event, len(kinds))
	for i, k := range kinds {
		events[i] = core.Event{Kind: k}
	}
	return core.StepResult{State: state, Events: events}
}

func TestObserveWithoutCollaborators(t *testing.T) {
	o := New("homebound", nil, nil, nil)

	// Must not panic without a store, logger or sound
	o.Observe(step(core.GameState{Started: true}, core.EventStarted))
	o.Observe(step(core.GameState{Started: true, GameOver: true}, core.EventGameOver))
}

func TestObserveSavesEachRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	sound := &recordingSound{}
	o := New("homebound", store, nil, sound)

	over := core.GameState{Started: true, GameOver: true, Cleared: true, Score: 500, Level: 6, Lives: 2, Frames: 900}

	o.Observe(step(core.GameState{Started: true}, core.EventStarted))
	o.Observe(step(over, core.EventObstaclePassed, core.EventCleared))
	o.Observe(step(over))
	o.Observe(step(core.GameState{}, core.EventRestarted))
	o.Observe(step(core.GameState{Started: true}, core.EventStarted))
	o.Observe(step(core.GameState{Started: true, GameOver: true, Score: 40}, core.EventHit, core.EventGameOver))

	runs, err := store.AllRuns("homebound")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("stored %d runs, want 2", len(runs))
	}

	var cleared, over2 int
	for _, r := range runs {
		switch r.Outcome {
		case storage.OutcomeCleared:
			cleared++
			if r.Score != 500 || r.Lives != 2 || r.Frames != 900 {
				t.Errorf("cleared run = %+v", r)
			}
		case storage.OutcomeOver:
			over2++
		}
	}
	if cleared != 1 || over2 != 1 {
		t.Errorf("outcomes: cleared=%d over=%d", cleared, over2)
	}
	if runs[0].RunID == runs[1].RunID {
		t.Error("each run should get its own ID")
	}

	want := []core.EventKind{
		core.EventStarted,
		core.EventObstaclePassed, core.EventCleared,
		core.EventRestarted,
		core.EventStarted,
		core.EventHit, core.EventGameOver,
	}
	if len(sound.played) != len(want) {
		t.Fatalf("played %v, want %v", sound.played, want)
	}
	for i := range want {
		if sound.played[i] != want[i] {
			t.Errorf("sound %d = %v, want %v", i, sound.played[i], want[i])
		}
	}
}

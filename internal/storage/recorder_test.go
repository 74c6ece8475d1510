package storage

import (
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/homebound/internal/core"
)

func TestRecorderSavesOnce(t *testing.T) {
	store := openTestStore(t)
	rec := NewRecorder(store, "homebound")

	runID := rec.Begin()
	if _, err := uuid.Parse(runID); err != nil {
		t.Fatalf("run ID %q is not a UUID: %v", runID, err)
	}

	running := core.GameState{Score: 40, Started: true, Lives: 2, Level: 1}
	if saved, _ := rec.Finish(running); saved {
		t.Error("running state should not be saved")
	}

	over := core.GameState{Score: 120, Started: true, GameOver: true, Level: 2, Frames: 900}
	saved, err := rec.Finish(over)
	if err != nil || !saved {
		t.Fatalf("Finish() = %v, %v; want true, nil", saved, err)
	}
	if saved, _ := rec.Finish(over); saved {
		t.Error("second Finish should not save again")
	}

	r, err := store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r.Outcome != OutcomeOver || r.Score != 120 || r.Level != 2 || r.Frames != 900 {
		t.Errorf("stored run = %+v", r)
	}
}

func TestRecorderCleared(t *testing.T) {
	store := openTestStore(t)
	rec := NewRecorder(store, "homebound")

	runID := rec.Begin()
	if _, err := rec.Finish(core.GameState{Score: 500, GameOver: true, Cleared: true, Lives: 3}); err != nil {
		t.Fatalf("Finish() failed: %v", err)
	}

	r, err := store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r.Outcome != OutcomeCleared || r.Lives != 3 {
		t.Errorf("stored run = %+v", r)
	}
}

func TestRecorderNewRunAfterRestart(t *testing.T) {
	store := openTestStore(t)
	rec := NewRecorder(store, "homebound")

	first := rec.Begin()
	rec.Finish(core.GameState{Score: 10, GameOver: true})
	second := rec.Begin()
	rec.Finish(core.GameState{Score: 20, GameOver: true})

	if first == second {
		t.Error("each run should get a fresh ID")
	}
	runs, _ := store.AllRuns("homebound")
	if len(runs) != 2 {
		t.Errorf("Expected 2 runs, got %d", len(runs))
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	rec := NewRecorder(nil, "homebound")
	rec.Begin()

	saved, err := rec.Finish(core.GameState{Score: 10, GameOver: true})
	if saved || err != nil {
		t.Errorf("Finish() = %v, %v; want false, nil", saved, err)
	}
	if rec.Active() {
		t.Error("run should be closed even without a store")
	}
}

func TestRecorderFinishWithoutBegin(t *testing.T) {
	store := openTestStore(t)
	rec := NewRecorder(store, "homebound")

	if saved, _ := rec.Finish(core.GameState{Score: 10, GameOver: true}); saved {
		t.Error("Finish without Begin should not save")
	}
}

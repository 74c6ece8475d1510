package tui

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/homebound/internal/registry"
	"github.com/vovakirdan/homebound/internal/storage"
)

var registerOnce sync.Once

// registerScripted makes the scripted game visible to the scoreboard tabs.
func registerScripted() {
	registerOnce.Do(func() {
		registry.Register("scripted", func() registry.Game { return &scriptedGame{endAt: 1} })
	})
}

func TestFormatFrames(t *testing.T) {
	tests := []struct {
		frames int
		want   string
	}{
		{0, "0:00"},
		{59, "0:00"},
		{60, "0:01"},
		{3600, "1:00"},
		{60 * 75, "1:15"},
	}

	for _, tt := range tests {
		if got := formatFrames(tt.frames); got != tt.want {
			t.Errorf("formatFrames(%d) = %q, want %q", tt.frames, got, tt.want)
		}
	}
}

func TestRunRows(t *testing.T) {
	rows := runRows([]storage.Run{
		{Score: 500, Outcome: storage.OutcomeCleared, Level: 6, Frames: 120},
		{Score: 70, Outcome: storage.OutcomeOver, Level: 1, Frames: 30},
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "500" || rows[0][2] != "cleared" || rows[0][4] != "0:02" {
		t.Errorf("unexpected first row: %v", rows[0])
	}
	if rows[1][0] != "#2" || rows[1][2] != "over" {
		t.Errorf("unexpected second row: %v", rows[1])
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "", 80, 24)
	if !strings.Contains(m.View(), "unavailable") {
		t.Errorf("expected unavailable message, got:\n%s", m.View())
	}
}

func TestScoreboardLoadsRuns(t *testing.T) {
	registerScripted()

	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	for i, score := range []int{30, 90, 60} {
		_, err := store.SaveRun(storage.Run{
			RunID:   "run-" + string(rune('a'+i)),
			GameID:  "scripted",
			Score:   score,
			Outcome: storage.OutcomeOver,
			Level:   1,
			Frames:  600,
		})
		if err != nil {
			t.Fatalf("save run: %v", err)
		}
	}

	m := NewScoreboardModel(store, "scripted", 100, 30)
	if m.Mode() != "scripted" {
		t.Fatalf("expected scripted mode selected, got %q", m.Mode())
	}
	if len(m.runs) != 3 || m.runs[0].Score != 90 {
		t.Fatalf("expected runs ordered by score, got %+v", m.runs)
	}

	view := m.View()
	if !strings.Contains(view, "Best: 90") {
		t.Errorf("stats line missing from view:\n%s", view)
	}
	if !strings.Contains(view, "Runs: 3") {
		t.Errorf("run count missing from view:\n%s", view)
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "", 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("expected empty view after quit")
	}
}

package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/homebound/internal/core"
	"github.com/vovakirdan/homebound/internal/storage"
)

// scriptedGame starts on ActionStart and ends after a fixed number of ticks.
type scriptedGame struct {
	inputs  []core.InputFrame
	started bool
	ticks   int
	endAt   int
}

func (g *scriptedGame) ID() string               { return "scripted" }
func (g *scriptedGame) Title() string            { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) {}
func (g *scriptedGame) Render(dst *core.Screen)  { dst.Clear() }
func (g *scriptedGame) State() core.GameState    { return g.state() }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())

	var events []core.Event
	if in.Has(core.ActionStart) && !g.started {
		g.started = true
		events = append(events, core.Event{Kind: core.EventStarted})
	}
	if g.started && g.ticks < g.endAt {
		g.ticks++
		if g.ticks == g.endAt {
			events = append(events, core.Event{Kind: core.EventGameOver})
		}
	}
	return core.StepResult{State: g.state(), Events: events}
}

func (g *scriptedGame) state() core.GameState {
	return core.GameState{
		Score:    g.ticks * 10,
		Started:  g.started,
		GameOver: g.started && g.ticks >= g.endAt,
		Level:    1,
		Frames:   g.ticks,
	}
}

type recordingSound struct {
	played []core.EventKind
}

func (s *recordingSound) Play(kind core.EventKind) {
	s.played = append(s.played, kind)
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(time.Now()))
	return next.(Model)
}

func press(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(k)
	return next.(Model)
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func TestModelRecordsRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{endAt: 5}
	sound := &recordingSound{}
	m := NewModel(game, core.DefaultConfig(), Options{Store: store, Sound: sound})

	m = press(t, m, spaceKey)
	for range 20 {
		m = tick(t, m)
	}

	if !m.State().GameOver {
		t.Fatal("expected the scripted run to be over")
	}

	runs, err := store.AllRuns("scripted")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("stored %d runs, want 1", len(runs))
	}
	if runs[0].Score != 50 || runs[0].Outcome != storage.OutcomeOver {
		t.Errorf("stored run = %+v", runs[0])
	}

	if len(sound.played) != 2 || sound.played[0] != core.EventStarted || sound.played[1] != core.EventGameOver {
		t.Errorf("sounds = %v", sound.played)
	}
}

func TestModelSynthesisesJumpRelease(t *testing.T) {
	game := &scriptedGame{endAt: 1000}
	m := NewModel(game, core.DefaultConfig(), Options{ReleaseAfter: 3})

	m = press(t, m, spaceKey)
	m = tick(t, m) // Press edge delivered
	m = press(t, m, spaceKey)
	m = tick(t, m) // Repeat, still held
	for range 3 {
		m = tick(t, m)
	}

	if len(game.inputs) != 5 {
		t.Fatalf("game stepped %d times, want 5", len(game.inputs))
	}
	if !game.inputs[0].Has(core.ActionJumpPress) {
		t.Error("first tick should carry the press edge")
	}
	if game.inputs[1].Has(core.ActionJumpPress) {
		t.Error("repeat should not press again")
	}
	for i := range 3 {
		if game.inputs[i].Has(core.ActionJumpRelease) {
			t.Errorf("tick %d released too early", i)
		}
	}
	if !game.inputs[3].Has(core.ActionJumpRelease) {
		t.Error("release should arrive on the third tick without a repeat")
	}
	if game.inputs[4].Has(core.ActionJumpRelease) {
		t.Error("release edge should fire once")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&scriptedGame{}, core.DefaultConfig(), Options{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

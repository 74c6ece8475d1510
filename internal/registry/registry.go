// Package registry maps mode IDs to game factories. Modes register in init(),
// so frontends and the CLI can list and create them by name.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/homebound/internal/core"
)

// Game is the interface every playable mode implements. Games hold pure
// simulation logic; frontends own input mapping, timing and output.
type Game interface {
	// ID returns the mode's unique identifier, used by the CLI and run history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the session from scratch.
	// Called once at start; restarts after a finished run happen through
	// the restart intent so the simulation owns its own lifecycle.
	Reset(cfg core.RuntimeConfig)

	// Step consumes the frame's intents and advances one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a character screen.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode. Registering the same ID twice is a programming
// error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), factory: f}
}

// List returns every registered mode ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(infos, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return infos
}

// Lookup returns the description of a registered mode.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return GameInfo{}, false
	}
	return GameInfo{ID: id, Title: e.title}, true
}

// Create returns a new instance of the mode.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a mode is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

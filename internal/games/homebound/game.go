// Package homebound implements a charge-jump endless runner.
// The runner jumps over obstacles and collects power-ups until the target
// score is reached and the runner arrives home.
package homebound

import (
	"github.com/vovakirdan/homebound/internal/config"
	"github.com/vovakirdan/homebound/internal/core"
	"github.com/vovakirdan/homebound/internal/registry"
)

// Registry identifiers for the two modes.
const (
	ModeStory   = "homebound"
	ModeEndless = "homebound_endless"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the loaded config.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game is the simulation clock. It owns the current Session and turns
// input intents into ticks.
type Game struct {
	id      string
	endless bool
	runtime core.RuntimeConfig
	cfg     config.HomeboundConfig
	session *Session
	runs    int // Sessions started since Reset; offsets the restart seed

	catTicks int // Ending-scene animation, advanced by Render
}

// New creates a story mode game that ends at the target score.
func New() *Game {
	return &Game{id: ModeStory}
}

// NewEndless creates a game with no target score.
func NewEndless() *Game {
	return &Game{id: ModeEndless, endless: true}
}

// NewWithConfig creates a game that skips config file loading.
func NewWithConfig(cfg config.HomeboundConfig) *Game {
	g := New()
	g.cfg = cfg
	g.runtime = core.DefaultConfig()
	g.session = newSeededSession(&g.cfg, 0)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.endless {
		return "Homebound (Endless)"
	}
	return "Homebound"
}

// Reset loads configuration and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultHomeboundConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	if g.endless {
		cfg.Gameplay.TargetScore = 0
	}

	g.cfg = cfg
	g.runs = 0
	g.session = newSeededSession(&g.cfg, runtime.Seed)
}

// Config returns the configuration of the running session.
func (g *Game) Config() config.HomeboundConfig {
	return g.cfg
}

// Step consumes this tick's intents and advances the session by one tick.
// Intents are applied in a fixed order: restart, start, jump press, jump release.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(g.runtime)
	}
	g.session.events = nil

	if in.Has(core.ActionRestart) && g.session.phase.Terminal() {
		g.restart()
	}

	s := g.session

	if in.Has(core.ActionStart) && s.transition(PhaseRunning) {
		s.emit(core.EventStarted, 0)
	}

	if s.phase == PhaseRunning {
		if in.Has(core.ActionJumpPress) {
			s.actor.pressJump()
		}
		if in.Has(core.ActionJumpRelease) {
			charge := s.actor.chargeTicks
			if s.actor.releaseJump(s.cfg.Player) {
				s.emit(core.EventJumped, charge)
			}
		}
		s.advance()
	}

	return core.StepResult{State: g.State(), Events: s.events}
}

// restart replaces the session with a fresh one in the not-started phase.
func (g *Game) restart() {
	if !canTransition(g.session.phase, PhaseNotStarted) {
		return
	}
	g.runs++
	g.session = newSeededSession(&g.cfg, g.runtime.Seed+int64(g.runs))
	g.session.emit(core.EventRestarted, g.runs)
}

// Phase returns the current session phase.
func (g *Game) Phase() Phase {
	return g.session.phase
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	if s == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    s.score,
		Started:  s.phase != PhaseNotStarted,
		GameOver: s.phase.Terminal(),
		Cleared:  s.phase == PhaseCleared,
		Level:    s.Level(),
		Lives:    s.lives,
		Frames:   s.frame,
	}
}

// Register both modes with the registry
func init() {
	registry.Register(ModeStory, func() registry.Game {
		return New()
	})
	registry.Register(ModeEndless, func() registry.Game {
		return NewEndless()
	})
}

// Package gui runs games in a desktop or browser window with ebiten.
// Unlike the terminal, ebiten reports real key releases, so jump charge is
// measured from the actual hold time.
package gui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/homebound/internal/core"
	"github.com/vovakirdan/homebound/internal/games/homebound"
	"github.com/vovakirdan/homebound/internal/platform/observer"
	"github.com/vovakirdan/homebound/internal/registry"
	"github.com/vovakirdan/homebound/internal/storage"
)

// Simulation is a game that exposes a drawable snapshot.
type Simulation interface {
	registry.Game
	Snapshot() homebound.Snapshot
}

// Options are the optional collaborators of a window.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Sound  observer.Sound
	Scale  float64 // Window size relative to the world; 0 means 1
}

// Game adapts a Simulation to ebiten's Update/Draw/Layout loop.
type Game struct {
	sim      Simulation
	observer *observer.Observer
	config   core.RuntimeConfig
	frame    core.InputFrame
	state    core.GameState
	width    int
	height   int
	catTicks int
	poll     func() keyEdges
}

// NewGame resets sim and wraps it for ebiten.
func NewGame(sim Simulation, cfg core.RuntimeConfig, opts Options) *Game {
	sim.Reset(cfg)
	snap := sim.Snapshot()

	return &Game{
		sim:      sim,
		observer: observer.New(sim.ID(), opts.Store, opts.Logger, opts.Sound),
		config:   cfg,
		frame:    core.NewInputFrame(),
		width:    int(snap.WorldW),
		height:   int(snap.WorldH),
		poll:     pollKeys,
	}
}

// Update advances the simulation by one tick.
func (g *Game) Update() error {
	fillFrame(g.poll(), &g.frame)
	if g.frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	result := g.sim.Step(g.frame)
	g.state = result.State
	g.observer.Observe(result)
	g.frame.Clear()
	return nil
}

// Draw paints the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.sim.Snapshot()
	if snap.Phase == homebound.PhaseCleared {
		g.catTicks++
	}
	drawScene(screen, snap, g.catTicks)
}

// Layout keeps the logical world size regardless of the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// State returns the game state after the last tick.
func (g *Game) State() core.GameState {
	return g.state
}

// Run opens a window and plays game until it is closed or quit.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	sim, ok := game.(Simulation)
	if !ok {
		return fmt.Errorf("gui: game %q cannot be drawn in a window", game.ID())
	}

	g := NewGame(sim, cfg, opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(float64(g.width)*scale), int(float64(g.height)*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}

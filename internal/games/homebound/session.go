package homebound

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/homebound/internal/config"
	"github.com/vovakirdan/homebound/internal/core"
)

// Rand is the random source used by the spawners.
// *rand.Rand satisfies it; tests substitute scripted sequences.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Session is every piece of mutable state for one run.
// It is owned by Game and replaced wholesale on restart, never reset field by field.
type Session struct {
	cfg   *config.HomeboundConfig
	curve config.Curve
	rng   Rand

	phase Phase
	score int
	lives int
	frame int // Running ticks simulated

	actor     Actor
	obstacles []Obstacle
	items     []Item

	params        config.Params // Refreshed after collisions each tick
	slowRemaining int
	bgScroll      float64

	obstacleTimer   int
	consecutiveFast int
	itemTimer       int

	events []core.Event
}

// newSession builds a fresh not-started session.
func newSession(cfg *config.HomeboundConfig, rng Rand) *Session {
	curve := config.NewCurve(cfg.Difficulty)
	return &Session{
		cfg:       cfg,
		curve:     curve,
		rng:       rng,
		phase:     PhaseNotStarted,
		lives:     cfg.Gameplay.StartLives,
		actor:     newActor(cfg.Player, cfg.World.FloorY),
		obstacles: make([]Obstacle, 0, 8),
		items:     make([]Item, 0, 4),
		params:    curve.At(0),
	}
}

// newSeededSession builds a session driven by a seeded math/rand source.
func newSeededSession(cfg *config.HomeboundConfig, seed int64) *Session {
	return newSession(cfg, rand.New(rand.NewSource(seed)))
}

// transition moves to another phase if the change is legal.
func (s *Session) transition(to Phase) bool {
	if !canTransition(s.phase, to) {
		return false
	}
	s.phase = to
	return true
}

// emit records an event for the current tick.
func (s *Session) emit(kind core.EventKind, value int) {
	s.events = append(s.events, core.Event{Kind: kind, Frame: s.frame, Value: value})
}

// belowTarget reports whether spawning continues. A zero target is endless.
func (s *Session) belowTarget() bool {
	return s.cfg.Gameplay.TargetScore <= 0 || s.score < s.cfg.Gameplay.TargetScore
}

// frameMods are the slow-mode adjusted rates for one tick.
type frameMods struct {
	speed   float64
	gravity float64
	bgSpeed float64
}

// tickSlowMode latches slow-mode for this tick and consumes one tick of it.
// A clock collected during tick f therefore slows ticks f+1 .. f+SlowTicks.
func (s *Session) tickSlowMode() bool {
	if s.slowRemaining <= 0 {
		return false
	}
	s.slowRemaining--
	if s.slowRemaining == 0 {
		s.emit(core.EventSlowEnded, 0)
	}
	return true
}

// mods returns this tick's rates. Horizontal rates and gravity use
// different slow factors.
func (s *Session) mods(slow bool) frameMods {
	m := frameMods{
		speed:   s.params.Speed,
		gravity: s.cfg.Player.Gravity,
		bgSpeed: s.params.BgSpeed,
	}
	if slow {
		m.speed *= s.cfg.Items.SlowSpeedFactor
		m.bgSpeed *= s.cfg.Items.SlowSpeedFactor
		m.gravity *= s.cfg.Items.SlowGravityFactor
	}
	return m
}

// advance runs one running tick: physics, obstacles, items, hazards,
// difficulty and background, in that order. Stages after a phase change
// are skipped.
func (s *Session) advance() {
	if s.phase != PhaseRunning {
		return
	}
	s.frame++

	m := s.mods(s.tickSlowMode())

	s.actor.update(m.gravity)

	s.updateObstacles(m.speed)
	if s.phase != PhaseRunning {
		return
	}

	s.updateItems(m.speed)

	s.resolveHazards()
	if s.phase != PhaseRunning {
		return
	}

	s.params = s.curve.At(s.score)
	s.scrollBackground(m.bgSpeed)
}

// scrollBackground advances the parallax offset, wrapping at the viewport width.
func (s *Session) scrollBackground(speed float64) {
	width := s.cfg.World.Width
	if width <= 0 {
		return
	}
	s.bgScroll = math.Mod(s.bgScroll+speed, width)
	if s.bgScroll < 0 {
		s.bgScroll = 0
	}
}

// Level returns the 1-based difficulty level shown to the player.
func (s *Session) Level() int {
	return s.curve.Level(s.score) + 1
}

package homebound

import "github.com/vovakirdan/homebound/internal/core"

// ActorView is the read-only presentation of the runner.
type ActorView struct {
	Rect     core.RectF
	Visible  bool
	Airborne bool
	Charging bool
	Charge   float64 // Jump charge in [0, 1]
}

// ItemView is the read-only presentation of a power-up.
type ItemView struct {
	Kind ItemKind
	Rect core.RectF
}

// Snapshot is everything a renderer may read about one tick.
// Slices are copies; mutating them does not affect the session.
type Snapshot struct {
	Phase       Phase
	Score       int
	Lives       int
	MaxLives    int
	Level       int
	Target      int // Zero in endless mode
	Remaining   int // Score left until the target; zero in endless mode
	SlowActive  bool
	SlowSeconds int
	Actor       ActorView
	Obstacles   []core.RectF
	Items       []ItemView
	BgScroll    float64
	TimeOfDay   TimeOfDay
	WorldW      float64
	WorldH      float64
	FloorY      float64
	Frame       int
}

// Snapshot captures the current session for the presentation layer.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		g.Reset(g.runtime)
	}
	return g.session.snapshot(g.runtime.TickRate)
}

func (s *Session) snapshot(tickRate int) Snapshot {
	if tickRate <= 0 {
		tickRate = 60
	}

	p := s.cfg.Player
	snap := Snapshot{
		Phase:      s.phase,
		Score:      s.score,
		Lives:      s.lives,
		MaxLives:   s.cfg.Gameplay.MaxLives,
		Level:      s.Level(),
		Target:     s.cfg.Gameplay.TargetScore,
		SlowActive: s.slowRemaining > 0,
		Actor: ActorView{
			Rect:     s.actor.Rect(),
			Visible:  s.actor.Visible(),
			Airborne: s.actor.airborne,
			Charging: s.actor.charging,
		},
		Obstacles: make([]core.RectF, 0, len(s.obstacles)),
		Items:     make([]ItemView, 0, len(s.items)),
		BgScroll:  s.bgScroll,
		TimeOfDay: timeOfDayFor(s.score, s.cfg.Gameplay.TargetScore, s.phase == PhaseCleared),
		WorldW:    s.cfg.World.Width,
		WorldH:    s.cfg.World.Height,
		FloorY:    s.cfg.World.FloorY,
		Frame:     s.frame,
	}

	if snap.Target > 0 {
		snap.Remaining = max(snap.Target-s.score, 0)
	}
	if snap.SlowActive {
		// Ceiling division so the last partial second still shows 1
		snap.SlowSeconds = (s.slowRemaining + tickRate - 1) / tickRate
	}
	if s.actor.charging && p.FullChargeTicks > 0 {
		snap.Actor.Charge = min(float64(s.actor.chargeTicks)/float64(p.FullChargeTicks), 1)
	}

	for _, o := range s.obstacles {
		snap.Obstacles = append(snap.Obstacles, o.Rect())
	}
	for _, it := range s.items {
		snap.Items = append(snap.Items, ItemView{Kind: it.Kind, Rect: it.Rect()})
	}
	return snap
}

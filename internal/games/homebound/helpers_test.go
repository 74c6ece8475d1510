package homebound

import (
	"github.com/vovakirdan/homebound/internal/config"
	"github.com/vovakirdan/homebound/internal/core"
)

// scriptedRand replays fixed values, cycling when exhausted.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

// runningSession returns a default session already in the running phase.
// A roll of 0.99 keeps the obstacle spawner on the base interval.
func runningSession(rng Rand) *Session {
	cfg := config.DefaultHomeboundConfig()
	if rng == nil {
		rng = &scriptedRand{}
	}
	s := newSession(&cfg, rng)
	s.phase = PhaseRunning
	return s
}

// overlappingObstacle returns an obstacle that overlaps the grounded actor
// after moving one tick at the default speed.
func overlappingObstacle() Obstacle {
	return Obstacle{X: 120, Y: 440, W: 30, H: 60}
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

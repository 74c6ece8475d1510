package homebound

// Phase is the session's lifecycle stage.
type Phase int

const (
	PhaseNotStarted Phase = iota // Title screen, waiting for the start intent
	PhaseRunning                 // Simulation advancing every tick
	PhaseOver                    // Lost all lives (terminal)
	PhaseCleared                 // Reached the target score (terminal)
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	case PhaseCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the run.
func (p Phase) Terminal() bool {
	return p == PhaseOver || p == PhaseCleared
}

// transitions is the complete set of legal phase changes.
// Restart (terminal -> not-started) replaces the session rather than
// transitioning it, but the edge is listed so the table stays exhaustive.
var transitions = map[Phase][]Phase{
	PhaseNotStarted: {PhaseRunning},
	PhaseRunning:    {PhaseOver, PhaseCleared},
	PhaseOver:       {PhaseNotStarted},
	PhaseCleared:    {PhaseNotStarted},
}

// canTransition reports whether from -> to is a legal phase change.
func canTransition(from, to Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

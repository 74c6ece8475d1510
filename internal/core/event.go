package core

// EventKind identifies something notable that happened during a tick.
// Platforms use events for logging and sound; games never depend on them.
type EventKind int

const (
	EventNone EventKind = iota
	EventStarted
	EventJumped
	EventObstaclePassed
	EventHit
	EventPickupHeart
	EventPickupClock
	EventSlowEnded
	EventCleared
	EventGameOver
	EventRestarted
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventStarted:
		return "started"
	case EventJumped:
		return "jumped"
	case EventObstaclePassed:
		return "obstacle_passed"
	case EventHit:
		return "hit"
	case EventPickupHeart:
		return "pickup_heart"
	case EventPickupClock:
		return "pickup_clock"
	case EventSlowEnded:
		return "slow_ended"
	case EventCleared:
		return "cleared"
	case EventGameOver:
		return "game_over"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported by Game.Step.
type Event struct {
	Kind  EventKind
	Frame int // Running frame the event happened in
	Value int // Kind-specific payload (score, lives, ...)
}

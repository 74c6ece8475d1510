package homebound

import "testing"

func TestPhaseTransitions(t *testing.T) {
	phases := []Phase{PhaseNotStarted, PhaseRunning, PhaseOver, PhaseCleared}
	legal := map[[2]Phase]bool{
		{PhaseNotStarted, PhaseRunning}: true,
		{PhaseRunning, PhaseOver}:       true,
		{PhaseRunning, PhaseCleared}:    true,
		{PhaseOver, PhaseNotStarted}:    true,
		{PhaseCleared, PhaseNotStarted}: true,
	}

	for _, from := range phases {
		for _, to := range phases {
			want := legal[[2]Phase{from, to}]
			if got := canTransition(from, to); got != want {
				t.Errorf("canTransition(%v, %v) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestPhaseTerminal(t *testing.T) {
	tests := []struct {
		phase Phase
		want  bool
	}{
		{PhaseNotStarted, false},
		{PhaseRunning, false},
		{PhaseOver, true},
		{PhaseCleared, true},
	}

	for _, tt := range tests {
		if got := tt.phase.Terminal(); got != tt.want {
			t.Errorf("%v.Terminal() = %v, want %v", tt.phase, got, tt.want)
		}
	}
}

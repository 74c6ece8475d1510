package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionJumpPress)
	f.Set(ActionStart)
	f.Set(ActionNone)
	f.Set(Action(200))

	if !f.Has(ActionStart) || !f.Has(ActionJumpPress) {
		t.Error("set actions should be present")
	}
	if f.Has(ActionJumpRelease) || f.Has(ActionNone) {
		t.Error("unset actions should be absent")
	}

	got := f.Actions()
	if len(got) != 2 || got[0] != ActionStart || got[1] != ActionJumpPress {
		t.Errorf("Actions() = %v", got)
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !clone.Has(ActionStart) {
		t.Error("clone should not share state with the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionStart, "Start"},
		{ActionJumpRelease, "JumpRelease"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}

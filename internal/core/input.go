package core

// Action is an intent a frontend hands to the simulation, independent of the
// physical key that produced it.
type Action uint8

const (
	ActionNone        Action = iota
	ActionStart              // Leave the title screen
	ActionJumpPress          // Jump key went down: begin charging
	ActionJumpRelease        // Jump key went up: launch the charged jump
	ActionRestart            // New session after game over or reaching home
	ActionQuit               // Leave the game (platform only)
	actionCount
)

var actionNames = [...]string{
	ActionNone:        "None",
	ActionStart:       "Start",
	ActionJumpPress:   "JumpPress",
	ActionJumpRelease: "JumpRelease",
	ActionRestart:     "Restart",
	ActionQuit:        "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame collects the intents for a single tick. Intents are
// edge-triggered: the platform sets them as input arrives and clears the
// frame after each step, so each one is consumed exactly once.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint16
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame. ActionNone and unknown
// actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered this frame.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return f
}

// Actions lists the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionStart; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

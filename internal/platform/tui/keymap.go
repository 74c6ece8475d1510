package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/homebound/internal/core"
)

// KeyIntent is what a key means to the game loop.
type KeyIntent int

const (
	KeyNone    KeyIntent = iota
	KeyJump              // Start the run, or hold to charge a jump
	KeyRestart           // Back to the title after a run ends
	KeyShot              // Save a text screenshot
	KeyQuit
)

// KeyMapper translates Bubble Tea key messages to key intents.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an intent.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) KeyIntent {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return KeyQuit
	case " ", "up", "w", "k":
		return KeyJump
	case "enter", "r":
		return KeyRestart
	case "ctrl+s":
		return KeyShot
	}
	return KeyNone
}

// HoldTracker derives press and release edges for a key from a terminal
// that only reports key-down and auto-repeat. The key counts as released
// once no repeat arrives for releaseAfter ticks.
type HoldTracker struct {
	releaseAfter int
	held         bool
	idle         int // Ticks since the last key event
}

// NewHoldTracker creates a tracker. releaseAfter below 1 is treated as 1.
func NewHoldTracker(releaseAfter int) *HoldTracker {
	return &HoldTracker{releaseAfter: max(releaseAfter, 1)}
}

// Key records a key-down or repeat. Reports true on the press edge.
func (h *HoldTracker) Key() bool {
	h.idle = 0
	if h.held {
		return false
	}
	h.held = true
	return true
}

// Tick advances one simulation tick. Reports true on the release edge.
func (h *HoldTracker) Tick() bool {
	if !h.held {
		return false
	}
	h.idle++
	if h.idle < h.releaseAfter {
		return false
	}
	h.held = false
	h.idle = 0
	return true
}

// Held reports whether the key is currently considered down.
func (h *HoldTracker) Held() bool {
	return h.held
}

// Reset forgets any held key.
func (h *HoldTracker) Reset() {
	h.held = false
	h.idle = 0
}

// applyIntent writes the game actions for a key intent into the frame.
func applyIntent(intent KeyIntent, hold *HoldTracker, frame *core.InputFrame) {
	switch intent {
	case KeyJump:
		frame.Set(core.ActionStart)
		if hold.Key() {
			frame.Set(core.ActionJumpPress)
		}
	case KeyRestart:
		frame.Set(core.ActionRestart)
		hold.Reset()
	}
}

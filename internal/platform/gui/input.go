package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/homebound/internal/core"
)

var (
	jumpKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	restartKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// keyEdges is what the keyboard did since the previous tick.
type keyEdges struct {
	JumpPressed  bool
	JumpReleased bool
	Restart      bool
	Quit         bool
}

// pollKeys reads key edges from ebiten's input state.
func pollKeys() keyEdges {
	return keyEdges{
		JumpPressed:  anyJustPressed(jumpKeys),
		JumpReleased: anyJustReleased(jumpKeys),
		Restart:      anyJustPressed(restartKeys),
		Quit:         anyJustPressed(quitKeys),
	}
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func anyJustReleased(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}

// fillFrame turns key edges into intents for one step.
// The jump key also leaves the title screen.
func fillFrame(k keyEdges, frame *core.InputFrame) {
	if k.JumpPressed {
		frame.Set(core.ActionStart)
		frame.Set(core.ActionJumpPress)
	}
	if k.JumpReleased {
		frame.Set(core.ActionJumpRelease)
	}
	if k.Restart {
		frame.Set(core.ActionRestart)
	}
	if k.Quit {
		frame.Set(core.ActionQuit)
	}
}

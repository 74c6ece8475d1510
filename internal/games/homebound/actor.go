package homebound

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/homebound/internal/config"
	"github.com/vovakirdan/homebound/internal/core"
)

// Actor is the player-controlled runner. Only the vertical axis moves.
type Actor struct {
	pos     mgl64.Vec2 // Top-left corner in world pixels
	vel     mgl64.Vec2 // Pixels per tick; x is always zero
	size    mgl64.Vec2
	groundY float64 // Resting y of the top-left corner

	airborne    bool
	charging    bool // Jump key held since a press edge on the ground
	chargeTicks int

	invincible      bool
	invincibleTicks int
}

// newActor places a grounded actor on the floor line.
func newActor(p config.PlayerConfig, floorY float64) Actor {
	groundY := floorY - p.Height
	return Actor{
		pos:     mgl64.Vec2{p.X, groundY},
		size:    mgl64.Vec2{p.Width, p.Height},
		groundY: groundY,
	}
}

// Rect returns the actor's collision rectangle.
func (a *Actor) Rect() core.RectF {
	return core.NewRectF(a.pos.X(), a.pos.Y(), a.size.X(), a.size.Y())
}

// Grounded reports whether the actor stands on the ground line.
func (a *Actor) Grounded() bool {
	return !a.airborne
}

// Visible reports whether the actor is drawn this frame.
// While invincible the actor blinks in 10-tick halves.
func (a *Actor) Visible() bool {
	return !(a.invincible && (a.invincibleTicks/10)%2 == 0)
}

// pressJump begins charging. Only a grounded, idle actor can start a charge.
func (a *Actor) pressJump() bool {
	if a.airborne || a.charging {
		return false
	}
	a.charging = true
	a.chargeTicks = 0
	return true
}

// releaseJump launches a charged jump. A release without a preceding press
// is ignored so stray key-up events cannot corrupt charge state.
func (a *Actor) releaseJump(p config.PlayerConfig) bool {
	if !a.charging || a.airborne {
		a.charging = false
		a.chargeTicks = 0
		return false
	}
	a.vel[1] = jumpPower(p, a.chargeTicks)
	a.airborne = true
	a.charging = false
	a.chargeTicks = 0
	return true
}

// jumpPower interpolates launch velocity between a tap and a full charge.
// Charge beyond FullChargeTicks is clamped to the maximum.
func jumpPower(p config.PlayerConfig, chargeTicks int) float64 {
	full := p.FullChargeTicks
	if full <= 0 {
		full = 1
	}
	ratio := math.Min(float64(max(chargeTicks, 0))/float64(full), 1)
	return p.MinJump + (p.MaxJump-p.MinJump)*ratio
}

// update advances the actor by one tick under the given gravity.
func (a *Actor) update(gravity float64) {
	if a.charging {
		a.chargeTicks++
	}

	a.vel[1] += gravity
	a.pos = a.pos.Add(a.vel)

	// Landing
	if a.pos.Y() >= a.groundY {
		a.pos[1] = a.groundY
		a.vel[1] = 0
		a.airborne = false
	}

	if a.invincible {
		a.invincibleTicks--
		if a.invincibleTicks <= 0 {
			a.invincibleTicks = 0
			a.invincible = false
		}
	}
}

// grantInvincibility starts the post-hit grace window.
func (a *Actor) grantInvincibility(ticks int) {
	if ticks <= 0 {
		return
	}
	a.invincible = true
	a.invincibleTicks = ticks
}

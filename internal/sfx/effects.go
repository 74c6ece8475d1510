package sfx

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/homebound/internal/core"
)

// SampleRate is used for playback and export.
const SampleRate = beep.SampleRate(44100)

// Effect is a synthesised sound.
type Effect int

const (
	EffectStart Effect = iota
	EffectJump
	EffectPass
	EffectHit
	EffectHeart
	EffectClock
	EffectSlowEnd
	EffectCleared
	EffectGameOver
	effectCount
)

var effectNames = [...]string{
	EffectStart:    "start",
	EffectJump:     "jump",
	EffectPass:     "pass",
	EffectHit:      "hit",
	EffectHeart:    "heart",
	EffectClock:    "clock",
	EffectSlowEnd:  "slow_end",
	EffectCleared:  "cleared",
	EffectGameOver: "game_over",
}

// String returns the effect's file-friendly name.
func (e Effect) String() string {
	if e < 0 || e >= effectCount {
		return "unknown"
	}
	return effectNames[e]
}

// Effects lists every effect in a stable order.
func Effects() []Effect {
	all := make([]Effect, 0, effectCount)
	for e := range effectCount {
		all = append(all, e)
	}
	return all
}

// ForEvent picks the effect for a simulation event.
// Restarts make no sound.
func ForEvent(kind core.EventKind) (Effect, bool) {
	switch kind {
	case core.EventStarted:
		return EffectStart, true
	case core.EventJumped:
		return EffectJump, true
	case core.EventObstaclePassed:
		return EffectPass, true
	case core.EventHit:
		return EffectHit, true
	case core.EventPickupHeart:
		return EffectHeart, true
	case core.EventPickupClock:
		return EffectClock, true
	case core.EventSlowEnded:
		return EffectSlowEnd, true
	case core.EventCleared:
		return EffectCleared, true
	case core.EventGameOver:
		return EffectGameOver, true
	default:
		return 0, false
	}
}

// Streamer builds a fresh, finite streamer for the effect.
func (e Effect) Streamer(rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond

	switch e {
	case EffectStart:
		return withVolume(beep.Seq(
			note(523.25, 80*ms, WaveSquare, rate),
			note(783.99, 120*ms, WaveSquare, rate),
		), 0.3)
	case EffectJump:
		return withVolume(glide(330, 660, 6, 120*ms, WaveSquare, rate), 0.25)
	case EffectPass:
		return withVolume(note(1046.5, 40*ms, WaveSine, rate), 0.2)
	case EffectHit:
		return withVolume(glide(220, 110, 5, 200*ms, WaveSquare, rate), 0.4)
	case EffectHeart:
		return withVolume(beep.Seq(
			note(659.25, 70*ms, WaveTriangle, rate),
			note(880, 70*ms, WaveTriangle, rate),
			note(1318.5, 140*ms, WaveTriangle, rate),
		), 0.4)
	case EffectClock:
		return withVolume(beep.Seq(
			note(1200, 30*ms, WaveSine, rate),
			note(900, 30*ms, WaveSine, rate),
			note(1200, 30*ms, WaveSine, rate),
			note(900, 30*ms, WaveSine, rate),
		), 0.35)
	case EffectSlowEnd:
		return withVolume(glide(400, 800, 4, 160*ms, WaveTriangle, rate), 0.25)
	case EffectCleared:
		return withVolume(beep.Seq(
			note(523.25, 150*ms, WaveTriangle, rate),
			note(659.25, 150*ms, WaveTriangle, rate),
			note(783.99, 150*ms, WaveTriangle, rate),
			note(1046.5, 400*ms, WaveTriangle, rate),
		), 0.45)
	case EffectGameOver:
		return withVolume(beep.Seq(
			note(392, 200*ms, WaveSquare, rate),
			note(349.23, 200*ms, WaveSquare, rate),
			note(293.66, 400*ms, WaveSquare, rate),
		), 0.35)
	default:
		return beep.Silence(0)
	}
}

package sfx

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/homebound/internal/core"
)

// Player plays effects for simulation events through the speaker.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	logger *log.Logger
	ready  bool
}

// NewPlayer creates a player. Call Init before Play.
func NewPlayer(logger *log.Logger) *Player {
	return &Player{mixer: &beep.Mixer{}, logger: logger}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("sfx: cannot open audio device: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Play queues the effect for the event, if any. It never blocks the tick.
func (p *Player) Play(kind core.EventKind) {
	effect, ok := ForEvent(kind)
	if !ok {
		return
	}

	p.mu.Lock()
	ready := p.ready
	p.mu.Unlock()
	if !ready {
		return
	}

	speaker.Lock()
	p.mixer.Add(effect.Streamer(SampleRate))
	speaker.Unlock()

	if p.logger != nil {
		p.logger.Debug("sfx", "effect", effect, "event", kind)
	}
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}

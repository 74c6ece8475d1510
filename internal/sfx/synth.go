// Package sfx synthesises the game's sound effects and plays them
// through the system speaker or writes them to WAV files.
package sfx

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// tone is a fixed-length oscillator.
type tone struct {
	freq  float64
	phase float64
	left  int // Samples still to produce
	wave  Wave
	rate  beep.SampleRate
}

// newTone returns a streamer producing freq Hz for d.
func newTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, left: rate.N(d), wave: wave, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.left <= 0 {
		return 0, false
	}

	n := min(len(samples), t.left)
	for i := range n {
		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveTriangle:
			v = 4*math.Abs(t.phase-0.5) - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
	}
	t.left -= n
	return n, true
}

func (t *tone) Err() error { return nil }

// fade shapes a streamer with a linear attack and release.
type fade struct {
	src     beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

func newFade(src beep.Streamer, total, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{
		src:     src,
		total:   rate.N(total),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.src.Stream(samples)
	for i := range n {
		gain := 1.0
		if f.attack > 0 && f.pos < f.attack {
			gain = float64(f.pos) / float64(f.attack)
		}
		if left := f.total - f.pos; f.release > 0 && left < f.release {
			gain = math.Max(float64(left)/float64(f.release), 0)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.src.Err() }

// note is one shaped tone.
func note(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return newFade(newTone(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// glide is a run of short notes stepping from one pitch to another.
func glide(from, to float64, steps int, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, steps)
	step := d / time.Duration(steps)
	for i := range steps {
		f := from + (to-from)*float64(i)/float64(max(steps-1, 1))
		parts = append(parts, newFade(newTone(f, step, wave, rate), step, time.Millisecond, time.Millisecond, rate))
	}
	return beep.Seq(parts...)
}

// withVolume scales a streamer linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// internal/audio/generators.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects the oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator plays a fixed-length tone, optionally sliding from freq to
// endFreq over its duration.
type oscillator struct {
	freq, endFreq float64
	phase         float64
	duration      int
	position      int
	wave          WaveType
	rate          beep.SampleRate
	seed          uint32
}

func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep is an oscillator whose pitch moves linearly from freq to endFreq.
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		seed:     0x9e3779b9,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			// xorshift keeps noise reproducible without touching math/rand.
			o.seed ^= o.seed << 13
			o.seed ^= o.seed >> 17
			o.seed ^= o.seed << 5
			val = float64(o.seed)/float64(math.MaxUint32)*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; e.releaseSamples > 0 && remaining < e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; vol <= 0 is silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Sound is one of the game's effects.
type Sound int

const (
	SoundShot Sound = iota
	SoundKill
	SoundHurt
	SoundPickup
	SoundUpgrade
	SoundGameOver
	SoundBoost
	SoundHighScore
)

// CreateSound builds a fresh, finite streamer for s.
func CreateSound(s Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	var out beep.Streamer
	switch s {
	case SoundShot:
		d := 60 * time.Millisecond
		out = newVolume(NewEnvelope(NewSweep(900, 400, d, WaveSquare, rate), d, 2*time.Millisecond, 40*time.Millisecond, rate), 0.25)
	case SoundKill:
		d := 140 * time.Millisecond
		out = beep.Mix(
			newVolume(NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, 120*time.Millisecond, rate), 0.3),
			newVolume(NewEnvelope(NewSweep(180, 60, d, WaveSine, rate), d, time.Millisecond, 100*time.Millisecond, rate), 0.4),
		)
	case SoundHurt:
		d := 200 * time.Millisecond
		out = newVolume(NewEnvelope(NewSweep(140, 90, d, WaveSaw, rate), d, 5*time.Millisecond, 150*time.Millisecond, rate), 0.35)
	case SoundPickup:
		d := 180 * time.Millisecond
		out = beep.Mix(
			newVolume(NewEnvelope(NewOscillator(880, d, WaveSine, rate), d, 5*time.Millisecond, 120*time.Millisecond, rate), 0.3),
			newVolume(NewEnvelope(NewOscillator(1320, d, WaveSine, rate), d, 5*time.Millisecond, 80*time.Millisecond, rate), 0.15),
		)
	case SoundBoost:
		d := 300 * time.Millisecond
		out = newVolume(NewEnvelope(NewSweep(300, 1200, d, WaveSquare, rate), d, 5*time.Millisecond, 120*time.Millisecond, rate), 0.2)
	case SoundHighScore:
		d := 600 * time.Millisecond
		out = beep.Mix(
			newVolume(NewEnvelope(NewSweep(523, 1047, d, WaveSine, rate), d, 10*time.Millisecond, 300*time.Millisecond, rate), 0.3),
			newVolume(NewEnvelope(NewSweep(659, 1319, d, WaveSine, rate), d, 10*time.Millisecond, 300*time.Millisecond, rate), 0.2),
		)
	case SoundUpgrade:
		d := 250 * time.Millisecond
		out = newVolume(NewEnvelope(NewSweep(440, 880, d, WaveSine, rate), d, 10*time.Millisecond, 100*time.Millisecond, rate), 0.35)
	default:
		d := 700 * time.Millisecond
		out = newVolume(NewEnvelope(NewSweep(330, 80, d, WaveSaw, rate), d, 10*time.Millisecond, 500*time.Millisecond, rate), 0.35)
	}
	return newVolume(out, volume)
}

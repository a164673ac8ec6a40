// internal/audio/sound_manager.go
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"iso-zombie/internal/defs"
	"iso-zombie/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays short effects in response to game events. Until
// Initialize succeeds, and while muted, every call is a no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	played      map[Sound]int
	requested   map[Sound]int
}

var _ event.Listener = (*SoundManager)(nil)

func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		played:    make(map[Sound]int),
		requested: make(map[Sound]int),
	}
}

// Initialize opens the audio device and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops every queued sound and stops the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}

func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

var soundEvents = []event.EventType{
	event.BulletFired,
	event.ZombieKilled,
	event.PlayerHit,
	event.PowerUpCollected,
	event.UpgradePurchased,
	event.PlayerDied,
}

// Subscribe registers the manager for every event that has a sound.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(sm, soundEvents...)
}

func (sm *SoundManager) Unsubscribe(d *event.Dispatcher) {
	for _, t := range soundEvents {
		d.Unsubscribe(t, sm)
	}
}

func (sm *SoundManager) OnEvent(e event.Event) {
	if s, ok := SoundFor(e); ok {
		sm.Play(s)
	}
}

// SoundFor picks the effect for e. Speed pickups and a death that sets the
// high score get their own sounds.
func SoundFor(e event.Event) (Sound, bool) {
	switch e.Type {
	case event.BulletFired:
		return SoundShot, true
	case event.ZombieKilled:
		return SoundKill, true
	case event.PlayerHit:
		return SoundHurt, true
	case event.PowerUpCollected:
		if kind, ok := event.PowerUpKindOf(e); ok && kind == defs.PowerUpSpeed {
			return SoundBoost, true
		}
		return SoundPickup, true
	case event.UpgradePurchased:
		return SoundUpgrade, true
	case event.PlayerDied:
		if r, ok := event.RoundResultOf(e); ok && r.Score > 0 && r.Score >= r.HighScore {
			return SoundHighScore, true
		}
		return SoundGameOver, true
	}
	return 0, false
}

// Play queues s on the mixer. It reports whether anything was queued.
func (sm *SoundManager) Play(s Sound) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.requested[s]++
	if !sm.initialized || sm.muted {
		return false
	}
	streamer := CreateSound(s, sampleRate, sm.volume)
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[s]++
	return true
}

// Requested counts calls to Play for s, including silent ones.
func (sm *SoundManager) Requested(s Sound) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.requested[s]
}

// Played returns how many times s has been queued.
func (sm *SoundManager) Played(s Sound) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[s]
}

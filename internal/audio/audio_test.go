package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"iso-zombie/internal/defs"
	"iso-zombie/internal/event"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			for _, v := range buf[j] {
				if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > 1.0001 {
					t.Fatalf("sample %d out of range: %v", total+j, v)
				}
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("sound never ended")
	return total
}

func TestSoundsAreFiniteAndBounded(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, s := range []Sound{SoundShot, SoundKill, SoundHurt, SoundPickup, SoundUpgrade, SoundGameOver, SoundBoost, SoundHighScore} {
		n := drain(t, CreateSound(s, rate, 1))
		if n == 0 || n > rate.N(time.Second) {
			t.Errorf("sound %d streamed %d samples", s, n)
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 100*time.Millisecond, WaveSquare, rate)
	buf := make([][2]float64, 64)
	n1, ok1 := osc.Stream(buf)
	n2, ok2 := osc.Stream(buf)
	n3, ok3 := osc.Stream(buf)
	if n1 != 64 || !ok1 || n2 != 36 || !ok2 || n3 != 0 || ok3 {
		t.Fatalf("got (%d %v) (%d %v) (%d %v)", n1, ok1, n2, ok2, n3, ok3)
	}
}

func TestEnvelopeFades(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)
	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("n = %d", n)
	}
	if buf[0][0] != 0 {
		t.Fatalf("attack should start silent, got %v", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Fatalf("sustain should be full volume, got %v", buf[50][0])
	}
	if buf[99][0] >= 0.2 {
		t.Fatalf("release should fade out, got %v", buf[99][0])
	}
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager(1)
	d := event.NewDispatcher()
	sm.Subscribe(d)
	d.Dispatch(event.Event{Type: event.ZombieKilled})
	if sm.Play(SoundShot) {
		t.Fatal("played without a device")
	}
	if sm.Played(SoundKill) != 0 {
		t.Fatal("nothing should be queued")
	}
	sm.Cleanup()
}

func TestSoundForPayloads(t *testing.T) {
	tests := []struct {
		name string
		e    event.Event
		want Sound
	}{
		{"heal pickup", event.Event{Type: event.PowerUpCollected, Data: defs.PowerUpHeal}, SoundPickup},
		{"speed pickup", event.Event{Type: event.PowerUpCollected, Data: defs.PowerUpSpeed}, SoundBoost},
		{"pickup without payload", event.Event{Type: event.PowerUpCollected}, SoundPickup},
		{"plain death", event.Event{Type: event.PlayerDied, Data: event.RoundResult{Score: 2, HighScore: 9}}, SoundGameOver},
		{"record death", event.Event{Type: event.PlayerDied, Data: event.RoundResult{Score: 9, HighScore: 9}}, SoundHighScore},
		{"scoreless death", event.Event{Type: event.PlayerDied, Data: event.RoundResult{}}, SoundGameOver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SoundFor(tt.e)
			if !ok || got != tt.want {
				t.Fatalf("got (%v, %v), want %v", got, ok, tt.want)
			}
		})
	}
	if _, ok := SoundFor(event.Event{Type: event.RoundStarted}); ok {
		t.Fatal("round start has no sound")
	}
}

func TestUnsubscribeStopsRequests(t *testing.T) {
	sm := NewSoundManager(1)
	d := event.NewDispatcher()
	sm.Subscribe(d)
	collected := event.Event{Type: event.PowerUpCollected, Data: defs.PowerUpSpeed}

	d.Dispatch(collected)
	if sm.Requested(SoundBoost) != 1 {
		t.Fatalf("requested = %d", sm.Requested(SoundBoost))
	}
	sm.Unsubscribe(d)
	d.Dispatch(collected)
	if sm.Requested(SoundBoost) != 1 {
		t.Fatal("manager still listening after unsubscribe")
	}
}

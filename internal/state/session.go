// internal/state/session.go
package state

import (
	"log"

	"iso-zombie/internal/app"
	"iso-zombie/internal/audio"
	"iso-zombie/internal/event"
	"iso-zombie/internal/input"
	"iso-zombie/internal/storage"
	"iso-zombie/pkg/render"
)

// Session is the running game: it owns the state machine, the simulation,
// the high-score store and the sound effects.
type Session struct {
	sm    *StateMachine
	Game  *app.Game
	store storage.HighScoreStore
	audio *audio.SoundManager

	persistedHigh int
	lastResult    event.RoundResult
	quitting      bool
}

// NewSession loads the high score and opens on the menu. sounds may be nil.
func NewSession(game *app.Game, store storage.HighScoreStore, sounds *audio.SoundManager) *Session {
	s := &Session{
		sm:    NewStateMachine(),
		Game:  game,
		store: store,
		audio: sounds,
	}

	high, err := store.Load()
	if err != nil {
		log.Printf("High score unavailable, starting from %d: %v", high, err)
	}
	s.persistedHigh = high
	game.World.HighScore = high

	if sounds != nil {
		sounds.Subscribe(game.EventDispatcher)
	}
	s.sm.SetState(NewMenuState(s))
	return s
}

func (s *Session) Update(deltaTime float64, in input.Snapshot) {
	s.sm.Update(deltaTime, in)
}

func (s *Session) Draw(c render.Canvas) {
	s.sm.Draw(c)
}

func (s *Session) Phase() Phase {
	if cur := s.sm.Current(); cur != nil {
		return cur.Phase()
	}
	return PhaseMenu
}

// StartRound resets the simulation and switches to play.
func (s *Session) StartRound() {
	s.Game.Reset()
	log.Println("Round started")
	s.sm.SetState(NewPlayState(s))
}

// EndRound persists a new high score and shows the game-over screen.
func (s *Session) EndRound(result event.RoundResult) {
	s.lastResult = result
	log.Printf("Round over: score %d, high score %d", result.Score, result.HighScore)
	s.persistHighScore()
	s.Game.EventDispatcher.Dispatch(event.Event{Type: event.RoundEnded, Data: result})
	s.sm.SetState(NewGameOverState(s))
}

func (s *Session) ToMenu() {
	s.sm.SetState(NewMenuState(s))
}

// Pause freezes play until the pause action is pressed again.
func (s *Session) Pause() {
	if play, ok := s.sm.Current().(*PlayState); ok {
		s.sm.SetState(NewPauseState(s, play))
	}
}

func (s *Session) Resume(play *PlayState) {
	s.sm.SetState(play)
}

func (s *Session) Quit() {
	s.quitting = true
}

func (s *Session) Quitting() bool {
	return s.quitting
}

func (s *Session) HighScore() int {
	return s.Game.World.HighScore
}

func (s *Session) LastResult() event.RoundResult {
	return s.lastResult
}

// Close saves any unsaved high score and releases the audio device.
func (s *Session) Close() {
	s.persistHighScore()
	if s.audio != nil {
		s.audio.Unsubscribe(s.Game.EventDispatcher)
		s.audio.Cleanup()
	}
}

func (s *Session) persistHighScore() {
	high := s.Game.World.HighScore
	if high <= s.persistedHigh {
		return
	}
	if err := s.store.Save(high); err != nil {
		log.Printf("Failed to save high score: %v", err)
		return
	}
	s.persistedHigh = high
}

// internal/state/pause_state.go
package state

import (
	"iso-zombie/internal/config"
	"iso-zombie/internal/input"
	"iso-zombie/pkg/render"
)

// PauseState freezes a round and draws it dimmed underneath.
type PauseState struct {
	session       *Session
	previousState *PlayState
}

var _ State = (*PauseState)(nil)

func NewPauseState(s *Session, prev *PlayState) *PauseState {
	return &PauseState{session: s, previousState: prev}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64, in input.Snapshot) {
	if in.Has(input.ActionPause) {
		s.session.Resume(s.previousState)
	}
}

func (s *PauseState) Draw(c render.Canvas) {
	s.previousState.Draw(c)
	w, h := c.Size()
	c.FillRect(0, 0, float64(w), float64(h), config.PauseDimColor)
	render.TextCentered(c, "PAUSED", float64(w)/2, float64(h)/2-20, 4, config.TextColor)
	render.TextCentered(c, "Press P to resume", float64(w)/2, float64(h)/2+30, 2, config.TextColor)
}

func (s *PauseState) Exit() {}

// Phase is play: a paused round is still the same round.
func (s *PauseState) Phase() Phase { return PhasePlay }

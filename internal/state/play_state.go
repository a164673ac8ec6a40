// internal/state/play_state.go
package state

import (
	"iso-zombie/internal/input"
	"iso-zombie/pkg/render"
)

// PlayState runs the simulation.
type PlayState struct {
	session *Session
}

var _ State = (*PlayState)(nil)

func NewPlayState(s *Session) *PlayState {
	return &PlayState{session: s}
}

func (p *PlayState) Enter() {}

func (p *PlayState) Update(deltaTime float64, in input.Snapshot) {
	if in.Has(input.ActionPause) {
		p.session.Pause()
		return
	}
	game := p.session.Game
	game.HandleActions(in)
	if out := game.Update(deltaTime, in); out.PlayerDied {
		p.session.EndRound(out.Result)
	}
}

func (p *PlayState) Draw(c render.Canvas) {
	p.session.Game.Draw(c)
}

func (p *PlayState) Exit() {}

func (p *PlayState) Phase() Phase { return PhasePlay }

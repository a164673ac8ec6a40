// internal/state/game_over_state.go
package state

import (
	"fmt"

	"iso-zombie/internal/config"
	"iso-zombie/internal/input"
	"iso-zombie/pkg/render"
)

const gameOverHint = "Press R to retry or Enter for menu"

type GameOverState struct {
	session *Session
}

var _ State = (*GameOverState)(nil)

func NewGameOverState(s *Session) *GameOverState {
	return &GameOverState{session: s}
}

func (g *GameOverState) Enter() {}

func (g *GameOverState) Update(deltaTime float64, in input.Snapshot) {
	switch {
	case in.Has(input.ActionRetry):
		g.session.StartRound()
	case in.Has(input.ActionMenu):
		g.session.ToMenu()
	}
}

func (g *GameOverState) Draw(c render.Canvas) {
	c.Fill(config.MenuBackground)
	cx := float64(config.ScreenWidth) / 2
	result := g.session.LastResult()
	render.TextCentered(c, "Game Over", cx, 140, 4, config.TextColor)
	render.TextCentered(c, fmt.Sprintf("Score: %d", result.Score), cx, 230, 2, config.TextColor)
	render.TextCentered(c, fmt.Sprintf("High score: %d", g.session.HighScore()), cx, 260, 2, config.TextColor)
	render.TextCentered(c, gameOverHint, cx, 320, 2, config.TextColor)
}

func (g *GameOverState) Exit() {}

func (g *GameOverState) Phase() Phase { return PhaseGameOver }

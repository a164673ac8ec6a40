// internal/state/menu_state.go
package state

import (
	"fmt"

	"iso-zombie/internal/config"
	"iso-zombie/internal/input"
	"iso-zombie/internal/ui"
	"iso-zombie/pkg/geom"
	"iso-zombie/pkg/render"
)

const menuTitle = "Isometric Zombie"

// MenuState is the title screen with Start and Quit buttons.
type MenuState struct {
	session *Session
	start   *ui.Button
	quit    *ui.Button
	pointer geom.Vec2
}

var _ State = (*MenuState)(nil)

func NewMenuState(s *Session) *MenuState {
	cx, cy := float64(config.ScreenWidth)/2, float64(config.ScreenHeight)/2
	return &MenuState{
		session: s,
		start:   ui.NewButton(cx, cy, 220, 56, "Start"),
		quit:    ui.NewButton(cx, cy+80, 220, 56, "Quit"),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64, in input.Snapshot) {
	m.pointer = in.Pointer
	switch {
	case in.Has(input.ActionStart) || m.start.IsClicked(in.Pointer, in.Clicked):
		m.session.StartRound()
	case in.Has(input.ActionQuit) || m.quit.IsClicked(in.Pointer, in.Clicked):
		m.session.Quit()
	}
}

func (m *MenuState) Draw(c render.Canvas) {
	c.Fill(config.MenuBackground)
	cx := float64(config.ScreenWidth) / 2
	render.TextCentered(c, menuTitle, cx, 140, 4, config.TextColor)
	render.TextCentered(c, fmt.Sprintf("High score: %d", m.session.HighScore()), cx, 220, 2, config.TextColor)
	m.start.Draw(c, m.pointer)
	m.quit.Draw(c, m.pointer)
}

func (m *MenuState) Exit() {}

func (m *MenuState) Phase() Phase { return PhaseMenu }

// internal/entity/powerup.go
package entity

import (
	"iso-zombie/internal/config"
	"iso-zombie/internal/defs"
	"iso-zombie/pkg/geom"
	"iso-zombie/pkg/isomap"
	"iso-zombie/pkg/render"
)

type PowerUp struct {
	Pos    geom.Vec2
	Kind   defs.PowerUpKind
	Radius float64
}

func NewPowerUp(pos geom.Vec2, kind defs.PowerUpKind) *PowerUp {
	return &PowerUp{Pos: pos, Kind: kind, Radius: config.PowerUpRadius}
}

func (p *PowerUp) Position() geom.Vec2 { return p.Pos }
func (p *PowerUp) DepthKey() float64   { return depthKey(p.Pos) }

func (p *PowerUp) Draw(m *isomap.IsoMap, c render.Canvas) {
	ground := m.WorldToScreen(p.Pos)
	drawShadow(c, ground, p.Radius, p.Radius/2)
	c.FillCircle(ground.X, ground.Y, p.Radius, p.Kind.Color())
}

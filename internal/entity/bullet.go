// internal/entity/bullet.go
package entity

import (
	"iso-zombie/internal/config"
	"iso-zombie/pkg/geom"
	"iso-zombie/pkg/isomap"
	"iso-zombie/pkg/render"
)

type Bullet struct {
	Pos       geom.Vec2
	Velocity  geom.Vec2
	Radius    float64
	Remaining float64 // seconds
}

// NewBullet fires from pos along dir, which is expected to be a unit vector.
func NewBullet(pos, dir geom.Vec2, speed, lifetime float64) *Bullet {
	return &Bullet{
		Pos:       pos,
		Velocity:  dir.Scale(speed),
		Radius:    config.BulletRadius,
		Remaining: lifetime,
	}
}

func (b *Bullet) Update(dt float64) {
	b.Pos = b.Pos.Add(b.Velocity.Scale(dt))
	b.Remaining -= dt
}

func (b *Bullet) Alive() bool {
	return b.Remaining > 0
}

func (b *Bullet) Position() geom.Vec2 { return b.Pos }
func (b *Bullet) DepthKey() float64   { return depthKey(b.Pos) }

func (b *Bullet) Draw(m *isomap.IsoMap, c render.Canvas) {
	ground := m.WorldToScreen(b.Pos)
	drawShadow(c, ground, b.Radius, b.Radius/2)
	c.FillCircle(ground.X, ground.Y-config.BulletHeight, b.Radius, config.BulletColor)
}

// internal/entity/zombie.go
package entity

import (
	"iso-zombie/internal/config"
	"iso-zombie/pkg/geom"
	"iso-zombie/pkg/isomap"
	"iso-zombie/pkg/render"
)

type Zombie struct {
	Pos          geom.Vec2
	Radius       float64
	Speed        float64
	StopDistance float64
}

func NewZombie(pos geom.Vec2, speed, stopDistance float64) *Zombie {
	return &Zombie{
		Pos:          pos,
		Radius:       config.ZombieRadius,
		Speed:        speed,
		StopDistance: stopDistance,
	}
}

// Update walks toward target. Once within StopDistance the zombie is pinned
// exactly StopDistance away so it never overlaps the target.
func (z *Zombie) Update(target geom.Vec2, dt float64) {
	d := target.Sub(z.Pos)
	dir, ok := d.Normalize()
	if !ok {
		return
	}
	if d.Len() <= z.StopDistance {
		z.Pos = target.Sub(dir.Scale(z.StopDistance))
		return
	}
	z.Pos = z.Pos.Add(dir.Scale(z.Speed * dt))
}

func (z *Zombie) Position() geom.Vec2 { return z.Pos }
func (z *Zombie) DepthKey() float64   { return depthKey(z.Pos) }

func (z *Zombie) Draw(m *isomap.IsoMap, c render.Canvas) {
	drawHumanoid(c, m.WorldToScreen(z.Pos), config.ZombieHeight, config.ZombieColor, config.ZombieHeadColor)
}

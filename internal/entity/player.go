// internal/entity/player.go
package entity

import (
	"iso-zombie/internal/config"
	"iso-zombie/pkg/geom"
	"iso-zombie/pkg/isomap"
	"iso-zombie/pkg/render"
)

const gunLength = 14.0

type Player struct {
	Pos         geom.Vec2
	Radius      float64 // screen pixels
	Speed       float64 // tiles per second
	Aim         geom.Vec2
	MaxHP       int
	HP          int
	HitTimer    float64
	HitCooldown float64
}

// NewPlayer creates a full-health player at pos aiming along +x.
func NewPlayer(pos geom.Vec2, rules config.Rules) *Player {
	return &Player{
		Pos:         pos,
		Radius:      config.PlayerRadius,
		Speed:       rules.PlayerSpeed,
		Aim:         geom.V(1, 0),
		MaxHP:       rules.PlayerMaxHP,
		HP:          rules.PlayerMaxHP,
		HitCooldown: rules.PlayerHitCooldown,
	}
}

// Update moves the player along the raw input direction and keeps it inside
// [0, bounds-1] on both axes. Diagonal input is normalized so every
// direction moves at the same speed.
func (p *Player) Update(move geom.Vec2, dt float64, bounds geom.Vec2, speedMultiplier float64) {
	dir, ok := move.Normalize()
	if !ok {
		dir = geom.Vec2{}
	}
	p.HitTimer = geom.Approach(p.HitTimer, dt)
	p.Pos = p.Pos.Add(dir.Scale(p.Speed * speedMultiplier * dt))
	p.Pos.X = geom.Clamp(p.Pos.X, 0, bounds.X-1)
	p.Pos.Y = geom.Clamp(p.Pos.Y, 0, bounds.Y-1)
}

// SetAim points the player at target. Aiming at its own position keeps the
// previous direction.
func (p *Player) SetAim(target geom.Vec2) {
	if dir, ok := target.Sub(p.Pos).Normalize(); ok {
		p.Aim = dir
	}
}

// TakeDamage applies amount unless the player is still recovering from the
// previous hit. It reports whether damage was applied.
func (p *Player) TakeDamage(amount int) bool {
	if p.HitTimer > 0 {
		return false
	}
	p.HP = max(0, p.HP-amount)
	p.HitTimer = p.HitCooldown
	return true
}

func (p *Player) Heal(amount int) {
	p.HP = min(p.MaxHP, p.HP+amount)
}

func (p *Player) Dead() bool {
	return p.HP <= 0
}

func (p *Player) Position() geom.Vec2 { return p.Pos }
func (p *Player) DepthKey() float64   { return depthKey(p.Pos) }

func (p *Player) Draw(m *isomap.IsoMap, c render.Canvas) {
	ground := m.WorldToScreen(p.Pos)
	anchor := drawHumanoid(c, ground, config.PlayerHeight, config.PlayerColor, config.PlayerHeadColor)

	// Barrel follows the aim as it appears on screen, not in world space.
	if dir, ok := m.Project(p.Aim).Normalize(); ok {
		from := geom.V(anchor.X, anchor.Y+4)
		to := from.Add(dir.Scale(gunLength))
		c.Line(from.X, from.Y, to.X, to.Y, 3, config.GunColor)
	}
}

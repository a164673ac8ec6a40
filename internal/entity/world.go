// internal/entity/world.go
package entity

import (
	"iso-zombie/internal/config"
	"iso-zombie/pkg/geom"
)

// World owns every entity and every round-scoped counter. Entities never
// reference each other; systems query positions through the World.
type World struct {
	Rules         config.Rules
	Width, Height int // tiles

	Player   *Player
	Zombies  []*Zombie // spawn order
	Bullets  []*Bullet // firing order
	PowerUps []*PowerUp

	Score          int
	HighScore      int // survives Reset
	ZombiesSpawned int

	SpawnTimer      float64
	PowerUpTimer    float64
	SpeedBoostTimer float64
	FireHoldTimer   float64
	FireTimer       float64

	Upgrades Upgrades
}

func NewWorld(rules config.Rules, width, height int) *World {
	w := &World{Rules: rules, Width: width, Height: height}
	w.Reset()
	return w
}

// Reset starts a fresh round: entities, timers, score and ledger go back to
// their initial values and a new player stands at the map center.
func (w *World) Reset() {
	w.ClearEntities()
	w.Player = NewPlayer(w.Center(), w.Rules)
	w.Score = 0
	w.ZombiesSpawned = 0
	w.SpawnTimer = 0
	w.PowerUpTimer = 0
	w.SpeedBoostTimer = 0
	w.FireHoldTimer = 0
	w.FireTimer = 0
	w.Upgrades = NewUpgrades(w.Rules.UpgradeScoreStep)
}

func (w *World) ClearEntities() {
	w.Zombies = nil
	w.Bullets = nil
	w.PowerUps = nil
}

func (w *World) Center() geom.Vec2 {
	return geom.V(float64(w.Width)/2, float64(w.Height)/2)
}

func (w *World) Bounds() geom.Vec2 {
	return geom.V(float64(w.Width), float64(w.Height))
}

// SpeedMultiplier is the player speed factor from an active speed pickup.
func (w *World) SpeedMultiplier() float64 {
	if w.SpeedBoostTimer > 0 {
		return w.Rules.PowerUpSpeedBoost
	}
	return 1
}

// Drawables returns every entity in insertion order: power-ups, zombies,
// bullets, then the player.
func (w *World) Drawables() []Drawable {
	out := make([]Drawable, 0, len(w.PowerUps)+len(w.Zombies)+len(w.Bullets)+1)
	for _, p := range w.PowerUps {
		out = append(out, p)
	}
	for _, z := range w.Zombies {
		out = append(out, z)
	}
	for _, b := range w.Bullets {
		out = append(out, b)
	}
	if w.Player != nil {
		out = append(out, w.Player)
	}
	return out
}

// internal/system/fire.go
package system

import (
	"iso-zombie/internal/entity"
	"iso-zombie/internal/event"
)

// FireControl turns a held trigger into bullets. Holding first has to wind
// up for FireHoldDelay; after that a bullet leaves every
// 1/(FireRate+bonus) seconds. Releasing resets both timers.
type FireControl struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewFireControl(world *entity.World, eventDispatcher *event.Dispatcher) *FireControl {
	return &FireControl{world: world, eventDispatcher: eventDispatcher}
}

// Update returns the bullet fired this frame, if any.
func (s *FireControl) Update(deltaTime float64, held bool) *entity.Bullet {
	w := s.world
	if !held {
		w.FireHoldTimer = 0
		w.FireTimer = 0
		return nil
	}

	w.FireHoldTimer += deltaTime
	if w.FireHoldTimer < w.Rules.FireHoldDelay {
		return nil
	}
	w.FireTimer += deltaTime
	if w.FireTimer < s.Cooldown() {
		return nil
	}
	w.FireTimer = 0
	return s.spawnBullet()
}

// Cooldown is the current time between shots.
func (s *FireControl) Cooldown() float64 {
	return 1.0 / (s.world.Rules.FireRate + s.world.Upgrades.FireRateBonus)
}

func (s *FireControl) spawnBullet() *entity.Bullet {
	w := s.world
	dir, ok := w.Player.Aim.Normalize()
	if !ok {
		return nil
	}
	speed := w.Rules.BulletSpeed + w.Upgrades.BulletSpeedBonus
	b := entity.NewBullet(w.Player.Pos, dir, speed, w.Rules.BulletLifetime)
	w.Bullets = append(w.Bullets, b)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BulletFired, Data: b.Pos})
	return b
}

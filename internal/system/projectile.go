// internal/system/projectile.go
package system

import (
	"slices"

	"iso-zombie/internal/entity"
)

// ProjectileSystem advances bullets and drops the expired ones.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, b := range s.world.Bullets {
		b.Update(deltaTime)
	}
	s.world.Bullets = slices.DeleteFunc(s.world.Bullets, func(b *entity.Bullet) bool {
		return !b.Alive()
	})
}

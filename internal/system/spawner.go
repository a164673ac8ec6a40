// internal/system/spawner.go
package system

import (
	"iso-zombie/internal/defs"
	"iso-zombie/internal/entity"
	"iso-zombie/internal/utils"
	"iso-zombie/pkg/geom"
)

// ZombieSpawner adds one zombie on a random map edge every
// ZombieSpawnInterval while the population is below MaxZombies.
type ZombieSpawner struct {
	world *entity.World
	rng   *utils.PRNGService
}

func NewZombieSpawner(world *entity.World, rng *utils.PRNGService) *ZombieSpawner {
	return &ZombieSpawner{world: world, rng: rng}
}

func (s *ZombieSpawner) Update(deltaTime float64) {
	w := s.world
	w.SpawnTimer += deltaTime
	if w.SpawnTimer >= w.Rules.ZombieSpawnInterval && len(w.Zombies) < w.Rules.MaxZombies {
		s.SpawnAt(s.edgePoint())
		w.SpawnTimer = 0
	}
}

// SpawnAt adds a zombie at pos. Its speed grows with the number of zombies
// spawned this round, not with how many are alive.
func (s *ZombieSpawner) SpawnAt(pos geom.Vec2) *entity.Zombie {
	w := s.world
	w.ZombiesSpawned++
	speed := w.Rules.ZombieSpeed * (1 + float64(w.ZombiesSpawned-1)*w.Rules.ZombieSpeedGrowth)
	z := entity.NewZombie(pos, speed, w.Rules.ZombieStopDistance)
	w.Zombies = append(w.Zombies, z)
	return z
}

// edgePoint picks one of the four edges with equal chance and a uniform
// point along it.
func (s *ZombieSpawner) edgePoint() geom.Vec2 {
	maxX := float64(s.world.Width - 1)
	maxY := float64(s.world.Height - 1)
	switch s.rng.Intn(4) {
	case 0: // top
		return geom.V(s.rng.Uniform(0, maxX), 0)
	case 1: // bottom
		return geom.V(s.rng.Uniform(0, maxX), maxY)
	case 2: // left
		return geom.V(0, s.rng.Uniform(0, maxY))
	default: // right
		return geom.V(maxX, s.rng.Uniform(0, maxY))
	}
}

// PowerUpSpawner drops a pickup inside the map border every
// PowerUpSpawnInterval while fewer than MaxPowerUps are on the ground.
type PowerUpSpawner struct {
	world *entity.World
	rng   *utils.PRNGService
}

func NewPowerUpSpawner(world *entity.World, rng *utils.PRNGService) *PowerUpSpawner {
	return &PowerUpSpawner{world: world, rng: rng}
}

func (s *PowerUpSpawner) Update(deltaTime float64) {
	w := s.world
	w.PowerUpTimer += deltaTime
	if w.PowerUpTimer >= w.Rules.PowerUpSpawnInterval && len(w.PowerUps) < w.Rules.MaxPowerUps {
		kind := defs.PowerUpKinds[s.rng.Intn(len(defs.PowerUpKinds))]
		pos := geom.V(
			s.rng.Uniform(1, float64(w.Width-2)),
			s.rng.Uniform(1, float64(w.Height-2)),
		)
		s.SpawnAt(pos, kind)
		w.PowerUpTimer = 0
	}
}

func (s *PowerUpSpawner) SpawnAt(pos geom.Vec2, kind defs.PowerUpKind) *entity.PowerUp {
	p := entity.NewPowerUp(pos, kind)
	s.world.PowerUps = append(s.world.PowerUps, p)
	return p
}

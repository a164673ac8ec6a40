// internal/system/combat.go
package system

import (
	"slices"

	"iso-zombie/internal/entity"
	"iso-zombie/internal/event"
	"iso-zombie/pkg/isomap"
)

// CombatSystem resolves zombie attacks on the player and bullet hits on
// zombies. All overlap tests happen in screen space.
type CombatSystem struct {
	world           *entity.World
	isoMap          *isomap.IsoMap
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, isoMap *isomap.IsoMap, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{world: world, isoMap: isoMap, eventDispatcher: eventDispatcher}
}

// UpdateZombies moves every zombie toward the player and lets it bite on
// contact. It stops at the first bite that drops the player to zero HP and
// reports true; the zombies after it are not updated this frame.
func (s *CombatSystem) UpdateZombies(deltaTime float64) (playerDied bool) {
	w := s.world
	p := w.Player
	for _, z := range w.Zombies {
		z.Update(p.Pos, deltaTime)
		if !overlapOnScreen(s.isoMap, z.Pos, p.Pos, z.Radius, p.Radius) {
			continue
		}
		if p.TakeDamage(w.Rules.ZombieDamage) {
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.PlayerHit,
				Data: event.PlayerHitData{Damage: w.Rules.ZombieDamage, HPLeft: p.HP, Attacker: z.Pos},
			})
		}
		if p.Dead() {
			return true
		}
	}
	return false
}

// ResolveHits removes every bullet that touches a zombie together with that
// zombie. Bullets are checked in firing order against zombies in spawn
// order, and each bullet takes at most the first zombie it overlaps.
// It returns the number of kills.
func (s *CombatSystem) ResolveHits() int {
	w := s.world
	kills := 0
	kept := w.Bullets[:0]
	for _, b := range w.Bullets {
		hit := -1
		for j, z := range w.Zombies {
			if overlapOnScreen(s.isoMap, b.Pos, z.Pos, b.Radius, z.Radius) {
				hit = j
				break
			}
		}
		if hit < 0 {
			kept = append(kept, b)
			continue
		}
		dead := w.Zombies[hit]
		w.Zombies = slices.Delete(w.Zombies, hit, hit+1)
		kills++
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.ZombieKilled,
			Data: event.ZombieKilledData{Pos: dead.Pos},
		})
	}
	clear(w.Bullets[len(kept):])
	w.Bullets = kept
	return kills
}

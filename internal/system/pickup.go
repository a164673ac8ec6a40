// internal/system/pickup.go
package system

import (
	"slices"

	"iso-zombie/internal/defs"
	"iso-zombie/internal/entity"
	"iso-zombie/internal/event"
	"iso-zombie/pkg/geom"
	"iso-zombie/pkg/isomap"
)

// PickupSystem applies power-ups the player walks over and runs down the
// speed boost.
type PickupSystem struct {
	world           *entity.World
	isoMap          *isomap.IsoMap
	eventDispatcher *event.Dispatcher
}

func NewPickupSystem(world *entity.World, isoMap *isomap.IsoMap, eventDispatcher *event.Dispatcher) *PickupSystem {
	return &PickupSystem{world: world, isoMap: isoMap, eventDispatcher: eventDispatcher}
}

func (s *PickupSystem) DecayBoost(deltaTime float64) {
	s.world.SpeedBoostTimer = geom.Approach(s.world.SpeedBoostTimer, deltaTime)
}

func (s *PickupSystem) Update() {
	w := s.world
	p := w.Player
	w.PowerUps = slices.DeleteFunc(w.PowerUps, func(pu *entity.PowerUp) bool {
		if !overlapOnScreen(s.isoMap, pu.Pos, p.Pos, pu.Radius, p.Radius) {
			return false
		}
		s.apply(pu.Kind)
		s.eventDispatcher.Dispatch(event.Event{Type: event.PowerUpCollected, Data: pu.Kind})
		return true
	})
}

func (s *PickupSystem) apply(kind defs.PowerUpKind) {
	w := s.world
	switch kind {
	case defs.PowerUpHeal:
		w.Player.Heal(w.Rules.PowerUpHealAmount)
	case defs.PowerUpSpeed:
		w.SpeedBoostTimer = w.Rules.PowerUpSpeedDuration
	}
}

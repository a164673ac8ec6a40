// internal/system/progression.go
package system

import (
	"iso-zombie/internal/defs"
	"iso-zombie/internal/entity"
	"iso-zombie/internal/event"
)

// Progression keeps score, hands out upgrade points and applies purchases.
type Progression struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewProgression(world *entity.World, eventDispatcher *event.Dispatcher) *Progression {
	p := &Progression{world: world, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(event.ZombieKilled, p)
	return p
}

func (s *Progression) OnEvent(e event.Event) {
	if e.Type != event.ZombieKilled {
		return
	}
	w := s.world
	w.Score++
	w.Upgrades.RecordScore(w.Score, w.Rules.UpgradeScoreStep)
	if w.Score > w.HighScore {
		w.HighScore = w.Score
	}
}

// Buy spends one point on kind. Without a point, or with kind already at
// the cap, nothing changes and Buy returns false.
func (s *Progression) Buy(kind defs.UpgradeKind) bool {
	w := s.world
	if !w.Upgrades.CanBuy(kind, w.Rules.MaxUpgradeLevel) {
		return false
	}
	w.Upgrades.Spend(kind)

	switch kind {
	case defs.UpgradeHP:
		w.Player.MaxHP += w.Rules.UpgradeHPBonus
		w.Player.HP += w.Rules.UpgradeHPBonus
	case defs.UpgradeSpeed:
		w.Player.Speed += w.Rules.UpgradeSpeedBonus
	case defs.UpgradeBullet:
		w.Upgrades.BulletSpeedBonus += w.Rules.UpgradeBulletSpeedBonus
	case defs.UpgradeFire:
		w.Upgrades.FireRateBonus += w.Rules.UpgradeFireRateBonus
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.UpgradePurchased, Data: kind})
	return true
}

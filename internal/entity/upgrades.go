// internal/entity/upgrades.go
package entity

import "iso-zombie/internal/defs"

// Upgrades is the per-round upgrade ledger.
type Upgrades struct {
	Levels        [defs.UpgradeKindCount]int
	Points        int // unspent
	NextThreshold int // score at which the next point is granted

	BulletSpeedBonus float64
	FireRateBonus    float64
}

func NewUpgrades(step int) Upgrades {
	return Upgrades{NextThreshold: step}
}

func (u *Upgrades) Level(kind defs.UpgradeKind) int {
	if kind < 0 || int(kind) >= len(u.Levels) {
		return 0
	}
	return u.Levels[kind]
}

// CanBuy reports whether a point is available and kind is below maxLevel.
func (u *Upgrades) CanBuy(kind defs.UpgradeKind, maxLevel int) bool {
	if kind < 0 || int(kind) >= len(u.Levels) {
		return false
	}
	return u.Points > 0 && u.Levels[kind] < maxLevel
}

// Spend consumes a point and raises kind by one level. Callers check CanBuy.
func (u *Upgrades) Spend(kind defs.UpgradeKind) {
	u.Points--
	u.Levels[kind]++
}

// RecordScore grants one point when score has reached the threshold and
// moves the threshold up by step. It is called once per kill.
func (u *Upgrades) RecordScore(score, step int) bool {
	if score < u.NextThreshold {
		return false
	}
	u.Points++
	u.NextThreshold += step
	return true
}

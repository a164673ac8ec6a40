// internal/event/types.go
package event

import (
	"iso-zombie/internal/defs"
	"iso-zombie/pkg/geom"
)

const (
	ZombieKilled     EventType = "ZombieKilled"     // ZombieKilledData
	PlayerHit        EventType = "PlayerHit"        // PlayerHitData
	PlayerDied       EventType = "PlayerDied"       // RoundResult
	PowerUpCollected EventType = "PowerUpCollected" // defs.PowerUpKind
	BulletFired      EventType = "BulletFired"      // geom.Vec2, the muzzle position
	UpgradePurchased EventType = "UpgradePurchased" // defs.UpgradeKind
	RoundStarted     EventType = "RoundStarted"     // nil
	RoundEnded       EventType = "RoundEnded"       // RoundResult
)

type ZombieKilledData struct {
	Pos geom.Vec2
}

type PlayerHitData struct {
	Damage   int
	HPLeft   int
	Attacker geom.Vec2
}

// RoundResult summarises a finished round.
type RoundResult struct {
	Score     int
	HighScore int
}

// Payload helpers keep type switches out of listeners.

func PowerUpKindOf(e Event) (defs.PowerUpKind, bool) {
	k, ok := e.Data.(defs.PowerUpKind)
	return k, ok
}

func RoundResultOf(e Event) (RoundResult, bool) {
	r, ok := e.Data.(RoundResult)
	return r, ok
}

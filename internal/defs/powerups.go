// internal/defs/powerups.go
package defs

import (
	"image/color"

	"iso-zombie/internal/config"
)

// PowerUpKind is the effect a pickup applies.
type PowerUpKind int

const (
	PowerUpHeal PowerUpKind = iota
	PowerUpSpeed
)

// PowerUpKinds is the set the spawner picks from, each with equal weight.
var PowerUpKinds = []PowerUpKind{PowerUpHeal, PowerUpSpeed}

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpHeal:
		return "heal"
	case PowerUpSpeed:
		return "speed"
	}
	return "unknown"
}

// Color returns the pickup's body colour.
func (k PowerUpKind) Color() color.RGBA {
	if k == PowerUpSpeed {
		return config.PowerUpSpeedColor
	}
	return config.PowerUpHealColor
}

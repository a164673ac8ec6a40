// internal/input/input.go
package input

import (
	"slices"

	"iso-zombie/pkg/geom"
)

// Action is a discrete key press consumed by the states.
type Action int

const (
	ActionStart Action = iota
	ActionQuit
	ActionRetry
	ActionMenu
	ActionPause
	ActionUpgradeHP
	ActionUpgradeSpeed
	ActionUpgradeBullet
	ActionUpgradeFire
)

// Snapshot is one frame of input. Held keys and the pointer are sampled;
// Actions and Clicked are edges that happened this frame.
type Snapshot struct {
	Up, Down, Left, Right bool // W, S, A, D
	Pointer               geom.Vec2
	FireHeld              bool
	Clicked               bool
	Actions               []Action
}

func (s Snapshot) Has(a Action) bool {
	return slices.Contains(s.Actions, a)
}

// MoveVector sums the held directions in world space. The screen axes are
// diagonal on the grid, so "up" is (-1,-1) and "right" is (1,-1). The result
// is not normalized.
func (s Snapshot) MoveVector() geom.Vec2 {
	var v geom.Vec2
	if s.Up {
		v = v.Add(geom.V(-1, -1))
	}
	if s.Down {
		v = v.Add(geom.V(1, 1))
	}
	if s.Left {
		v = v.Add(geom.V(-1, 1))
	}
	if s.Right {
		v = v.Add(geom.V(1, -1))
	}
	return v
}

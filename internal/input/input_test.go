package input

import (
	"testing"

	"iso-zombie/pkg/geom"
)

func TestMoveVector(t *testing.T) {
	tests := []struct {
		name string
		in   Snapshot
		want geom.Vec2
	}{
		{"none", Snapshot{}, geom.V(0, 0)},
		{"up", Snapshot{Up: true}, geom.V(-1, -1)},
		{"down", Snapshot{Down: true}, geom.V(1, 1)},
		{"left", Snapshot{Left: true}, geom.V(-1, 1)},
		{"right", Snapshot{Right: true}, geom.V(1, -1)},
		{"up-left", Snapshot{Up: true, Left: true}, geom.V(-2, 0)},
		{"down-right", Snapshot{Down: true, Right: true}, geom.V(2, 0)},
		{"opposites cancel", Snapshot{Up: true, Down: true}, geom.V(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.MoveVector(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHas(t *testing.T) {
	s := Snapshot{Actions: []Action{ActionRetry, ActionUpgradeFire}}
	if !s.Has(ActionUpgradeFire) || s.Has(ActionStart) {
		t.Fatalf("Has is wrong for %v", s.Actions)
	}
}

// internal/system/movement.go
package system

import (
	"iso-zombie/internal/entity"
	"iso-zombie/pkg/geom"
	"iso-zombie/pkg/isomap"
)

// MovementSystem moves the player, keeps the camera on it and turns the
// pointer into an aim direction.
type MovementSystem struct {
	world        *entity.World
	isoMap       *isomap.IsoMap
	screenCenter geom.Vec2
}

func NewMovementSystem(world *entity.World, isoMap *isomap.IsoMap, screenCenter geom.Vec2) *MovementSystem {
	return &MovementSystem{world: world, isoMap: isoMap, screenCenter: screenCenter}
}

// Update applies the raw movement vector, recenters the camera and then
// aims at pointer. The camera moves first so the pointer is unprojected
// with this frame's origin.
func (s *MovementSystem) Update(deltaTime float64, move, pointer geom.Vec2) {
	p := s.world.Player
	p.Update(move, deltaTime, s.world.Bounds(), s.world.SpeedMultiplier())
	s.FollowPlayer()
	p.SetAim(s.isoMap.ScreenToWorld(pointer))
}

func (s *MovementSystem) FollowPlayer() {
	s.isoMap.Follow(s.world.Player.Pos, s.screenCenter)
}

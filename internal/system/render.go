// internal/system/render.go
package system

import (
	"cmp"
	"slices"

	"iso-zombie/internal/entity"
	"iso-zombie/pkg/isomap"
	"iso-zombie/pkg/render"
)

// RenderSystem draws the entities back to front.
type RenderSystem struct {
	world  *entity.World
	isoMap *isomap.IsoMap
}

func NewRenderSystem(world *entity.World, isoMap *isomap.IsoMap) *RenderSystem {
	return &RenderSystem{world: world, isoMap: isoMap}
}

// Sorted returns the entities ordered by world x+y, a painter's-algorithm
// approximation for the isometric view. The sort is stable, so entities
// with equal keys keep the order power-ups, zombies, bullets, player.
func (s *RenderSystem) Sorted() []entity.Drawable {
	ds := s.world.Drawables()
	slices.SortStableFunc(ds, func(a, b entity.Drawable) int {
		return cmp.Compare(a.DepthKey(), b.DepthKey())
	})
	return ds
}

func (s *RenderSystem) Draw(c render.Canvas) {
	for _, d := range s.Sorted() {
		d.Draw(s.isoMap, c)
	}
}

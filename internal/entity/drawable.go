// internal/entity/drawable.go
package entity

import (
	"image/color"

	"iso-zombie/internal/config"
	"iso-zombie/pkg/geom"
	"iso-zombie/pkg/isomap"
	"iso-zombie/pkg/render"
)

// Drawable is implemented by the four entity kinds. Draw must not change
// any state.
type Drawable interface {
	Position() geom.Vec2
	DepthKey() float64
	Draw(m *isomap.IsoMap, c render.Canvas)
}

var (
	_ Drawable = (*Player)(nil)
	_ Drawable = (*Zombie)(nil)
	_ Drawable = (*Bullet)(nil)
	_ Drawable = (*PowerUp)(nil)
)

// depthKey is the painter's order on an isometric grid: cells further down
// the screen have a larger x+y.
func depthKey(p geom.Vec2) float64 {
	return p.X + p.Y
}

func drawShadow(c render.Canvas, ground geom.Vec2, rx, ry float64) {
	c.FillEllipse(ground.X, ground.Y, rx, ry, config.ShadowColor)
}

// drawHumanoid draws shadow, body and head and returns the body anchor, which
// sits height pixels above the ground point.
func drawHumanoid(c render.Canvas, ground geom.Vec2, height float64, body, head color.Color) geom.Vec2 {
	drawShadow(c, ground, 12, 4)
	anchor := geom.V(ground.X, ground.Y-height)
	c.FillEllipse(anchor.X, anchor.Y+4, 10, 14, body)
	c.FillCircle(anchor.X, anchor.Y-18, 6, head)
	return anchor
}

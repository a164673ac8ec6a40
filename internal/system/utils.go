// internal/system/utils.go
package system

import (
	"iso-zombie/pkg/geom"
	"iso-zombie/pkg/isomap"
)

// overlapOnScreen is the collision test used for every pair of entities:
// circles of radius ra and rb (pixels) around the projected positions.
func overlapOnScreen(m *isomap.IsoMap, a, b geom.Vec2, ra, rb float64) bool {
	r := ra + rb
	return m.WorldToScreen(a).Sub(m.WorldToScreen(b)).LenSq() < r*r
}

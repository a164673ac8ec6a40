// pkg/isomap/isomap.go
package isomap

import "iso-zombie/pkg/geom"

// IsoMap is the isometric grid: it converts between world grid coordinates
// and screen pixels and holds the static decorations of the map.
type IsoMap struct {
	Width, Height         int // tiles
	TileWidth, TileHeight float64
	Origin                geom.Vec2 // screen position of world (0,0)

	decorations []Decoration
}

// New builds a map and generates its decorations from seed.
func New(width, height int, tileWidth, tileHeight float64, origin geom.Vec2, seed int64) *IsoMap {
	return &IsoMap{
		Width:       width,
		Height:      height,
		TileWidth:   tileWidth,
		TileHeight:  tileHeight,
		Origin:      origin,
		decorations: GenerateDecorations(width, height, seed),
	}
}

// Project converts world coordinates to screen space without the origin offset.
func (m *IsoMap) Project(w geom.Vec2) geom.Vec2 {
	return geom.Vec2{
		X: (w.X - w.Y) * (m.TileWidth / 2),
		Y: (w.X + w.Y) * (m.TileHeight / 2),
	}
}

// WorldToScreen converts world grid coordinates to screen pixels.
func (m *IsoMap) WorldToScreen(w geom.Vec2) geom.Vec2 {
	return m.Project(w).Add(m.Origin)
}

// ScreenToWorld is the exact inverse of WorldToScreen.
func (m *IsoMap) ScreenToWorld(s geom.Vec2) geom.Vec2 {
	p := s.Sub(m.Origin)
	sx := p.X / (m.TileWidth / 2)
	sy := p.Y / (m.TileHeight / 2)
	return geom.Vec2{
		X: (sx + sy) / 2,
		Y: (sy - sx) / 2,
	}
}

// Recenter replaces the screen origin.
func (m *IsoMap) Recenter(origin geom.Vec2) {
	m.Origin = origin
}

// Follow recenters the map so that focus is drawn at screenCenter.
func (m *IsoMap) Follow(focus, screenCenter geom.Vec2) {
	m.Recenter(screenCenter.Sub(m.Project(focus)))
}

// Center returns the world coordinates of the middle of the map.
func (m *IsoMap) Center() geom.Vec2 {
	return geom.Vec2{X: float64(m.Width) / 2, Y: float64(m.Height) / 2}
}

// Decorations returns the decorations in generation order.
func (m *IsoMap) Decorations() []Decoration {
	return m.decorations
}

// pkg/render/map_renderer.go
package render

import (
	"iso-zombie/pkg/geom"
	"iso-zombie/pkg/isomap"
)

// MapRenderer draws the static layer of an isometric map: tiles, grid
// outline, grass marks and decorations.
type MapRenderer struct {
	palette MapPalette
	// GrassEvery marks cells with (x+y)%GrassEvery == 0. Zero disables grass.
	GrassEvery int
}

func NewMapRenderer(palette MapPalette, grassEvery int) *MapRenderer {
	if palette.GridWidth <= 0 {
		palette.GridWidth = 1
	}
	return &MapRenderer{palette: palette, GrassEvery: grassEvery}
}

func (r *MapRenderer) Palette() MapPalette {
	return r.palette
}

// Draw renders every tile in row-major order, then the decorations in their
// generation order so that later props overlap earlier ones.
func (r *MapRenderer) Draw(c Canvas, m *isomap.IsoMap) {
	halfW, halfH := m.TileWidth/2, m.TileHeight/2
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			center := m.WorldToScreen(geom.V(float64(x), float64(y)))
			tile := Diamond(center, halfW, halfH)

			fill := r.palette.Tile1
			if (x+y)%2 == 1 {
				fill = r.palette.Tile2
			}
			c.FillPolygon(tile, fill)
			c.StrokePolygon(tile, r.palette.GridWidth, r.palette.Grid)

			if r.GrassEvery > 0 && (x+y)%r.GrassEvery == 0 {
				c.Line(center.X-2, center.Y, center.X+2, center.Y-3, 1, r.palette.GrassDetail)
			}
		}
	}

	for _, d := range m.Decorations() {
		r.drawDecoration(c, m.WorldToScreen(d.Pos), d.Kind)
	}
}

func (r *MapRenderer) drawDecoration(c Canvas, p geom.Vec2, kind isomap.DecorationKind) {
	switch kind {
	case isomap.DecorationTree:
		c.FillRect(p.X-3, p.Y-14, 6, 12, r.palette.TreeTrunk)
		c.FillCircle(p.X, p.Y-20, 12, r.palette.Tree)
	case isomap.DecorationRock:
		c.FillEllipse(p.X, p.Y-3, 8, 6, r.palette.Rock)
	case isomap.DecorationFlower:
		c.FillCircle(p.X, p.Y-8, 5, r.palette.Flower)
	}
}

// pkg/render/canvas.go
package render

import (
	"image/color"

	"iso-zombie/pkg/geom"
)

// Canvas is the draw-call sink used by everything that renders. Coordinates
// are screen pixels; text is positioned by its top-left corner.
type Canvas interface {
	Size() (w, h int)
	Fill(clr color.Color)
	FillPolygon(pts []geom.Vec2, clr color.Color)
	StrokePolygon(pts []geom.Vec2, width float64, clr color.Color)
	FillEllipse(cx, cy, rx, ry float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h, width float64, clr color.Color)
	Line(x0, y0, x1, y1, width float64, clr color.Color)
	Text(s string, x, y, scale float64, clr color.Color)
	MeasureText(s string, scale float64) (w, h float64)
}

// Glyph metrics of the bitmap HUD font (basicfont.Face7x13).
const (
	GlyphWidth  = 7
	GlyphHeight = 13
)

// TextCentered draws s centered on (cx, cy).
func TextCentered(c Canvas, s string, cx, cy, scale float64, clr color.Color) {
	w, h := c.MeasureText(s, scale)
	c.Text(s, cx-w/2, cy-h/2, scale, clr)
}

// Diamond returns the four corners of an isometric tile centered at center.
func Diamond(center geom.Vec2, halfW, halfH float64) []geom.Vec2 {
	return []geom.Vec2{
		{X: center.X, Y: center.Y - halfH},
		{X: center.X + halfW, Y: center.Y},
		{X: center.X, Y: center.Y + halfH},
		{X: center.X - halfW, Y: center.Y},
	}
}

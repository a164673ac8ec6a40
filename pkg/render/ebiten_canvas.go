// pkg/render/ebiten_canvas.go
package render

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"iso-zombie/pkg/geom"
)

const ellipseSegments = 24

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image

	hudFace = text.NewGoXFace(basicfont.Face7x13)
)

// whiteSource returns a 1x1 white region surrounded by white pixels, so
// filtering at the edges of DrawTriangles never samples transparency.
func whiteSource() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// EbitenCanvas draws onto an ebiten image.
type EbitenCanvas struct {
	dst *ebiten.Image
	vs  []ebiten.Vertex
	is  []uint16
}

// NewEbitenCanvas wraps dst. The canvas reuses its vertex buffers across
// calls, so keep one per frame target.
func NewEbitenCanvas(dst *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{
		dst: dst,
		vs:  make([]ebiten.Vertex, 0, 64),
		is:  make([]uint16, 0, 96),
	}
}

// Reset retargets the canvas at a new frame image.
func (c *EbitenCanvas) Reset(dst *ebiten.Image) {
	c.dst = dst
}

func (c *EbitenCanvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (c *EbitenCanvas) Fill(clr color.Color) {
	c.dst.Fill(clr)
}

func (c *EbitenCanvas) FillPolygon(pts []geom.Vec2, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	path := polygonPath(pts)
	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	c.drawTriangles(clr)
}

func (c *EbitenCanvas) StrokePolygon(pts []geom.Vec2, width float64, clr color.Color) {
	if len(pts) < 2 {
		return
	}
	path := polygonPath(pts)
	c.vs, c.is = path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width: float32(width),
	})
	c.drawTriangles(clr)
}

func (c *EbitenCanvas) FillEllipse(cx, cy, rx, ry float64, clr color.Color) {
	pts := make([]geom.Vec2, ellipseSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		pts[i] = geom.V(cx+rx*math.Cos(a), cy+ry*math.Sin(a))
	}
	c.FillPolygon(pts, clr)
}

func (c *EbitenCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), clr, true)
}

func (c *EbitenCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *EbitenCanvas) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

func (c *EbitenCanvas) Line(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

func (c *EbitenCanvas) Text(s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.dst, s, hudFace, op)
}

func (c *EbitenCanvas) MeasureText(s string, scale float64) (float64, float64) {
	w, h := text.Measure(s, hudFace, 0)
	return w * scale, h * scale
}

func (c *EbitenCanvas) drawTriangles(clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range c.vs {
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = float32(r) / 0xffff
		c.vs[i].ColorG = float32(g) / 0xffff
		c.vs[i].ColorB = float32(b) / 0xffff
		c.vs[i].ColorA = float32(a) / 0xffff
	}
	c.dst.DrawTriangles(c.vs, c.is, whiteSource(), &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

func polygonPath(pts []geom.Vec2) *vector.Path {
	path := &vector.Path{}
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	path.Close()
	return path
}

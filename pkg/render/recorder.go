// pkg/render/recorder.go
package render

import (
	"image/color"

	"iso-zombie/pkg/geom"
)

// Op identifies a recorded draw call.
type Op string

const (
	OpFill          Op = "fill"
	OpPolygon       Op = "polygon"
	OpStrokePolygon Op = "strokePolygon"
	OpEllipse       Op = "ellipse"
	OpCircle        Op = "circle"
	OpRect          Op = "rect"
	OpStrokeRect    Op = "strokeRect"
	OpLine          Op = "line"
	OpText          Op = "text"
)

// Call is one recorded draw call. Only the fields relevant to Op are set.
type Call struct {
	Op     Op
	Points []geom.Vec2
	X, Y   float64
	W, H   float64 // size for rects, radii for ellipses and circles
	Width  float64
	Text   string
	Scale  float64
	Color  color.Color
}

// Recorder is a headless Canvas that keeps every call in order.
type Recorder struct {
	W, H  int
	Calls []Call
}

var _ Canvas = (*Recorder)(nil)

func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Fill(clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFill, Color: clr})
}

func (r *Recorder) FillPolygon(pts []geom.Vec2, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpPolygon, Points: append([]geom.Vec2(nil), pts...), Color: clr})
}

func (r *Recorder) StrokePolygon(pts []geom.Vec2, width float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpStrokePolygon, Points: append([]geom.Vec2(nil), pts...), Width: width, Color: clr})
}

func (r *Recorder) FillEllipse(cx, cy, rx, ry float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpEllipse, X: cx, Y: cy, W: rx, H: ry, Color: clr})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpCircle, X: cx, Y: cy, W: radius, H: radius, Color: clr})
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpRect, X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Recorder) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpStrokeRect, X: x, Y: y, W: w, H: h, Width: width, Color: clr})
}

func (r *Recorder) Line(x0, y0, x1, y1, width float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpLine, Points: []geom.Vec2{{X: x0, Y: y0}, {X: x1, Y: y1}}, Width: width, Color: clr})
}

func (r *Recorder) Text(s string, x, y, scale float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpText, Text: s, X: x, Y: y, Scale: scale, Color: clr})
}

// MeasureText uses the fixed glyph cell of the HUD font.
func (r *Recorder) MeasureText(s string, scale float64) (float64, float64) {
	return float64(len(s)*GlyphWidth) * scale, GlyphHeight * scale
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Texts returns every drawn string in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

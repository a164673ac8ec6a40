// internal/ui/button.go
package ui

import (
	"image/color"

	"iso-zombie/internal/config"
	"iso-zombie/pkg/geom"
	"iso-zombie/pkg/render"
)

const ButtonTextScale = 2.0

// Button is a clickable labelled rectangle.
type Button struct {
	X, Y, W, H float64
	Text       string
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
}

// NewButton creates a button of size w x h centered on (cx, cy).
func NewButton(cx, cy, w, h float64, text string) *Button {
	return &Button{
		X:          cx - w/2,
		Y:          cy - h/2,
		W:          w,
		H:          h,
		Text:       text,
		TextColor:  config.ButtonTextColor,
		BgColor:    config.ButtonColor,
		HoverColor: render.DarkenColor(config.ButtonColor),
	}
}

func (b *Button) Contains(p geom.Vec2) bool {
	return p.X >= b.X && p.X < b.X+b.W && p.Y >= b.Y && p.Y < b.Y+b.H
}

// IsClicked reports a click edge that landed on the button.
func (b *Button) IsClicked(pointer geom.Vec2, clicked bool) bool {
	return clicked && b.Contains(pointer)
}

func (b *Button) Draw(c render.Canvas, pointer geom.Vec2) {
	bg := b.BgColor
	if b.Contains(pointer) {
		bg = b.HoverColor
	}
	c.FillRect(b.X, b.Y, b.W, b.H, bg)
	c.StrokeRect(b.X, b.Y, b.W, b.H, 2, config.HPBarBorder)
	render.TextCentered(c, b.Text, b.X+b.W/2, b.Y+b.H/2, ButtonTextScale, b.TextColor)
}

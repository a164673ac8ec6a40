// internal/ui/health_bar.go
package ui

import (
	"fmt"

	"iso-zombie/internal/config"
	"iso-zombie/pkg/render"
)

// HealthBar shows the player's HP as a filled bar with a numeric label
// underneath.
type HealthBar struct {
	X, Y, W, H float64
}

func NewHealthBar(x, y, w, h float64) *HealthBar {
	return &HealthBar{X: x, Y: y, W: w, H: h}
}

// FillWidth is the width of the filled part for hp out of maxHP.
func (b *HealthBar) FillWidth(hp, maxHP int) float64 {
	if maxHP <= 0 || hp <= 0 {
		return 0
	}
	return float64(int(b.W * float64(min(hp, maxHP)) / float64(maxHP)))
}

func (b *HealthBar) Draw(c render.Canvas, hp, maxHP int) {
	c.FillRect(b.X, b.Y, b.W, b.H, config.HPBarBackground)
	if w := b.FillWidth(hp, maxHP); w > 0 {
		c.FillRect(b.X, b.Y, w, b.H, config.HPBarFill)
	}
	c.StrokeRect(b.X, b.Y, b.W, b.H, 2, config.HPBarBorder)
	c.Text(fmt.Sprintf("HP: %d/%d", hp, maxHP), b.X, b.Y+b.H+4, HUDTextScale, config.TextColor)
}

// Height includes the label below the bar.
func (b *HealthBar) Height() float64 {
	return b.H + 4 + render.GlyphHeight*HUDTextScale
}

// internal/ui/hud.go
package ui

import (
	"fmt"
	"strings"

	"iso-zombie/internal/config"
	"iso-zombie/internal/defs"
	"iso-zombie/internal/entity"
	"iso-zombie/pkg/render"
)

const (
	HUDTextScale = 1.5
	hudMargin    = 20.0
)

// HUD is the in-round overlay: health, score, upgrades and the speed boost.
type HUD struct {
	health *HealthBar
}

func NewHUD() *HUD {
	return &HUD{health: NewHealthBar(hudMargin, hudMargin, 200, 18)}
}

func (h *HUD) Draw(c render.Canvas, w *entity.World) {
	h.health.Draw(c, w.Player.HP, w.Player.MaxHP)

	screenW, _ := c.Size()
	score := fmt.Sprintf("Score: %d", w.Score)
	sw, _ := c.MeasureText(score, HUDTextScale)
	c.Text(score, float64(screenW)-hudMargin-sw, hudMargin, HUDTextScale, config.TextColor)

	upgradesY := hudMargin + h.health.Height() + 8
	c.Text(UpgradeLine(w.Upgrades), 40, upgradesY, HUDTextScale, config.TextColor)

	if w.SpeedBoostTimer > 0 {
		y := upgradesY + render.GlyphHeight*HUDTextScale + 8
		c.Text(fmt.Sprintf("SPEED %.1fs", w.SpeedBoostTimer), 40, y, HUDTextScale, config.BoostColor)
		frac := w.SpeedBoostTimer / w.Rules.PowerUpSpeedDuration
		c.FillRect(40, y+render.GlyphHeight*HUDTextScale+4, 120*min(frac, 1), 4, config.BoostColor)
	}
}

// UpgradeLine renders the ledger as "Upgrades N | 1 HP:a 2 SPD:b ...".
func UpgradeLine(u entity.Upgrades) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Upgrades %d |", u.Points)
	for _, d := range defs.UpgradeDefs {
		fmt.Fprintf(&sb, " %s %s:%d", d.Key, d.Label, u.Level(d.Kind))
	}
	return sb.String()
}

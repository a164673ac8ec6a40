package ui

import (
	"strings"
	"testing"

	"iso-zombie/internal/config"
	"iso-zombie/internal/defs"
	"iso-zombie/internal/entity"
	"iso-zombie/pkg/geom"
	"iso-zombie/pkg/render"
)

func TestButtonContains(t *testing.T) {
	b := NewButton(100, 100, 220, 56, "Start")
	if !b.Contains(geom.V(100, 100)) || !b.Contains(geom.V(b.X, b.Y)) {
		t.Fatal("center and top-left corner are inside")
	}
	if b.Contains(geom.V(b.X+b.W, b.Y)) || b.Contains(geom.V(100, 200)) {
		t.Fatal("outside points reported inside")
	}
	if b.IsClicked(geom.V(100, 100), false) {
		t.Fatal("hover is not a click")
	}
}

func TestButtonHoverColor(t *testing.T) {
	b := NewButton(100, 100, 220, 56, "Quit")
	if b.HoverColor != render.DarkenColor(config.ButtonColor) {
		t.Fatalf("hover colour = %v, want the darkened button colour", b.HoverColor)
	}
	rec := render.NewRecorder(200, 200)
	b.Draw(rec, geom.V(100, 100))
	if rec.Calls[0].Color != b.HoverColor {
		t.Fatal("hovered button should use the hover colour")
	}
	rec.Reset()
	b.Draw(rec, geom.V(0, 0))
	if rec.Calls[0].Color != b.BgColor {
		t.Fatal("idle button should use the background colour")
	}
	if got := rec.Texts(); len(got) != 1 || got[0] != "Quit" {
		t.Fatalf("texts = %v", got)
	}
}

func TestHealthBarFill(t *testing.T) {
	b := NewHealthBar(0, 0, 200, 18)
	tests := []struct {
		hp, max int
		want    float64
	}{
		{100, 100, 200},
		{50, 100, 100},
		{0, 100, 0},
		{1, 3, 66},
		{150, 100, 200},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := b.FillWidth(tt.hp, tt.max); got != tt.want {
			t.Errorf("FillWidth(%d, %d) = %v, want %v", tt.hp, tt.max, got, tt.want)
		}
	}
}

func TestUpgradeLine(t *testing.T) {
	u := entity.NewUpgrades(10)
	u.Points = 2
	u.Levels[defs.UpgradeSpeed] = 3
	u.Levels[defs.UpgradeFire] = 1
	want := "Upgrades 2 | 1 HP:0 2 SPD:3 3 BUL:0 4 FIR:1"
	if got := UpgradeLine(u); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestHUDDraw(t *testing.T) {
	w := entity.NewWorld(config.DefaultRules(), 30, 30)
	w.Score = 7
	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	NewHUD().Draw(rec, w)

	texts := strings.Join(rec.Texts(), "\n")
	for _, s := range []string{"HP: 100/100", "Score: 7", "Upgrades 0 |"} {
		if !strings.Contains(texts, s) {
			t.Errorf("HUD is missing %q in %q", s, texts)
		}
	}
	if strings.Contains(texts, "SPEED") {
		t.Error("boost indicator shown without a boost")
	}

	w.SpeedBoostTimer = 2
	rec.Reset()
	NewHUD().Draw(rec, w)
	if !strings.Contains(strings.Join(rec.Texts(), "\n"), "SPEED 2.0s") {
		t.Error("boost indicator missing")
	}
}

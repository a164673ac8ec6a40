// internal/input/poll.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"iso-zombie/pkg/geom"
)

var actionKeys = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeyEnter, ActionStart},
	{ebiten.KeyNumpadEnter, ActionStart},
	{ebiten.KeySpace, ActionStart},
	{ebiten.KeyEscape, ActionQuit},
	{ebiten.KeyR, ActionRetry},
	{ebiten.KeyEnter, ActionMenu},
	{ebiten.KeyNumpadEnter, ActionMenu},
	{ebiten.KeyP, ActionPause},
	{ebiten.KeyEscape, ActionPause},
	{ebiten.Key1, ActionUpgradeHP},
	{ebiten.Key2, ActionUpgradeSpeed},
	{ebiten.Key3, ActionUpgradeBullet},
	{ebiten.Key4, ActionUpgradeFire},
}

// Poll samples ebiten's input state. A key may map to several actions;
// each state only looks at the ones it understands.
func Poll() Snapshot {
	x, y := ebiten.CursorPosition()
	s := Snapshot{
		Up:       ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:     ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:     ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Pointer:  geom.V(float64(x), float64(y)),
		FireHeld: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Clicked:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
	for _, k := range actionKeys {
		if inpututil.IsKeyJustPressed(k.key) && !s.Has(k.action) {
			s.Actions = append(s.Actions, k.action)
		}
	}
	return s
}

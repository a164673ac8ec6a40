// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"iso-zombie/internal/app"
	"iso-zombie/internal/audio"
	"iso-zombie/internal/config"
	"iso-zombie/internal/input"
	"iso-zombie/internal/state"
	"iso-zombie/internal/storage"
	"iso-zombie/internal/utils"
	"iso-zombie/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	session        *state.Session
	canvas         *render.EbitenCanvas
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	a.session.Update(deltaTime, input.Poll())
	if a.session.Quitting() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	if a.canvas == nil {
		a.canvas = render.NewEbitenCanvas(screen)
	} else {
		a.canvas.Reset(screen)
	}
	a.session.Draw(a.canvas)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.LoadSettings(".env")
	if err != nil {
		log.Printf("Settings: %v", err)
	}

	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	sounds := audio.NewSoundManager(config.SoundVolume)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Audio disabled: %v", err)
	}
	sounds.SetMuted(settings.Mute)

	game := app.NewGame(config.DefaultRules(), utils.NewPRNGService(settings.Seed), nil)
	session := state.NewSession(game, storage.NewFileStore(settings.HighScorePath), sounds)
	defer session.Close()
	if settings.StartInGame {
		session.StartRound()
	}

	a := &AppGame{
		session:        session,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetTPS(config.FPS)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(a); err != nil {
		session.Close()
		log.Fatal(err)
	}
}

// internal/app/game.go
package app

import (
	"iso-zombie/internal/config"
	"iso-zombie/internal/defs"
	"iso-zombie/internal/entity"
	"iso-zombie/internal/event"
	"iso-zombie/internal/input"
	"iso-zombie/internal/system"
	"iso-zombie/internal/ui"
	"iso-zombie/internal/utils"
	"iso-zombie/pkg/geom"
	"iso-zombie/pkg/isomap"
	"iso-zombie/pkg/render"
)

// Outcome reports what happened during one Update.
type Outcome struct {
	PlayerDied bool
	Result     event.RoundResult
}

// Game is the simulation of one round plus its rendering.
type Game struct {
	IsoMap *isomap.IsoMap
	World  *entity.World

	MovementSystem   *system.MovementSystem
	FireControl      *system.FireControl
	ZombieSpawner    *system.ZombieSpawner
	PowerUpSpawner   *system.PowerUpSpawner
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	PickupSystem     *system.PickupSystem
	Progression      *system.Progression
	RenderSystem     *system.RenderSystem

	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	mapRenderer *render.MapRenderer
	hud         *ui.HUD
}

// NewGame wires the systems around a fresh world. A nil rng uses a
// clock seed; a nil dispatcher gets a private one.
func NewGame(rules config.Rules, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *Game {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	if eventDispatcher == nil {
		eventDispatcher = event.NewDispatcher()
	}

	isoMap := isomap.New(
		config.MapWidth, config.MapHeight,
		config.TileWidth, config.TileHeight,
		geom.V(config.ScreenWidth/2, config.ScreenHeight/4),
		config.DecorationSeed,
	)
	world := entity.NewWorld(rules, config.MapWidth, config.MapHeight)
	screenCenter := geom.V(config.ScreenWidth/2, config.ScreenHeight/2)

	g := &Game{
		IsoMap:           isoMap,
		World:            world,
		MovementSystem:   system.NewMovementSystem(world, isoMap, screenCenter),
		FireControl:      system.NewFireControl(world, eventDispatcher),
		ZombieSpawner:    system.NewZombieSpawner(world, rng),
		PowerUpSpawner:   system.NewPowerUpSpawner(world, rng),
		CombatSystem:     system.NewCombatSystem(world, isoMap, eventDispatcher),
		ProjectileSystem: system.NewProjectileSystem(world),
		PickupSystem:     system.NewPickupSystem(world, isoMap, eventDispatcher),
		Progression:      system.NewProgression(world, eventDispatcher),
		RenderSystem:     system.NewRenderSystem(world, isoMap),
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
		mapRenderer:      render.NewMapRenderer(MapPalette(), config.GrassDetailEveryNth),
		hud:              ui.NewHUD(),
	}
	g.MovementSystem.FollowPlayer()
	return g
}

// MapPalette collects the map colours from config.
func MapPalette() render.MapPalette {
	return render.MapPalette{
		Background:  config.BackgroundColor,
		Tile1:       config.TileColor1,
		Tile2:       config.TileColor2,
		Grid:        config.GridColor,
		GrassDetail: config.GrassDetailColor,
		Tree:        config.TreeColor,
		TreeTrunk:   config.TreeTrunkColor,
		Rock:        config.RockColor,
		Flower:      config.FlowerColor,
		GridWidth:   1,
	}
}

// Reset starts a new round. The in-memory high score is kept.
func (g *Game) Reset() {
	g.World.Reset()
	g.MovementSystem.FollowPlayer()
	g.EventDispatcher.Dispatch(event.Event{Type: event.RoundStarted})
}

// Update advances the round by deltaTime seconds. When a zombie kills the
// player the round ends immediately: every entity is cleared, a fresh
// player is placed at the center and the rest of the frame is skipped.
func (g *Game) Update(deltaTime float64, in input.Snapshot) Outcome {
	g.MovementSystem.Update(deltaTime, in.MoveVector(), in.Pointer)
	g.FireControl.Update(deltaTime, in.FireHeld)
	g.ZombieSpawner.Update(deltaTime)
	g.PowerUpSpawner.Update(deltaTime)

	if g.CombatSystem.UpdateZombies(deltaTime) {
		return g.endRound()
	}

	g.ProjectileSystem.Update(deltaTime)
	g.PickupSystem.DecayBoost(deltaTime)
	g.CombatSystem.ResolveHits()
	g.PickupSystem.Update()
	return Outcome{}
}

func (g *Game) endRound() Outcome {
	w := g.World
	result := event.RoundResult{Score: w.Score, HighScore: w.HighScore}
	w.ClearEntities()
	w.Player = entity.NewPlayer(w.Center(), w.Rules)
	g.MovementSystem.FollowPlayer()
	g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerDied, Data: result})
	return Outcome{PlayerDied: true, Result: result}
}

// BuyUpgrade spends an upgrade point on kind. It returns false, changing
// nothing, when no point is available or kind is at its cap.
func (g *Game) BuyUpgrade(kind defs.UpgradeKind) bool {
	return g.Progression.Buy(kind)
}

// HandleActions applies the upgrade key presses in in.
func (g *Game) HandleActions(in input.Snapshot) {
	for _, a := range in.Actions {
		switch a {
		case input.ActionUpgradeHP:
			g.BuyUpgrade(defs.UpgradeHP)
		case input.ActionUpgradeSpeed:
			g.BuyUpgrade(defs.UpgradeSpeed)
		case input.ActionUpgradeBullet:
			g.BuyUpgrade(defs.UpgradeBullet)
		case input.ActionUpgradeFire:
			g.BuyUpgrade(defs.UpgradeFire)
		}
	}
}

// Draw renders background, map, depth-sorted entities and the HUD.
func (g *Game) Draw(c render.Canvas) {
	c.Fill(config.BackgroundColor)
	g.mapRenderer.Draw(c, g.IsoMap)
	g.RenderSystem.Draw(c)
	g.hud.Draw(c, g.World)
}

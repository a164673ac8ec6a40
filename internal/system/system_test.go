package system

import (
	"math"
	"testing"

	"iso-zombie/internal/config"
	"iso-zombie/internal/defs"
	"iso-zombie/internal/entity"
	"iso-zombie/internal/event"
	"iso-zombie/internal/utils"
	"iso-zombie/pkg/geom"
	"iso-zombie/pkg/isomap"
)

type fixture struct {
	world      *entity.World
	isoMap     *isomap.IsoMap
	dispatcher *event.Dispatcher
	events     []event.EventType
}

func newFixture(t *testing.T, tweak func(*config.Rules)) *fixture {
	t.Helper()
	rules := config.DefaultRules()
	if tweak != nil {
		tweak(&rules)
	}
	f := &fixture{
		world:      entity.NewWorld(rules, 30, 30),
		isoMap:     isomap.New(30, 30, 64, 32, geom.V(512, 100), 1),
		dispatcher: event.NewDispatcher(),
	}
	record := event.ListenerFunc(func(e event.Event) { f.events = append(f.events, e.Type) })
	f.dispatcher.SubscribeAll(record,
		event.ZombieKilled, event.PlayerHit, event.PowerUpCollected, event.BulletFired, event.UpgradePurchased)
	return f
}

func (f *fixture) count(t event.EventType) int {
	n := 0
	for _, e := range f.events {
		if e == t {
			n++
		}
	}
	return n
}

func TestFireControlWindupThenRate(t *testing.T) {
	f := newFixture(t, func(r *config.Rules) {
		r.FireHoldDelay = 0.25
		r.FireRate = 4
	})
	fc := NewFireControl(f.world, f.dispatcher)

	var shots []int
	for frame := 1; frame <= 5; frame++ {
		if fc.Update(0.125, true) != nil {
			shots = append(shots, frame)
		}
	}
	if len(shots) != 2 || shots[0] != 3 || shots[1] != 5 {
		t.Fatalf("shots on frames %v, want [3 5]", shots)
	}
	if f.world.FireHoldTimer != 0.625 {
		t.Fatalf("hold timer = %v, must keep accumulating across shots", f.world.FireHoldTimer)
	}

	fc.Update(0.125, false)
	if f.world.FireHoldTimer != 0 || f.world.FireTimer != 0 {
		t.Fatal("release must reset both timers")
	}
	if len(f.world.Bullets) != 2 || f.count(event.BulletFired) != 2 {
		t.Fatalf("bullets = %d", len(f.world.Bullets))
	}
}

func TestFireControlUsesUpgrades(t *testing.T) {
	f := newFixture(t, nil)
	f.world.Upgrades.FireRateBonus = 4
	f.world.Upgrades.BulletSpeedBonus = 2
	fc := NewFireControl(f.world, f.dispatcher)
	if got, want := fc.Cooldown(), 1.0/(f.world.Rules.FireRate+4); got != want {
		t.Fatalf("cooldown = %v, want %v", got, want)
	}
	f.world.FireHoldTimer = f.world.Rules.FireHoldDelay
	f.world.FireTimer = fc.Cooldown()
	b := fc.Update(0, true)
	if b == nil {
		t.Fatal("expected a shot")
	}
	if got, want := b.Velocity.Len(), f.world.Rules.BulletSpeed+2; got != want {
		t.Fatalf("bullet speed = %v, want %v", got, want)
	}
	if b.Pos != f.world.Player.Pos {
		t.Fatal("bullet must leave from the player center")
	}
}

func TestZombieSpeedFollowsSpawnCount(t *testing.T) {
	f := newFixture(t, nil)
	s := NewZombieSpawner(f.world, utils.NewPRNGService(42))
	r := f.world.Rules

	first := s.SpawnAt(geom.V(0, 0))
	if first.Speed != r.ZombieSpeed {
		t.Fatalf("first speed = %v", first.Speed)
	}
	s.SpawnAt(geom.V(0, 1))
	s.SpawnAt(geom.V(0, 2))
	f.world.Zombies = nil

	fourth := s.SpawnAt(geom.V(0, 3))
	want := r.ZombieSpeed * (1 + 3*r.ZombieSpeedGrowth)
	if fourth.Speed != want {
		t.Fatalf("speed after clearing the population = %v, want %v", fourth.Speed, want)
	}
}

func TestZombieSpawnerEdgesAndCap(t *testing.T) {
	f := newFixture(t, func(r *config.Rules) {
		r.MaxZombies = 50
		r.ZombieSpawnInterval = 1
	})
	s := NewZombieSpawner(f.world, utils.NewPRNGService(7))
	for i := 0; i < 80; i++ {
		s.Update(1)
	}
	if len(f.world.Zombies) != 50 {
		t.Fatalf("population = %d, want capped at 50", len(f.world.Zombies))
	}
	if f.world.ZombiesSpawned != 50 {
		t.Fatalf("spawned = %d", f.world.ZombiesSpawned)
	}
	for _, z := range f.world.Zombies {
		p := z.Pos
		onEdge := p.X == 0 || p.Y == 0 || p.X == 29 || p.Y == 29
		if !onEdge || p.X < 0 || p.X > 29 || p.Y < 0 || p.Y > 29 {
			t.Fatalf("zombie spawned off the edge at %v", p)
		}
	}
}

func TestZombieSpawnerWaitsForInterval(t *testing.T) {
	f := newFixture(t, func(r *config.Rules) { r.ZombieSpawnInterval = 1 })
	s := NewZombieSpawner(f.world, utils.NewPRNGService(7))
	s.Update(0.5)
	if len(f.world.Zombies) != 0 {
		t.Fatal("spawned before the interval")
	}
	s.Update(0.5)
	if len(f.world.Zombies) != 1 || f.world.SpawnTimer != 0 {
		t.Fatalf("zombies = %d, timer = %v", len(f.world.Zombies), f.world.SpawnTimer)
	}
}

func TestPowerUpSpawnerInteriorAndCap(t *testing.T) {
	f := newFixture(t, func(r *config.Rules) { r.PowerUpSpawnInterval = 1 })
	s := NewPowerUpSpawner(f.world, utils.NewPRNGService(3))
	for i := 0; i < 10; i++ {
		s.Update(1)
	}
	if len(f.world.PowerUps) != f.world.Rules.MaxPowerUps {
		t.Fatalf("power-ups = %d", len(f.world.PowerUps))
	}
	for _, p := range f.world.PowerUps {
		if p.Pos.X < 1 || p.Pos.X > 28 || p.Pos.Y < 1 || p.Pos.Y > 28 {
			t.Fatalf("power-up outside the interior at %v", p.Pos)
		}
	}
}

func TestResolveHitsFirstMatchInOrder(t *testing.T) {
	f := newFixture(t, nil)
	NewProgression(f.world, f.dispatcher)
	cs := NewCombatSystem(f.world, f.isoMap, f.dispatcher)

	z1 := entity.NewZombie(geom.V(5, 5), 1, 0.4)
	z2 := entity.NewZombie(geom.V(5, 5.1), 1, 0.4)
	far := entity.NewZombie(geom.V(20, 20), 1, 0.4)
	f.world.Zombies = []*entity.Zombie{z1, z2, far}

	b1 := entity.NewBullet(geom.V(5, 5.05), geom.V(1, 0), 1, 1)
	b2 := entity.NewBullet(geom.V(5, 5.05), geom.V(1, 0), 1, 1)
	b3 := entity.NewBullet(geom.V(5, 5.05), geom.V(1, 0), 1, 1)
	f.world.Bullets = []*entity.Bullet{b1, b2, b3}

	if kills := cs.ResolveHits(); kills != 2 {
		t.Fatalf("kills = %d, want 2", kills)
	}
	if len(f.world.Zombies) != 1 || f.world.Zombies[0] != far {
		t.Fatal("only the far zombie should survive")
	}
	if len(f.world.Bullets) != 1 || f.world.Bullets[0] != b3 {
		t.Fatal("the third bullet had nothing left to hit and should survive")
	}
	if f.world.Score != 2 || f.world.HighScore != 2 {
		t.Fatalf("score = %d, high = %d", f.world.Score, f.world.HighScore)
	}
}

func TestUpdateZombiesBitesOncePerCooldown(t *testing.T) {
	f := newFixture(t, nil)
	cs := NewCombatSystem(f.world, f.isoMap, f.dispatcher)
	p := f.world.Player
	// Directly below the player in world +y the stop distance is inside the
	// combined radii on screen.
	f.world.Zombies = []*entity.Zombie{entity.NewZombie(p.Pos.Add(geom.V(0, 0.4)), 1, 0.4)}

	cs.UpdateZombies(0.1)
	cs.UpdateZombies(0.1)
	if f.count(event.PlayerHit) != 1 {
		t.Fatalf("hits = %d, want 1 within the cooldown", f.count(event.PlayerHit))
	}
	if p.HP != p.MaxHP-f.world.Rules.ZombieDamage {
		t.Fatalf("HP = %d", p.HP)
	}
}

func TestUpdateZombiesReportsDeath(t *testing.T) {
	f := newFixture(t, nil)
	cs := NewCombatSystem(f.world, f.isoMap, f.dispatcher)
	p := f.world.Player
	p.HP = 1
	biter := entity.NewZombie(p.Pos.Add(geom.V(0, 0.4)), 1, 0.4)
	later := entity.NewZombie(geom.V(0, 0), 1, 0.4)
	f.world.Zombies = []*entity.Zombie{biter, later}

	if !cs.UpdateZombies(0.5) {
		t.Fatal("expected the player to die")
	}
	if later.Pos != geom.V(0, 0) {
		t.Fatal("zombies after the fatal bite must not move this frame")
	}
}

func TestProgressionThreshold(t *testing.T) {
	f := newFixture(t, nil)
	NewProgression(f.world, f.dispatcher)
	step := f.world.Rules.UpgradeScoreStep

	for i := 0; i < step-1; i++ {
		f.dispatcher.Dispatch(event.Event{Type: event.ZombieKilled})
	}
	if f.world.Upgrades.Points != 0 {
		t.Fatal("point granted before the threshold")
	}
	f.dispatcher.Dispatch(event.Event{Type: event.ZombieKilled})
	if f.world.Upgrades.Points != 1 || f.world.Upgrades.NextThreshold != 2*step {
		t.Fatalf("ledger = %+v", f.world.Upgrades)
	}
}

func TestBuyUpgradeEffectsAndCap(t *testing.T) {
	f := newFixture(t, nil)
	prog := NewProgression(f.world, f.dispatcher)
	w := f.world
	r := w.Rules

	if prog.Buy(defs.UpgradeHP) {
		t.Fatal("bought without points")
	}

	w.Upgrades.Points = 4
	prog.Buy(defs.UpgradeHP)
	prog.Buy(defs.UpgradeSpeed)
	prog.Buy(defs.UpgradeBullet)
	prog.Buy(defs.UpgradeFire)
	if w.Player.MaxHP != r.PlayerMaxHP+r.UpgradeHPBonus || w.Player.HP != r.PlayerMaxHP+r.UpgradeHPBonus {
		t.Fatalf("hp upgrade: %d/%d", w.Player.HP, w.Player.MaxHP)
	}
	if w.Player.Speed != r.PlayerSpeed+r.UpgradeSpeedBonus {
		t.Fatalf("speed = %v", w.Player.Speed)
	}
	if w.Upgrades.BulletSpeedBonus != r.UpgradeBulletSpeedBonus || w.Upgrades.FireRateBonus != r.UpgradeFireRateBonus {
		t.Fatalf("bonuses = %+v", w.Upgrades)
	}

	w.Upgrades.Points = 1
	w.Upgrades.Levels[defs.UpgradeSpeed] = r.MaxUpgradeLevel
	ledger := w.Upgrades
	player := *w.Player
	if prog.Buy(defs.UpgradeSpeed) {
		t.Fatal("bought past the cap")
	}
	if w.Upgrades != ledger || *w.Player != player {
		t.Fatal("rejected purchase changed state")
	}
	if f.count(event.UpgradePurchased) != 4 {
		t.Fatalf("purchases = %d", f.count(event.UpgradePurchased))
	}
}

func TestPickups(t *testing.T) {
	f := newFixture(t, nil)
	ps := NewPickupSystem(f.world, f.isoMap, f.dispatcher)
	w := f.world
	w.Player.HP = w.Player.MaxHP - 10
	w.PowerUps = []*entity.PowerUp{
		entity.NewPowerUp(w.Player.Pos, defs.PowerUpHeal),
		entity.NewPowerUp(w.Player.Pos, defs.PowerUpSpeed),
		entity.NewPowerUp(geom.V(1, 1), defs.PowerUpHeal),
	}
	ps.Update()
	if w.Player.HP != w.Player.MaxHP {
		t.Fatalf("heal not capped: %d", w.Player.HP)
	}
	if w.SpeedBoostTimer != w.Rules.PowerUpSpeedDuration || w.SpeedMultiplier() != w.Rules.PowerUpSpeedBoost {
		t.Fatal("speed boost not applied")
	}
	if len(w.PowerUps) != 1 || f.count(event.PowerUpCollected) != 2 {
		t.Fatalf("power-ups left = %d", len(w.PowerUps))
	}

	ps.DecayBoost(100)
	if w.SpeedBoostTimer != 0 || w.SpeedMultiplier() != 1 {
		t.Fatal("boost should run out and stop at zero")
	}
}

func TestProjectileCull(t *testing.T) {
	f := newFixture(t, nil)
	f.world.Bullets = []*entity.Bullet{
		entity.NewBullet(geom.Vec2{}, geom.V(1, 0), 1, 0.5),
		entity.NewBullet(geom.Vec2{}, geom.V(0, 1), 1, 2),
	}
	NewProjectileSystem(f.world).Update(1)
	if len(f.world.Bullets) != 1 || f.world.Bullets[0].Pos != geom.V(0, 1) {
		t.Fatalf("bullets = %+v", f.world.Bullets)
	}
}

func TestMovementFollowsAndAims(t *testing.T) {
	f := newFixture(t, nil)
	center := geom.V(512, 384)
	ms := NewMovementSystem(f.world, f.isoMap, center)
	ms.Update(0.1, geom.V(1, 1), center.Add(geom.V(0, 100)))

	got := f.isoMap.WorldToScreen(f.world.Player.Pos)
	if got.DistanceTo(center) > 1e-9 {
		t.Fatalf("player drawn at %v, want screen center", got)
	}
	// Straight down on screen is world (+1, +1).
	if f.world.Player.Aim.X <= 0 || f.world.Player.Aim.Y <= 0 {
		t.Fatalf("aim = %v", f.world.Player.Aim)
	}
}

func TestRenderSortIsStable(t *testing.T) {
	f := newFixture(t, nil)
	w := f.world
	w.Player.Pos = geom.V(2, 2)
	w.PowerUps = []*entity.PowerUp{entity.NewPowerUp(geom.V(2, 2), defs.PowerUpHeal)}
	w.Zombies = []*entity.Zombie{
		entity.NewZombie(geom.V(9, 9), 1, 0.4),
		entity.NewZombie(geom.V(1, 3), 1, 0.4),
	}
	w.Bullets = []*entity.Bullet{entity.NewBullet(geom.V(0, 0), geom.V(1, 0), 1, 1)}

	got := NewRenderSystem(w, f.isoMap).Sorted()
	if got[0] != entity.Drawable(w.Bullets[0]) {
		t.Fatal("bullet at x+y=0 draws first")
	}
	// x+y == 4 ties: power-up, then zombie, then player.
	if got[1] != entity.Drawable(w.PowerUps[0]) || got[2] != entity.Drawable(w.Zombies[1]) || got[3] != entity.Drawable(w.Player) {
		t.Fatal("ties must keep insertion order")
	}
	if got[4] != entity.Drawable(w.Zombies[0]) {
		t.Fatal("farthest zombie draws last")
	}
}

func TestSpeedBoostScalesMovement(t *testing.T) {
	f := newFixture(t, nil)
	w := f.world
	ms := NewMovementSystem(w, f.isoMap, geom.V(512, 384))
	ps := NewPickupSystem(w, f.isoMap, f.dispatcher)
	const dt = 0.05
	step := func() float64 {
		start := w.Player.Pos
		ms.Update(dt, geom.V(1, 0), geom.Vec2{})
		return w.Player.Pos.DistanceTo(start)
	}

	w.SpeedBoostTimer = w.Rules.PowerUpSpeedDuration
	want := w.Rules.PlayerSpeed * w.Rules.PowerUpSpeedBoost * dt
	if got := step(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("boosted step = %v, want %v", got, want)
	}

	ps.DecayBoost(w.Rules.PowerUpSpeedDuration)
	want = w.Rules.PlayerSpeed * dt
	if got := step(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("step after the boost ran out = %v, want %v", got, want)
	}
}

func TestOverlapOnScreenIsStrict(t *testing.T) {
	m := isomap.New(30, 30, 64, 32, geom.V(0, 0), 1)
	// World (1, 1) apart is straight down on screen by one tile height.
	a, b := geom.V(3, 3), geom.V(4, 4)
	if overlapOnScreen(m, a, b, 16, 16) {
		t.Fatal("circles that only touch must not overlap")
	}
	if !overlapOnScreen(m, a, b, 16, 16.5) {
		t.Fatal("circles 0.5 px into each other must overlap")
	}
}

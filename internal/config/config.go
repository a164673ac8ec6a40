// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	FPS          = 60
	MaxDeltaTime = 0.06
	WindowTitle  = "Isometric Zombie Shooter"

	TileWidth  = 64
	TileHeight = 32
	MapWidth   = 30
	MapHeight  = 30

	DecorationSeed       = 1337
	DecorationClearance  = 2.0 // half-size of the empty box around map center
	TreeChance           = 0.06
	RockChance           = 0.04
	FlowerChance         = 0.08
	GrassDetailEveryNth  = 3
	HighScoreDefaultPath = "highscore.txt"
	SoundVolume          = 0.5

	// Pixel sizes used by collision (screen space) and drawing.
	PlayerRadius  = 10.0
	ZombieRadius  = 10.0
	BulletRadius  = 4.0
	PowerUpRadius = 8.0

	// Vertical lift of each entity body above its ground shadow, in pixels.
	PlayerHeight = 16.0
	ZombieHeight = 14.0
	BulletHeight = 10.0
)

// Rules holds the gameplay tuning. Distances are in tiles, times in seconds.
type Rules struct {
	PlayerSpeed       float64
	PlayerMaxHP       int
	PlayerHitCooldown float64

	ZombieSpeed         float64
	ZombieSpeedGrowth   float64
	ZombieStopDistance  float64
	ZombieDamage        int
	MaxZombies          int
	ZombieSpawnInterval float64

	BulletSpeed    float64
	BulletLifetime float64
	FireRate       float64 // shots per second before upgrades
	FireHoldDelay  float64

	PowerUpSpawnInterval float64
	MaxPowerUps          int
	PowerUpHealAmount    int
	PowerUpSpeedBoost    float64
	PowerUpSpeedDuration float64

	UpgradeScoreStep        int
	MaxUpgradeLevel         int
	UpgradeHPBonus          int
	UpgradeSpeedBonus       float64
	UpgradeBulletSpeedBonus float64
	UpgradeFireRateBonus    float64
}

// DefaultRules returns the tuning the game ships with.
func DefaultRules() Rules {
	return Rules{
		PlayerSpeed:       4.0,
		PlayerMaxHP:       100,
		PlayerHitCooldown: 0.8,

		ZombieSpeed:         1.5,
		ZombieSpeedGrowth:   0.05,
		ZombieStopDistance:  0.4,
		ZombieDamage:        10,
		MaxZombies:          20,
		ZombieSpawnInterval: 1.5,

		BulletSpeed:    10.0,
		BulletLifetime: 1.2,
		FireRate:       4.0,
		FireHoldDelay:  0.15,

		PowerUpSpawnInterval: 8.0,
		MaxPowerUps:          3,
		PowerUpHealAmount:    25,
		PowerUpSpeedBoost:    1.5,
		PowerUpSpeedDuration: 5.0,

		UpgradeScoreStep:        10,
		MaxUpgradeLevel:         5,
		UpgradeHPBonus:          20,
		UpgradeSpeedBonus:       0.5,
		UpgradeBulletSpeedBonus: 2.0,
		UpgradeFireRateBonus:    1.0,
	}
}

var (
	BackgroundColor  = color.RGBA{18, 22, 28, 255}
	GridColor        = color.RGBA{40, 70, 45, 255}
	TileColor1       = color.RGBA{74, 122, 72, 255}
	TileColor2       = color.RGBA{66, 112, 64, 255}
	GrassDetailColor = color.RGBA{98, 150, 88, 255}

	TreeColor      = color.RGBA{34, 92, 48, 255}
	TreeTrunkColor = color.RGBA{96, 64, 38, 255}
	RockColor      = color.RGBA{128, 128, 120, 255}
	FlowerColor    = color.RGBA{230, 120, 170, 255}

	ShadowColor       = color.RGBA{0, 0, 0, 80}
	PlayerColor       = color.RGBA{60, 120, 220, 255}
	PlayerHeadColor   = color.RGBA{232, 190, 172, 255}
	GunColor          = color.RGBA{40, 40, 44, 255}
	ZombieColor       = color.RGBA{96, 150, 96, 255}
	ZombieHeadColor   = color.RGBA{78, 110, 86, 255}
	BulletColor       = color.RGBA{250, 220, 90, 255}
	PowerUpHealColor  = color.RGBA{220, 60, 70, 255}
	PowerUpSpeedColor = color.RGBA{80, 200, 240, 255}

	HPBarBackground = color.RGBA{60, 20, 20, 255}
	HPBarFill       = color.RGBA{200, 50, 50, 255}
	HPBarBorder     = color.RGBA{240, 240, 240, 255}
	BoostColor      = color.RGBA{80, 200, 240, 255}

	TextColor       = color.RGBA{240, 240, 240, 255}
	MenuBackground  = color.RGBA{20, 20, 30, 255}
	ButtonColor     = color.RGBA{70, 130, 180, 255}
	ButtonTextColor = color.RGBA{250, 250, 250, 255}
	PauseDimColor   = color.RGBA{0, 0, 0, 128}
)

// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	TileSize     = 56.0
	MaxDeltaTime = 0.06

	// Симуляция идёт фиксированными шагами по 50 мс игрового времени.
	// Ускорение — это количество тиков на кадр, а не изменение шага.
	FixedDT        = 0.05
	TicksPerSecond = 20

	DefaultGridSize = 12
	StartingMoney   = 200
	StartingLives   = 20

	HitRadius              = 0.16  // tile units
	InstantProjectileSpeed = 900.0 // tiles/sec; anything faster is hit-scan

	MaxTowerLevel   = 3
	SellRefundRatio = 0.7

	// Для волн после авторских: множитель счётчиков плюс плоская добавка
	// за каждую ступень масштаба.
	WaveFallbackCountBonus = 2

	DefaultSpeed = 1
	MaxSpeed     = 3

	ClickCooldown      = 300
	IndicatorOffsetX   = 30
	IndicatorRadius    = 10.0
	SpeedButtonOffsetX = 80
	SpeedButtonY       = 30
	SpeedButtonSize    = 18.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	EmptyTileColor  = color.RGBA{70, 100, 120, 220}
	PathTileColor   = color.RGBA{150, 130, 90, 220}
	SpawnTileColor  = color.RGBA{0, 255, 0, 255}
	BaseTileColor   = color.RGBA{255, 0, 0, 255}
	GridLineColor   = color.RGBA{40, 50, 60, 255}

	EnemyStrokeColor = color.RGBA{0, 0, 0, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	RangeRingColor   = color.RGBA{255, 255, 255, 60}

	TextLightColor = color.RGBA{240, 240, 240, 255}
	TextDarkColor  = color.RGBA{20, 20, 30, 255}

	IdleStateColor     = color.RGBA{70, 130, 180, 220}
	SpawningStateColor = color.RGBA{220, 60, 60, 220}
	ProgressStateColor = color.RGBA{220, 140, 60, 220}
	CompleteStateColor = color.RGBA{50, 205, 50, 220}
	VictoryStateColor  = color.RGBA{255, 215, 0, 255}
	GameOverStateColor = color.RGBA{90, 90, 90, 255}

	SpeedButtonColors = []color.Color{
		color.RGBA{120, 120, 130, 220}, // пауза
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x3, песочно-жёлтый
	}
)

// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 480
	ScreenHeight = 800

	MaxDeltaTime = 0.033 // секунды; шаг симуляции после подвисания не больше этого

	PlayerHitRadius   = 18.0
	PlayerStartX      = ScreenWidth / 2
	PlayerStartY      = ScreenHeight - 120
	PlayerMoveSpeed   = 260.0 // только для хостов
	PlayerDefaultHP   = 100
	DefaultStageLevel = 1

	PlayerShotBase   = 0.20
	PlayerShotJitter = 0.05
	BulletSpeed      = 520.0
	BulletRadius     = 4.0
	BulletSize       = 8.0
	BulletCullMargin = 30.0
	BulletDamageBoss = 6

	EnemyRadius      = 11.0
	EnemySize        = 22.0
	EnemyDamage      = 10
	EnemySpawnOffset = 20.0
	EnemyCullMargin  = 60.0
	EnemyKillExp     = 5

	BossY          = 60.0
	BossRadius     = 36.0
	BossWidth      = 90.0
	BossHeight     = 46.0
	BossEdgeMargin = 50.0

	BossBulletRadius     = 5.0
	BossBulletSize       = 10.0
	BossBulletOffsetY    = 10.0
	BossBulletCullMargin = 30.0

	ObstacleRadius     = 23.0
	ObstacleSize       = 46.0
	ObstacleHalfExtent = 23.0
	ObstacleMarginX    = 40.0
	ObstacleMinYFrac   = 0.45
	ObstacleSpanYFrac  = 0.45

	BubbleRadius  = 70.0 // подсказка появляется ближе этого
	TapRadius     = 80.0 // тап засчитывается ближе этого
	BubbleWidth   = 80.0
	BubbleHeight  = 24.0
	BubbleOffsetY = 32.0

	RewardEnergyBase   = 5
	RewardEnergySpread = 6
)

// RewardCategories are the card categories an obstacle can drop.
var RewardCategories = []string{"1", "2", "3", "4", "8"}

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	PlayerColor     = color.RGBA{120, 200, 255, 255}
	BulletColor     = color.RGBA{255, 255, 255, 220}
	EnemyColor      = color.RGBA{255, 255, 255, 215}
	BossColor       = color.RGBA{255, 255, 255, 64}
	BossStrokeColor = color.RGBA{255, 255, 255, 90}
	BossBulletColor = color.RGBA{255, 255, 255, 165}
	BubbleColor     = color.RGBA{0, 0, 0, 140}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HPColor         = color.RGBA{220, 60, 60, 220}
	BossHPColor     = color.RGBA{194, 178, 128, 255}
	PauseOverlay    = color.RGBA{0, 0, 0, 128}
	ObstacleColors  = map[string]color.RGBA{
		"red":   {255, 80, 80, 110},
		"blue":  {80, 160, 255, 110},
		"green": {100, 255, 140, 110},
	}
)

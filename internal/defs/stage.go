package defs

import "math"

// StageDefinition описывает параметры стадии для заданного уровня.
// Все значения выводятся из уровня линейно; времена в секундах.
type StageDefinition struct {
	Level int

	EnemyInterval float64 // период появления врагов
	EnemyCap      int     // максимум врагов одновременно
	EnemySpeed    float64

	BossHP    int
	BossSpeed float64

	PackSize     int     // препятствий в одной пачке
	ObstacleLife float64 // время жизни препятствий от босса

	RadialInterval float64
	RadialCount    int
	RadialSpeed    float64
	RadialDamage   int

	SummonInterval float64
}

// ForLevel builds the definition for a stage level. Levels below 1 are treated as 1.
func ForLevel(level int) StageDefinition {
	if level < 1 {
		level = 1
	}
	lv := float64(level)

	return StageDefinition{
		Level: level,

		EnemyInterval: math.Max(0.25, 1.0-lv*0.05),
		EnemyCap:      3 + int(math.Floor((lv-1)*0.8)),
		EnemySpeed:    90 + lv*10,

		BossHP:    250 + level*120,
		BossSpeed: 140 + lv*6,

		PackSize:     1 + level/3,
		ObstacleLife: 4.0 + lv*0.3,

		RadialInterval: math.Max(0.35, 1.2-lv*0.05),
		RadialCount:    10 + int(math.Floor(lv*0.8)),
		RadialSpeed:    120 + lv*8,
		RadialDamage:   8 + level,

		SummonInterval: math.Max(1.2, 3.5-lv*0.1),
	}
}

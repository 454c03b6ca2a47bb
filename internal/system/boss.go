package system

import (
	"go-stage-shooter/internal/config"
	"go-stage-shooter/internal/defs"
	"go-stage-shooter/internal/entity"
	"go-stage-shooter/internal/interfaces"
)

// BossSystem управляет боссом: патруль по горизонтали с отскоком от краёв,
// таймер радиальной атаки и таймер призыва препятствий.
type BossSystem struct {
	store *entity.Store
	field interfaces.Field
	spawn *SpawnSystem
}

func NewBossSystem(store *entity.Store, field interfaces.Field, spawn *SpawnSystem) *BossSystem {
	return &BossSystem{store: store, field: field, spawn: spawn}
}

func (s *BossSystem) Update(deltaTime float64, def defs.StageDefinition) {
	b := s.store.Boss
	if b == nil {
		return
	}
	w, _ := s.field.Bounds()

	b.X += b.VX * deltaTime
	if b.X < config.BossEdgeMargin {
		b.X = config.BossEdgeMargin
		b.VX = -b.VX
	}
	if b.X > w-config.BossEdgeMargin {
		b.X = w - config.BossEdgeMargin
		b.VX = -b.VX
	}

	t := &s.store.Timers
	t.BossShot -= deltaTime
	if t.BossShot <= 0 {
		t.BossShot = def.RadialInterval
		s.spawn.FireBossRadial(def)
	}

	t.BossSummon -= deltaTime
	if t.BossSummon <= 0 {
		t.BossSummon = def.SummonInterval
		s.spawn.SpawnObstaclePack(def, true)
	}
}

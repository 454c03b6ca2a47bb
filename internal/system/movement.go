package system

import (
	"go-stage-shooter/internal/config"
	"go-stage-shooter/internal/entity"
	"go-stage-shooter/internal/interfaces"
	"go-stage-shooter/internal/utils"
)

// MovementSystem двигает сущности, удаляет вылетевшие за поле и отсчитывает
// время жизни препятствий.
type MovementSystem struct {
	store *entity.Store
	field interfaces.Field
}

func NewMovementSystem(store *entity.Store, field interfaces.Field) *MovementSystem {
	return &MovementSystem{store: store, field: field}
}

func (s *MovementSystem) Update(deltaTime float64) {
	w, h := s.field.Bounds()

	for i := len(s.store.Bullets) - 1; i >= 0; i-- {
		b := s.store.Bullets[i]
		b.Step(b.Velocity, deltaTime)
		if utils.OutOfBounds(b.X, b.Y, w, h, config.BulletCullMargin) {
			s.store.RemoveBullet(i)
		}
	}

	for i := len(s.store.Enemies) - 1; i >= 0; i-- {
		e := s.store.Enemies[i]
		e.Step(e.Velocity, deltaTime)
		if utils.OutOfBounds(e.X, e.Y, w, h, config.EnemyCullMargin) {
			s.store.RemoveEnemy(i)
		}
	}

	for i := len(s.store.BossBullets) - 1; i >= 0; i-- {
		bb := s.store.BossBullets[i]
		bb.Step(bb.Velocity, deltaTime)
		if utils.OutOfBounds(bb.X, bb.Y, w, h, config.BossBulletCullMargin) {
			s.store.RemoveBossBullet(i)
		}
	}

	for i := len(s.store.Obstacles) - 1; i >= 0; i-- {
		o := s.store.Obstacles[i]
		if o.Unlimited {
			continue
		}
		o.Life -= deltaTime
		if o.Expired() {
			s.store.RemoveObstacle(i)
		}
	}
}

package system

import (
	"go-stage-shooter/internal/config"
	"go-stage-shooter/internal/entity"
	"go-stage-shooter/internal/interfaces"
)

// RenderSystem reports every live entity's placement to the host once per tick.
// It owns no presentation beyond the centre → top-left transform.
type RenderSystem struct {
	store    *entity.Store
	renderer interfaces.Renderer
}

func NewRenderSystem(store *entity.Store, renderer interfaces.Renderer) *RenderSystem {
	return &RenderSystem{store: store, renderer: renderer}
}

func (s *RenderSystem) Sync() {
	r := s.renderer
	for _, b := range s.store.Bullets {
		place(r, b.Visual, b.X, b.Y, config.BulletSize, config.BulletSize)
	}
	for _, e := range s.store.Enemies {
		place(r, e.Visual, e.X, e.Y, config.EnemySize, config.EnemySize)
	}
	for _, bb := range s.store.BossBullets {
		place(r, bb.Visual, bb.X, bb.Y, config.BossBulletSize, config.BossBulletSize)
	}
	for _, o := range s.store.Obstacles {
		place(r, o.Visual, o.X, o.Y, config.ObstacleSize, config.ObstacleSize)
		// пузырь висит над препятствием: левый верхний угол (x-40, y-44)
		place(r, o.Bubble, o.X, o.Y-config.BubbleOffsetY, config.BubbleWidth, config.BubbleHeight)
	}
	if b := s.store.Boss; b != nil {
		place(r, b.Visual, b.X, b.Y, config.BossWidth, config.BossHeight)
	}
}

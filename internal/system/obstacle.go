package system

import (
	"fmt"

	"go-stage-shooter/internal/component"
	"go-stage-shooter/internal/config"
	"go-stage-shooter/internal/entity"
	"go-stage-shooter/internal/event"
	"go-stage-shooter/internal/interfaces"
	"go-stage-shooter/internal/utils"
)

// ObstacleSystem показывает подсказку рядом с игроком и превращает тапы
// в отложенные награды.
type ObstacleSystem struct {
	store    *entity.Store
	player   interfaces.PlayerTracker
	renderer interfaces.Renderer
	rng      *utils.PRNGService
	events   *event.Dispatcher
}

func NewObstacleSystem(store *entity.Store, player interfaces.PlayerTracker, renderer interfaces.Renderer,
	rng *utils.PRNGService, events *event.Dispatcher) *ObstacleSystem {
	return &ObstacleSystem{store: store, player: player, renderer: renderer, rng: rng, events: events}
}

// BubbleLabel — текст подсказки над препятствием.
func BubbleLabel(c component.ObstacleColor) string {
	return fmt.Sprintf("%s: tap to destroy", c)
}

// UpdateBubbles вешает подсказку на препятствия в радиусе и снимает с остальных.
func (s *ObstacleSystem) UpdateBubbles() {
	px, py := s.player.PlayerPos()
	for _, o := range s.store.Obstacles {
		near := utils.Dist(o.X, o.Y, px, py) <= config.BubbleRadius

		switch {
		case near && o.Bubble == 0:
			o.Bubble = s.renderer.Attach(component.KindBubble, BubbleLabel(o.Color))
		case !near && o.Bubble != 0:
			s.renderer.Release(o.Bubble)
			o.Bubble = 0
		}
	}
}

// HandleTap destroys at most one obstacle under the tap point, newest first.
// Only obstacles close to the player count. The reward is reported, never applied.
func (s *ObstacleSystem) HandleTap(x, y float64) (component.Reward, bool) {
	px, py := s.player.PlayerPos()

	for i := len(s.store.Obstacles) - 1; i >= 0; i-- {
		o := s.store.Obstacles[i]
		if utils.Dist(o.X, o.Y, px, py) > config.TapRadius {
			continue
		}
		if !utils.BoxContains(o.X, o.Y, config.ObstacleHalfExtent, config.ObstacleHalfExtent, x, y) {
			continue
		}

		s.store.RemoveObstacle(i)
		reward := component.Reward{
			Energy: config.RewardEnergyBase + s.rng.Intn(config.RewardEnergySpread),
			Cat:    s.rng.Pick(config.RewardCategories),
		}
		s.events.Dispatch(event.Event{Type: event.ObstacleDestroyed, Data: reward})
		return reward, true
	}
	return component.Reward{}, false
}

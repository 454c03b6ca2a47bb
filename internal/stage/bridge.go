package stage

import (
	"fmt"

	"go-stage-shooter/internal/component"
	"go-stage-shooter/internal/event"
)

// Сообщения для хоста. Хост может их показать как есть или заменить своими.
const (
	msgRefused    = "HP is 0, the battle cannot start (recover first)"
	msgDefeat     = "HP reached 0..."
	msgBossDefeat = "Boss defeated! Go on to the next stage, or escape?"
)

func msgStarted(level int) string {
	return fmt.Sprintf("Stage %d start!", level)
}

func msgReward(r component.Reward) string {
	return fmt.Sprintf("Obstacle destroyed! +%d energy / card category %s", r.Energy, r.Cat)
}

// hostBridge turns simulation events into host callbacks.
type hostBridge struct {
	opts *Options
}

func (b *hostBridge) OnEvent(e event.Event) {
	o := b.opts
	switch e.Type {
	case event.StageStarted:
		o.OnMessage(msgStarted(e.Data.(int)))
	case event.StageRefused:
		o.OnMessage(msgRefused)
	case event.EnemyDestroyed, event.PlayerHit:
		o.OnRequestHudRefresh()
	case event.ObstacleDestroyed:
		r := e.Data.(component.Reward)
		o.OnReward(r)
		o.OnMessage(msgReward(r))
		o.OnRequestHudRefresh()
	case event.PlayerDefeated:
		o.OnMessage(msgDefeat)
		o.OnRequestHudRefresh()
	case event.BossDefeated:
		o.OnMessage(msgBossDefeat)
	}
}

var bridgedEvents = []event.EventType{
	event.StageStarted,
	event.StageRefused,
	event.EnemyDestroyed,
	event.PlayerHit,
	event.ObstacleDestroyed,
	event.PlayerDefeated,
	event.BossDefeated,
}

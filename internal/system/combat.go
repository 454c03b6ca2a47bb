package system

import (
	"go-stage-shooter/internal/config"
	"go-stage-shooter/internal/entity"
	"go-stage-shooter/internal/event"
	"go-stage-shooter/internal/interfaces"
	"go-stage-shooter/internal/utils"
)

// Outcome — итог прохода столкновений.
type Outcome struct {
	BossDefeated bool
}

// CombatSystem resolves circle-circle hits and requests the resulting state
// changes from the host. Every scan walks newest-first.
type CombatSystem struct {
	store  *entity.Store
	player interfaces.PlayerTracker
	state  interfaces.StateAccess
	events *event.Dispatcher
}

func NewCombatSystem(store *entity.Store, player interfaces.PlayerTracker,
	state interfaces.StateAccess, events *event.Dispatcher) *CombatSystem {
	return &CombatSystem{store: store, player: player, state: state, events: events}
}

// Update runs the four checks in order. When the boss goes down the pass stops
// right there and the remaining checks are skipped.
func (s *CombatSystem) Update() Outcome {
	s.bulletsVsEnemies()
	if s.bulletsVsBoss() {
		return Outcome{BossDefeated: true}
	}
	s.enemiesVsPlayer()
	s.bossBulletsVsPlayer()
	return Outcome{}
}

// bulletsVsEnemies: одна пуля на врага за тик, первая найденная с конца.
func (s *CombatSystem) bulletsVsEnemies() {
	for i := len(s.store.Enemies) - 1; i >= 0; i-- {
		e := s.store.Enemies[i]
		hit := false

		for j := len(s.store.Bullets) - 1; j >= 0; j-- {
			b := s.store.Bullets[j]
			if utils.CirclesOverlap(e.X, e.Y, e.Radius, b.X, b.Y, b.Radius) {
				s.store.RemoveBullet(j)
				hit = true
				break
			}
		}
		if !hit {
			continue
		}

		s.store.RemoveEnemy(i)
		grantExp(s.state, config.EnemyKillExp)
		s.events.Dispatch(event.Event{Type: event.EnemyDestroyed})
	}
}

func (s *CombatSystem) bulletsVsBoss() bool {
	boss := s.store.Boss
	if boss == nil {
		return false
	}

	for j := len(s.store.Bullets) - 1; j >= 0; j-- {
		b := s.store.Bullets[j]
		if !utils.CirclesOverlap(boss.X, boss.Y, boss.Radius, b.X, b.Y, b.Radius) {
			continue
		}
		s.store.RemoveBullet(j)
		boss.HP -= config.BulletDamageBoss
		s.events.Dispatch(event.Event{Type: event.BossDamaged, Data: event.BossHit{HP: boss.HP, HPMax: boss.HPMax}})
		if boss.Defeated() {
			return true
		}
	}
	return false
}

func (s *CombatSystem) enemiesVsPlayer() {
	px, py := s.player.PlayerPos()
	for i := len(s.store.Enemies) - 1; i >= 0; i-- {
		e := s.store.Enemies[i]
		if !utils.CirclesOverlap(e.X, e.Y, e.Radius, px, py, config.PlayerHitRadius) {
			continue
		}
		dmg := e.Damage
		s.store.RemoveEnemy(i)
		damagePlayer(s.state, dmg)
		s.events.Dispatch(event.Event{Type: event.PlayerHit, Data: dmg})
	}
}

func (s *CombatSystem) bossBulletsVsPlayer() {
	px, py := s.player.PlayerPos()
	for i := len(s.store.BossBullets) - 1; i >= 0; i-- {
		bb := s.store.BossBullets[i]
		if !utils.CirclesOverlap(bb.X, bb.Y, bb.Radius, px, py, config.PlayerHitRadius) {
			continue
		}
		dmg := bb.Damage
		s.store.RemoveBossBullet(i)
		damagePlayer(s.state, dmg)
		s.events.Dispatch(event.Event{Type: event.PlayerHit, Data: dmg})
	}
}

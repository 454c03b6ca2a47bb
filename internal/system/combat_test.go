package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-stage-shooter/internal/component"
	"go-stage-shooter/internal/event"
)

func bulletAt(x, y float64, h component.Handle) *component.Bullet {
	return &component.Bullet{Position: component.Position{X: x, Y: y}, Radius: 4, Visual: h}
}

func TestOneBulletPerEnemy(t *testing.T) {
	r := newRig()
	r.store.Enemies = []*component.Enemy{{Position: component.Position{X: 100, Y: 100}, Radius: 11, Visual: 10}}
	r.store.Bullets = []*component.Bullet{bulletAt(100, 105, 1), bulletAt(100, 95, 2)}

	out := r.combat.Update()

	assert.False(t, out.BossDefeated)
	assert.Empty(t, r.store.Enemies)
	require.Len(t, r.store.Bullets, 1)
	assert.Equal(t, component.Handle(1), r.store.Bullets[0].Visual, "the newest bullet is consumed first")
	assert.Equal(t, 5, r.state.d.Exp)
	assert.Equal(t, 1, r.count(event.EnemyDestroyed))
}

func TestEnemyNotHitIsUntouched(t *testing.T) {
	r := newRig()
	r.store.Enemies = []*component.Enemy{{Position: component.Position{X: 100, Y: 100}, Radius: 11}}
	r.store.Bullets = []*component.Bullet{bulletAt(100, 116, 1)}

	r.combat.Update()
	assert.Len(t, r.store.Enemies, 1)
	assert.Len(t, r.store.Bullets, 1)
	assert.Equal(t, 0, r.state.d.Exp)
	assert.Equal(t, 0, r.state.mutates)
}

func TestTwoEnemiesTwoBullets(t *testing.T) {
	r := newRig()
	r.store.Enemies = []*component.Enemy{
		{Position: component.Position{X: 100, Y: 100}, Radius: 11},
		{Position: component.Position{X: 104, Y: 100}, Radius: 11},
	}
	r.store.Bullets = []*component.Bullet{bulletAt(102, 100, 1), bulletAt(102, 101, 2)}

	r.combat.Update()
	assert.Empty(t, r.store.Enemies)
	assert.Empty(t, r.store.Bullets)
	assert.Equal(t, 10, r.state.d.Exp)
}

func TestBossDefeatShortCircuits(t *testing.T) {
	r := newRig()
	r.store.Boss = &component.Boss{Position: component.Position{X: 200, Y: 60}, Radius: 36, HP: 6, HPMax: 370}
	r.store.Bullets = []*component.Bullet{bulletAt(200, 60, 1), bulletAt(201, 60, 2), bulletAt(202, 60, 3)}
	r.store.Enemies = []*component.Enemy{{Position: component.Position{X: 200, Y: 500}, Radius: 11, Damage: 10}}

	out := r.combat.Update()

	assert.True(t, out.BossDefeated)
	assert.Equal(t, 0, r.store.Boss.HP)
	require.Len(t, r.store.Bullets, 2, "only the killing bullet is consumed")
	assert.Equal(t, component.Handle(1), r.store.Bullets[0].Visual)
	assert.Equal(t, component.Handle(2), r.store.Bullets[1].Visual)
	assert.Equal(t, 1, r.count(event.BossDamaged))

	assert.Len(t, r.store.Enemies, 1, "player collisions are skipped after the boss falls")
	assert.Equal(t, 100, r.state.d.HP)
}

func TestBossTakesDamagePerBullet(t *testing.T) {
	r := newRig()
	r.store.Boss = &component.Boss{Position: component.Position{X: 200, Y: 60}, Radius: 36, HP: 100, HPMax: 370}
	r.store.Bullets = []*component.Bullet{bulletAt(200, 60, 1), bulletAt(230, 60, 2), bulletAt(200, 200, 3)}

	out := r.combat.Update()
	assert.False(t, out.BossDefeated)
	assert.Equal(t, 88, r.store.Boss.HP)
	require.Len(t, r.store.Bullets, 1)
	assert.Equal(t, component.Handle(3), r.store.Bullets[0].Visual)

	hit := r.seen[len(r.seen)-1].Data.(event.BossHit)
	assert.Equal(t, event.BossHit{HP: 88, HPMax: 370}, hit)
}

func TestEnemiesAndBossBulletsHitPlayer(t *testing.T) {
	r := newRig()
	r.state.d.HP = 25
	r.store.Enemies = []*component.Enemy{
		{Position: component.Position{X: 200, Y: 520}, Radius: 11, Damage: 10, Visual: 1},
		{Position: component.Position{X: 200, Y: 560}, Radius: 11, Damage: 10, Visual: 2},
	}
	r.store.BossBullets = []*component.BossBullet{
		{Position: component.Position{X: 190, Y: 500}, Radius: 5, Damage: 9, Visual: 3},
		{Position: component.Position{X: 210, Y: 500}, Radius: 5, Damage: 9, Visual: 4},
	}

	r.combat.Update()

	assert.Equal(t, 0, r.state.d.HP, "HP is floored at zero")
	require.Len(t, r.store.Enemies, 1)
	assert.Equal(t, component.Handle(2), r.store.Enemies[0].Visual)
	assert.Empty(t, r.store.BossBullets)
	assert.Equal(t, 3, r.count(event.PlayerHit))
}

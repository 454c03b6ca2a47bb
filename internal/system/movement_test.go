package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-stage-shooter/internal/component"
)

func TestMovementIntegrates(t *testing.T) {
	r := newRig()
	b := r.spawn.FirePlayerBullet()
	r.store.Enemies = append(r.store.Enemies, &component.Enemy{
		Position: component.Position{X: 100, Y: 100},
		Velocity: component.Velocity{VX: 10, VY: -20},
	})

	r.movement.Update(0.5)
	assert.Equal(t, 240.0, b.Y)
	assert.Equal(t, component.Position{X: 105, Y: 90}, r.store.Enemies[0].Position)
}

func TestMovementCullMargins(t *testing.T) {
	r := newRig()
	r.store.Bullets = []*component.Bullet{
		{Position: component.Position{X: 200, Y: -29}, Visual: 1},
		{Position: component.Position{X: 200, Y: -31}, Visual: 2},
	}
	r.store.Enemies = []*component.Enemy{
		{Position: component.Position{X: -59, Y: 10}, Visual: 3},
		{Position: component.Position{X: -61, Y: 10}, Visual: 4},
	}
	r.store.BossBullets = []*component.BossBullet{
		{Position: component.Position{X: 10, Y: 631}, Visual: 5},
		{Position: component.Position{X: 10, Y: 629}, Visual: 6},
	}

	r.movement.Update(0)

	require.Len(t, r.store.Bullets, 1)
	assert.Equal(t, component.Handle(1), r.store.Bullets[0].Visual)
	require.Len(t, r.store.Enemies, 1)
	assert.Equal(t, component.Handle(3), r.store.Enemies[0].Visual)
	require.Len(t, r.store.BossBullets, 1)
	assert.Equal(t, component.Handle(6), r.store.BossBullets[0].Visual)
	assert.ElementsMatch(t, []component.Handle{2, 4, 5}, r.renderer.released)
}

func TestObstacleLifetime(t *testing.T) {
	r := newRig()
	r.store.Obstacles = []*component.Obstacle{
		{Life: 4.0, FromBoss: true, Visual: 1, Bubble: 2},
		{Unlimited: true, Visual: 3},
	}

	const dt = 1.0 / 32
	for i := 0; i < 127; i++ {
		r.movement.Update(dt)
	}
	require.Len(t, r.store.Obstacles, 2, "still alive one tick before 4.0s")

	r.movement.Update(dt)
	require.Len(t, r.store.Obstacles, 1)
	assert.True(t, r.store.Obstacles[0].Unlimited)
	assert.ElementsMatch(t, []component.Handle{1, 2}, r.renderer.released)

	for i := 0; i < 100000; i++ {
		r.movement.Update(0.033)
	}
	assert.Len(t, r.store.Obstacles, 1, "unlimited obstacles never expire")
}

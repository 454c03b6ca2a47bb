package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-stage-shooter/internal/component"
)

type releaseLog struct {
	freed []component.Handle
}

func (r *releaseLog) release(h component.Handle) {
	r.freed = append(r.freed, h)
}

func populated(r *releaseLog) *Store {
	s := NewStore(r.release)
	s.Bullets = []*component.Bullet{{Visual: 1}, {Visual: 2}}
	s.Enemies = []*component.Enemy{{Visual: 3}}
	s.BossBullets = []*component.BossBullet{{Visual: 4}}
	s.Obstacles = []*component.Obstacle{
		{Visual: 5, Bubble: 6, FromBoss: true},
		{Visual: 7, Unlimited: true},
	}
	s.Boss = &component.Boss{Visual: 8, HP: 10}
	s.Timers = component.Timers{Enemy: 1, BossShot: 2, BossSummon: 3, PlayerShot: 4}
	return s
}

func TestResetIsIdempotent(t *testing.T) {
	r := &releaseLog{}
	s := populated(r)
	require.Equal(t, 7, s.Len())

	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Boss)
	assert.Equal(t, component.Timers{}, s.Timers)
	assert.ElementsMatch(t, []component.Handle{1, 2, 3, 4, 5, 6, 7, 8}, r.freed)

	s.Reset()
	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Len(t, r.freed, 8, "second reset must not release anything again")
}

func TestRemoveKeepsOrder(t *testing.T) {
	r := &releaseLog{}
	s := NewStore(r.release)
	s.Bullets = []*component.Bullet{{Visual: 1}, {Visual: 2}, {Visual: 3}}

	s.RemoveBullet(1)
	require.Len(t, s.Bullets, 2)
	assert.Equal(t, component.Handle(1), s.Bullets[0].Visual)
	assert.Equal(t, component.Handle(3), s.Bullets[1].Visual)
	assert.Equal(t, []component.Handle{2}, r.freed)
}

func TestRemoveObstacleReleasesBubble(t *testing.T) {
	r := &releaseLog{}
	s := populated(r)

	s.RemoveObstacle(0)
	assert.Equal(t, []component.Handle{5, 6}, r.freed)
	assert.Len(t, s.Obstacles, 1)
}

func TestRemoveBossObstacles(t *testing.T) {
	r := &releaseLog{}
	s := populated(r)

	assert.Equal(t, 1, s.RemoveBossObstacles())
	require.Len(t, s.Obstacles, 1)
	assert.False(t, s.Obstacles[0].FromBoss)
}

func TestNilReleaser(t *testing.T) {
	s := NewStore(nil)
	s.Boss = &component.Boss{Visual: 9}
	s.ClearBoss()
	assert.Nil(t, s.Boss)
}

package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-stage-shooter/internal/component"
	"go-stage-shooter/internal/config"
	"go-stage-shooter/internal/event"
)

func obstacleAt(x, y float64, h component.Handle) *component.Obstacle {
	return &component.Obstacle{
		Position: component.Position{X: x, Y: y},
		Radius:   23,
		Color:    component.ObstacleBlue,
		Life:     4.0,
		FromBoss: true,
		Visual:   h,
	}
}

func TestBubblesFollowDistance(t *testing.T) {
	r := newRig()
	near := obstacleAt(200, 440, 1)
	far := obstacleAt(200, 300, 2)
	r.store.Obstacles = []*component.Obstacle{near, far}

	r.obstacle.UpdateBubbles()
	require.NotZero(t, near.Bubble)
	assert.Zero(t, far.Bubble)
	assert.Equal(t, "blue: tap to destroy", r.renderer.tags[near.Bubble])

	bubble := near.Bubble
	r.obstacle.UpdateBubbles()
	assert.Equal(t, bubble, near.Bubble, "an existing bubble is kept")

	r.player.y = 300
	r.obstacle.UpdateBubbles()
	assert.Zero(t, near.Bubble)
	assert.NotZero(t, far.Bubble)
	assert.Contains(t, r.renderer.released, bubble)
}

func TestTapDestroysAndRewards(t *testing.T) {
	r := newRig()
	r.store.Obstacles = []*component.Obstacle{obstacleAt(220, 450, 1)}

	reward, ok := r.obstacle.HandleTap(235, 470)

	require.True(t, ok)
	assert.Empty(t, r.store.Obstacles)
	assert.GreaterOrEqual(t, reward.Energy, 5)
	assert.LessOrEqual(t, reward.Energy, 10)
	assert.Contains(t, config.RewardCategories, reward.Cat)
	require.Equal(t, 1, r.count(event.ObstacleDestroyed))
	assert.Equal(t, reward, r.seen[0].Data)
	assert.Equal(t, 100, r.state.d.HP)
	assert.Equal(t, 0, r.state.mutates, "rewards are never applied by the stage")
}

func TestTapRewardRanges(t *testing.T) {
	r := newRig()
	energies := map[int]bool{}
	cats := map[string]bool{}
	for i := 0; i < 500; i++ {
		r.store.Obstacles = []*component.Obstacle{obstacleAt(200, 480, component.Handle(i+1))}
		reward, ok := r.obstacle.HandleTap(200, 480)
		require.True(t, ok)
		energies[reward.Energy] = true
		cats[reward.Cat] = true
	}
	assert.Len(t, energies, 6)
	for e := range energies {
		assert.True(t, e >= 5 && e <= 10, "energy %d", e)
	}
	assert.Len(t, cats, len(config.RewardCategories))
}

func TestTapIgnoresFarObstacles(t *testing.T) {
	r := newRig()
	r.store.Obstacles = []*component.Obstacle{obstacleAt(200, 400, 1)} // 100 от игрока

	_, ok := r.obstacle.HandleTap(200, 400)
	assert.False(t, ok)
	assert.Len(t, r.store.Obstacles, 1)
	assert.Empty(t, r.seen)
}

func TestTapOutsideBox(t *testing.T) {
	r := newRig()
	r.store.Obstacles = []*component.Obstacle{obstacleAt(200, 450, 1)}

	_, ok := r.obstacle.HandleTap(224, 450)
	assert.False(t, ok)
	assert.Len(t, r.store.Obstacles, 1)
}

func TestTapDestroysOnlyNewest(t *testing.T) {
	r := newRig()
	r.store.Obstacles = []*component.Obstacle{obstacleAt(200, 450, 1), obstacleAt(205, 455, 2)}
	r.store.Obstacles[0].Bubble = 7

	_, ok := r.obstacle.HandleTap(202, 452)
	require.True(t, ok)
	require.Len(t, r.store.Obstacles, 1)
	assert.Equal(t, component.Handle(1), r.store.Obstacles[0].Visual)
	assert.Equal(t, []component.Handle{2}, r.renderer.released)
}

package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCenterRect(t *testing.T) {
	assert.Equal(t, Rect{X: 55, Y: 37, W: 90, H: 46}, CenterRect(100, 60, 90, 46))
}

func TestPositionStep(t *testing.T) {
	p := Position{X: 10, Y: 10}
	p.Step(Velocity{VX: 0, VY: -520}, 0.5)
	assert.Equal(t, Position{X: 10, Y: -250}, p)
}

func TestObstacleExpired(t *testing.T) {
	assert.True(t, (&Obstacle{Life: 0}).Expired())
	assert.False(t, (&Obstacle{Life: -5, Unlimited: true}).Expired())
	assert.False(t, (&Obstacle{Life: 0.1}).Expired())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "boss_bullet", KindBossBullet.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

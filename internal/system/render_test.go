package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-stage-shooter/internal/component"
)

func TestRenderSyncPlacesEverything(t *testing.T) {
	r := newRig()
	r.store.Boss = &component.Boss{Position: component.Position{X: 200, Y: 60}, Visual: 1}
	r.store.Enemies = []*component.Enemy{{Position: component.Position{X: 50, Y: 50}, Visual: 2}}
	r.store.BossBullets = []*component.BossBullet{{Position: component.Position{X: 10, Y: 10}, Visual: 3}}
	r.store.Obstacles = []*component.Obstacle{{Position: component.Position{X: 100, Y: 300}, Visual: 4, Bubble: 5}}
	r.store.Bullets = []*component.Bullet{{Position: component.Position{X: 0, Y: 0}}}

	r.render.Sync()

	p := r.renderer.placed
	assert.Equal(t, component.Rect{X: 155, Y: 37, W: 90, H: 46}, p[1])
	assert.Equal(t, component.Rect{X: 39, Y: 39, W: 22, H: 22}, p[2])
	assert.Equal(t, component.Rect{X: 5, Y: 5, W: 10, H: 10}, p[3])
	assert.Equal(t, component.Rect{X: 77, Y: 277, W: 46, H: 46}, p[4])
	assert.Equal(t, component.Rect{X: 60, Y: 256, W: 80, H: 24}, p[5])
	assert.Len(t, p, 5, "entities without a visual are not reported")
}

package system

import (
	"go-stage-shooter/internal/component"
	"go-stage-shooter/internal/defs"
	"go-stage-shooter/internal/entity"
	"go-stage-shooter/internal/event"
	"go-stage-shooter/internal/interfaces"
	"go-stage-shooter/internal/utils"
)

type fakeField struct{ w, h float64 }

func (f fakeField) Bounds() (float64, float64) { return f.w, f.h }

type fakePlayer struct{ x, y float64 }

func (p *fakePlayer) PlayerPos() (float64, float64) { return p.x, p.y }

type fakeState struct {
	d       interfaces.PlayerState
	mutates int
}

func (s *fakeState) Read() interfaces.PlayerState { return s.d }

func (s *fakeState) Mutate(fn func(d *interfaces.PlayerState)) {
	s.mutates++
	fn(&s.d)
}

type fakeRenderer struct {
	next     component.Handle
	kinds    map[component.Handle]component.Kind
	tags     map[component.Handle]string
	placed   map[component.Handle]component.Rect
	released []component.Handle
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{
		kinds:  map[component.Handle]component.Kind{},
		tags:   map[component.Handle]string{},
		placed: map[component.Handle]component.Rect{},
	}
}

func (r *fakeRenderer) Attach(kind component.Kind, tag string) component.Handle {
	r.next++
	r.kinds[r.next] = kind
	r.tags[r.next] = tag
	return r.next
}

func (r *fakeRenderer) Place(h component.Handle, rect component.Rect) { r.placed[h] = rect }

func (r *fakeRenderer) Release(h component.Handle) {
	r.released = append(r.released, h)
	delete(r.kinds, h)
}

func (r *fakeRenderer) live(kind component.Kind) int {
	n := 0
	for _, k := range r.kinds {
		if k == kind {
			n++
		}
	}
	return n
}

// rig wires every system against fakes on a 400×600 field.
type rig struct {
	field    fakeField
	player   *fakePlayer
	state    *fakeState
	renderer *fakeRenderer
	store    *entity.Store
	events   *event.Dispatcher
	seen     []event.Event

	spawn    *SpawnSystem
	boss     *BossSystem
	movement *MovementSystem
	combat   *CombatSystem
	obstacle *ObstacleSystem
	render   *RenderSystem
}

func newRig() *rig {
	r := &rig{
		field:    fakeField{w: 400, h: 600},
		player:   &fakePlayer{x: 200, y: 500},
		state:    &fakeState{d: interfaces.PlayerState{HP: 100, StageLv: 1}},
		renderer: newFakeRenderer(),
		events:   event.NewDispatcher(),
	}
	r.store = entity.NewStore(r.renderer.Release)
	rng := utils.NewPRNGService(1)

	r.events.SubscribeAll(event.ListenerFunc(func(e event.Event) { r.seen = append(r.seen, e) }),
		event.EnemyDestroyed, event.BossDamaged, event.PlayerHit, event.ObstacleDestroyed)

	r.spawn = NewSpawnSystem(r.store, r.field, r.player, r.renderer, rng, nil)
	r.boss = NewBossSystem(r.store, r.field, r.spawn)
	r.movement = NewMovementSystem(r.store, r.field)
	r.combat = NewCombatSystem(r.store, r.player, r.state, r.events)
	r.obstacle = NewObstacleSystem(r.store, r.player, r.renderer, rng, r.events)
	r.render = NewRenderSystem(r.store, r.renderer)
	return r
}

func (r *rig) count(t event.EventType) int {
	n := 0
	for _, e := range r.seen {
		if e.Type == t {
			n++
		}
	}
	return n
}

var lv1 = defs.ForLevel(1)

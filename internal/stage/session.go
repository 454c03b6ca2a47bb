// Package stage runs one combat stage on behalf of a host: it owns the entity
// store and the per-frame systems, and talks to the host only through the
// capabilities passed to Mount.
package stage

import (
	"log/slog"
	"time"

	"go-stage-shooter/internal/component"
	"go-stage-shooter/internal/defs"
	"go-stage-shooter/internal/entity"
	"go-stage-shooter/internal/event"
	"go-stage-shooter/internal/interfaces"
	"go-stage-shooter/internal/system"
	"go-stage-shooter/internal/utils"
)

// Session — смонтированная стадия. Все методы вызываются из потока кадров/ввода хоста,
// конкурентный доступ не поддерживается.
type Session struct {
	opts   Options
	log    *slog.Logger
	store  *entity.Store
	events *event.Dispatcher

	spawn    *system.SpawnSystem
	boss     *system.BossSystem
	movement *system.MovementSystem
	combat   *system.CombatSystem
	obstacle *system.ObstacleSystem
	render   *system.RenderSystem

	mounted bool
	running bool
	paused  bool
	stopped bool
	frame   interfaces.FrameID
	last    time.Time
}

// Mount собирает сессию на возможностях хоста. Начальная фаза — Idle.
func Mount(opts Options) (*Session, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	s := &Session{
		opts:    opts,
		log:     opts.Logger.With("component", "stage"),
		events:  event.NewDispatcher(),
		mounted: true,
	}
	s.store = entity.NewStore(func(h component.Handle) { s.opts.Renderer.Release(h) })

	s.spawn = system.NewSpawnSystem(s.store, opts.Field, opts.Player, opts.Renderer, opts.Rng, opts.Logger)
	s.boss = system.NewBossSystem(s.store, opts.Field, s.spawn)
	s.movement = system.NewMovementSystem(s.store, opts.Field)
	s.combat = system.NewCombatSystem(s.store, opts.Player, opts.State, s.events)
	s.obstacle = system.NewObstacleSystem(s.store, opts.Player, opts.Renderer, opts.Rng, s.events)
	s.render = system.NewRenderSystem(s.store, opts.Renderer)

	s.events.SubscribeAll(&hostBridge{opts: &s.opts}, bridgedEvents...)

	s.log.Debug("mounted")
	return s, nil
}

// Unmount останавливает стадию, освобождает визуалы и отключает колбэки хоста.
// Повторный вызов ничего не делает.
func (s *Session) Unmount() {
	if !s.mounted {
		return
	}
	s.StopStage()

	s.mounted = false
	s.paused = false
	s.events.UnsubscribeAll()

	renderer, sched, state := s.opts.Renderer, s.opts.Scheduler, s.opts.State
	s.opts = Options{Field: s.opts.Field, Player: s.opts.Player, State: state, Renderer: renderer, Scheduler: sched}.withDefaults()
	s.log.Debug("unmounted")
}

// Events exposes the stage's event bus so hosts can react to hits, kills and
// outcomes (sound cues, screen shake) beyond the plain callbacks.
func (s *Session) Events() *event.Dispatcher {
	return s.events
}

// StartStage resets the store, spawns the boss and schedules the first frame.
// With host HP at 0 it refuses, notifies the host and changes nothing.
// Starting a running stage restarts it.
func (s *Session) StartStage() error {
	if !s.mounted {
		return ErrNotMounted
	}

	d := s.opts.State.Read()
	if d.HP <= 0 {
		s.log.Warn("start refused", "hp", d.HP)
		s.events.Dispatch(event.Event{Type: event.StageRefused})
		return ErrHPDepleted
	}

	s.store.Reset()
	s.paused = false
	s.running = true
	s.stopped = false
	s.last = s.opts.Scheduler.Now()

	def := defs.ForLevel(d.StageLv)
	s.events.Dispatch(event.Event{Type: event.StageStarted, Data: def.Level})
	s.spawn.SpawnBoss(def)

	s.cancelFrame()
	s.frame = s.opts.Scheduler.RequestFrame(s.onFrame)

	s.log.Info("stage started", "stage_lv", def.Level, "boss_hp", def.BossHP)
	return nil
}

// StopStage отменяет следующий кадр и освобождает все сущности. Идемпотентен.
func (s *Session) StopStage() {
	wasRunning := s.running
	s.running = false
	s.cancelFrame()
	s.store.Reset()
	s.stopped = true

	if wasRunning {
		s.events.Dispatch(event.Event{Type: event.StageStopped})
		s.log.Info("stage stopped")
	}
}

// SetPaused останавливает симуляцию, но кадры продолжают планироваться:
// после снятия паузы скачка времени нет.
func (s *Session) SetPaused(paused bool) {
	s.paused = paused
}

func (s *Session) IsPaused() bool {
	return s.paused
}

func (s *Session) Phase() Phase {
	switch {
	case s.running && s.paused:
		return PhasePaused
	case s.running:
		return PhaseRunning
	case s.stopped:
		return PhaseStopped
	default:
		return PhaseIdle
	}
}

// BossHP — HP живого босса, если он есть.
func (s *Session) BossHP() (hp, hpMax int, ok bool) {
	if s.store.Boss == nil {
		return 0, 0, false
	}
	return s.store.Boss.HP, s.store.Boss.HPMax, true
}

// Live — число живых сущностей.
func (s *Session) Live() int {
	return s.store.Len()
}

func (s *Session) cancelFrame() {
	if s.frame != 0 {
		s.opts.Scheduler.CancelFrame(s.frame)
		s.frame = 0
	}
}

func (s *Session) onFrame(now time.Time) {
	s.frame = 0
	if !s.mounted || !s.running {
		return
	}

	dt := utils.ClampDelta(now.Sub(s.last))
	s.last = now

	if !s.paused {
		s.Tick(dt)
	}
	// остановлено, или колбэк хоста уже перезапустил стадию со своим кадром
	if !s.running || s.frame != 0 {
		return
	}
	s.frame = s.opts.Scheduler.RequestFrame(s.onFrame)
}

// Tick продвигает запущенную стадию без паузы на dt секунд.
func (s *Session) Tick(dt float64) {
	if !s.mounted || !s.running || s.paused {
		return
	}
	def := defs.ForLevel(s.opts.State.Read().StageLv)

	s.spawn.Update(dt, def)
	s.boss.Update(dt, def)
	s.movement.Update(dt)

	if out := s.combat.Update(); out.BossDefeated {
		s.onBossDefeat()
		return
	}

	s.obstacle.UpdateBubbles()
	s.render.Sync()

	if hp := s.opts.State.Read().HP; hp <= 0 {
		s.onDefeat()
	}
}

// HandleTap передаёт тап (координаты поля) препятствиям. Учитывается только
// во время боя без паузы.
func (s *Session) HandleTap(x, y float64) (component.Reward, bool) {
	if !s.mounted || !s.running || s.paused {
		return component.Reward{}, false
	}
	return s.obstacle.HandleTap(x, y)
}

// onDefeat: экономику не трогаем, штрафы за поражение решает хост.
func (s *Session) onDefeat() {
	s.log.Info("player defeated")
	s.events.Dispatch(event.Event{Type: event.PlayerDefeated})
	s.StopStage()
	s.opts.OnDefeat()
}

func (s *Session) onBossDefeat() {
	s.events.Dispatch(event.Event{Type: event.BossDefeated})
	removed := s.store.RemoveBossObstacles()
	s.log.Info("boss defeated", "obstacles_removed", removed)
	s.StopStage()
	s.opts.OnBossDefeat()
}

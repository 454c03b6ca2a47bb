package system

import (
	"log/slog"
	"math"

	"go-stage-shooter/internal/component"
	"go-stage-shooter/internal/config"
	"go-stage-shooter/internal/defs"
	"go-stage-shooter/internal/entity"
	"go-stage-shooter/internal/interfaces"
	"go-stage-shooter/internal/utils"
)

// SpawnSystem creates every entity of a stage: the player's auto-fire, enemies
// from the field edges, the boss, obstacle packs and the boss's radial bursts.
type SpawnSystem struct {
	store    *entity.Store
	field    interfaces.Field
	player   interfaces.PlayerTracker
	renderer interfaces.Renderer
	rng      *utils.PRNGService
	log      *slog.Logger
}

func NewSpawnSystem(store *entity.Store, field interfaces.Field, player interfaces.PlayerTracker,
	renderer interfaces.Renderer, rng *utils.PRNGService, logger *slog.Logger) *SpawnSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpawnSystem{
		store:    store,
		field:    field,
		player:   player,
		renderer: renderer,
		rng:      rng,
		log:      logger.With("component", "spawn"),
	}
}

// Update ведёт таймеры выстрелов игрока и появления врагов.
func (s *SpawnSystem) Update(deltaTime float64, def defs.StageDefinition) {
	t := &s.store.Timers

	t.PlayerShot -= deltaTime
	if t.PlayerShot <= 0 {
		t.PlayerShot = s.rng.Range(config.PlayerShotBase, config.PlayerShotJitter)
		s.FirePlayerBullet()
	}

	// Таймер продолжает уходить в минус, пока врагов максимум,
	// поэтому новый враг появляется сразу после освобождения места.
	t.Enemy -= deltaTime
	if t.Enemy <= 0 && len(s.store.Enemies) < def.EnemyCap {
		t.Enemy = def.EnemyInterval
		s.SpawnEnemy(def)
	}
}

func (s *SpawnSystem) FirePlayerBullet() *component.Bullet {
	x, y := s.player.PlayerPos()
	b := &component.Bullet{
		Position: component.Position{X: x, Y: y},
		Velocity: component.Velocity{VX: 0, VY: -config.BulletSpeed},
		Radius:   config.BulletRadius,
		Visual:   s.renderer.Attach(component.KindBullet, ""),
	}
	s.store.Bullets = append(s.store.Bullets, b)
	place(s.renderer, b.Visual, b.X, b.Y, config.BulletSize, config.BulletSize)
	return b
}

// SpawnEnemy places an enemy just outside a random edge and aims it at the
// player's current position. It never re-aims.
func (s *SpawnSystem) SpawnEnemy(def defs.StageDefinition) *component.Enemy {
	w, h := s.field.Bounds()
	px, py := s.player.PlayerPos()

	var x, y float64
	switch s.rng.Intn(4) {
	case 0: // сверху
		x, y = s.rng.Float64()*w, -config.EnemySpawnOffset
	case 1: // справа
		x, y = w+config.EnemySpawnOffset, s.rng.Float64()*h
	case 2: // снизу
		x, y = s.rng.Float64()*w, h+config.EnemySpawnOffset
	default: // слева
		x, y = -config.EnemySpawnOffset, s.rng.Float64()*h
	}

	dx, dy := px-x, py-y
	dist := math.Max(1, math.Hypot(dx, dy))

	e := &component.Enemy{
		Position: component.Position{X: x, Y: y},
		Velocity: component.Velocity{VX: dx / dist * def.EnemySpeed, VY: dy / dist * def.EnemySpeed},
		Radius:   config.EnemyRadius,
		Damage:   config.EnemyDamage,
		Visual:   s.renderer.Attach(component.KindEnemy, ""),
	}
	s.store.Enemies = append(s.store.Enemies, e)
	place(s.renderer, e.Visual, e.X, e.Y, config.EnemySize, config.EnemySize)
	return e
}

// SpawnBoss заменяет текущего босса и сбрасывает первую пачку препятствий.
func (s *SpawnSystem) SpawnBoss(def defs.StageDefinition) *component.Boss {
	w, _ := s.field.Bounds()
	s.store.ClearBoss()

	b := &component.Boss{
		Position: component.Position{X: w / 2, Y: config.BossY},
		VX:       def.BossSpeed,
		Radius:   config.BossRadius,
		HP:       def.BossHP,
		HPMax:    def.BossHP,
		Visual:   s.renderer.Attach(component.KindBoss, ""),
	}
	s.store.Boss = b
	place(s.renderer, b.Visual, b.X, b.Y, config.BossWidth, config.BossHeight)
	s.log.Debug("boss spawned", "stage_lv", def.Level, "hp", b.HP)

	s.SpawnObstaclePack(def, true)
	return b
}

// SpawnObstaclePack drops obstacles in the lower part of the field. Boss packs
// expire after def.ObstacleLife seconds; others stay until tapped.
func (s *SpawnSystem) SpawnObstaclePack(def defs.StageDefinition, fromBoss bool) []*component.Obstacle {
	w, h := s.field.Bounds()
	pack := make([]*component.Obstacle, 0, def.PackSize)

	for i := 0; i < def.PackSize; i++ {
		x := s.rng.Range(config.ObstacleMarginX, w-2*config.ObstacleMarginX)
		y := h * s.rng.Range(config.ObstacleMinYFrac, config.ObstacleSpanYFrac)
		color := component.ObstacleColors[s.rng.Intn(len(component.ObstacleColors))]

		o := &component.Obstacle{
			Position:  component.Position{X: x, Y: y},
			Radius:    config.ObstacleRadius,
			Color:     color,
			Unlimited: !fromBoss,
			FromBoss:  fromBoss,
			Visual:    s.renderer.Attach(component.KindObstacle, string(color)),
		}
		if fromBoss {
			o.Life = def.ObstacleLife
		}
		s.store.Obstacles = append(s.store.Obstacles, o)
		place(s.renderer, o.Visual, o.X, o.Y, config.ObstacleSize, config.ObstacleSize)
		pack = append(pack, o)
	}
	s.log.Debug("obstacle pack spawned", "count", len(pack), "from_boss", fromBoss)
	return pack
}

// FireBossRadial emits def.RadialCount bullets at angles 2πi/n, all at the same speed.
func (s *SpawnSystem) FireBossRadial(def defs.StageDefinition) []*component.BossBullet {
	boss := s.store.Boss
	if boss == nil {
		return nil
	}
	n := def.RadialCount
	burst := make([]*component.BossBullet, 0, n)

	for i := 0; i < n; i++ {
		a := float64(i) / float64(n) * math.Pi * 2
		bb := &component.BossBullet{
			Position: component.Position{X: boss.X, Y: boss.Y + config.BossBulletOffsetY},
			Velocity: component.Velocity{VX: math.Cos(a) * def.RadialSpeed, VY: math.Sin(a) * def.RadialSpeed},
			Radius:   config.BossBulletRadius,
			Damage:   def.RadialDamage,
			Visual:   s.renderer.Attach(component.KindBossBullet, ""),
		}
		s.store.BossBullets = append(s.store.BossBullets, bb)
		place(s.renderer, bb.Visual, bb.X, bb.Y, config.BossBulletSize, config.BossBulletSize)
		burst = append(burst, bb)
	}
	return burst
}

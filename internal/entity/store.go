// internal/entity/store.go
package entity

import "go-stage-shooter/internal/component"

// Releaser освобождает визуал хоста. Хэндл 0 игнорируется.
type Releaser func(h component.Handle)

// Store хранит все живые сущности стадии в однородных слайсах.
// Порядок добавления = порядок появления; проверки столкновений и тапов идут с конца.
type Store struct {
	Bullets     []*component.Bullet
	Enemies     []*component.Enemy
	BossBullets []*component.BossBullet
	Obstacles   []*component.Obstacle
	Boss        *component.Boss
	Timers      component.Timers

	release Releaser
}

func NewStore(release Releaser) *Store {
	if release == nil {
		release = func(component.Handle) {}
	}
	return &Store{release: release}
}

func (s *Store) free(h component.Handle) {
	if h != 0 {
		s.release(h)
	}
}

func (s *Store) RemoveBullet(i int) {
	s.free(s.Bullets[i].Visual)
	s.Bullets = removeAt(s.Bullets, i)
}

func (s *Store) RemoveEnemy(i int) {
	s.free(s.Enemies[i].Visual)
	s.Enemies = removeAt(s.Enemies, i)
}

func (s *Store) RemoveBossBullet(i int) {
	s.free(s.BossBullets[i].Visual)
	s.BossBullets = removeAt(s.BossBullets, i)
}

// RemoveObstacle удаляет препятствие вместе с его подсказкой.
func (s *Store) RemoveObstacle(i int) {
	o := s.Obstacles[i]
	s.free(o.Visual)
	s.free(o.Bubble)
	s.Obstacles = removeAt(s.Obstacles, i)
}

// RemoveBossObstacles убирает все препятствия, вызванные боссом.
func (s *Store) RemoveBossObstacles() int {
	removed := 0
	for i := len(s.Obstacles) - 1; i >= 0; i-- {
		if s.Obstacles[i].FromBoss {
			s.RemoveObstacle(i)
			removed++
		}
	}
	return removed
}

func (s *Store) ClearBoss() {
	if s.Boss == nil {
		return
	}
	s.free(s.Boss.Visual)
	s.Boss = nil
}

// Reset освобождает визуалы, очищает коллекции и обнуляет таймеры.
// На пустом хранилище безопасен.
func (s *Store) Reset() {
	for _, b := range s.Bullets {
		s.free(b.Visual)
	}
	for _, e := range s.Enemies {
		s.free(e.Visual)
	}
	for _, o := range s.Obstacles {
		s.free(o.Visual)
		s.free(o.Bubble)
	}
	for _, bb := range s.BossBullets {
		s.free(bb.Visual)
	}
	s.ClearBoss()

	s.Bullets = nil
	s.Enemies = nil
	s.Obstacles = nil
	s.BossBullets = nil
	s.Timers = component.Timers{}
}

// Len — число живых сущностей, включая босса.
func (s *Store) Len() int {
	n := len(s.Bullets) + len(s.Enemies) + len(s.BossBullets) + len(s.Obstacles)
	if s.Boss != nil {
		n++
	}
	return n
}

func removeAt[T any](items []*T, i int) []*T {
	copy(items[i:], items[i+1:])
	items[len(items)-1] = nil
	return items[:len(items)-1]
}

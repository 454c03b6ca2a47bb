// internal/ui/sprites.go
package ui

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-stage-shooter/internal/component"
	"go-stage-shooter/internal/config"
	"go-stage-shooter/internal/interfaces"
)

type sprite struct {
	kind   component.Kind
	tag    string
	rect   component.Rect
	placed bool
}

// Sprites — рендерер стадии для ebiten: хранит визуалы по хэндлам и рисует их каждый кадр.
type Sprites struct {
	next  component.Handle
	items map[component.Handle]*sprite
	face  font.Face
}

var _ interfaces.Renderer = (*Sprites)(nil)

func NewSprites(face font.Face) *Sprites {
	return &Sprites{items: make(map[component.Handle]*sprite), face: face}
}

func (s *Sprites) Attach(kind component.Kind, tag string) component.Handle {
	s.next++
	s.items[s.next] = &sprite{kind: kind, tag: tag}
	return s.next
}

func (s *Sprites) Place(h component.Handle, r component.Rect) {
	if sp, ok := s.items[h]; ok {
		sp.rect = r
		sp.placed = true
	}
}

func (s *Sprites) Release(h component.Handle) {
	delete(s.items, h)
}

// Len returns the number of live visuals.
func (s *Sprites) Len() int {
	return len(s.items)
}

// drawOrder: снизу вверх.
var drawOrder = map[component.Kind]int{
	component.KindObstacle:   0,
	component.KindEnemy:      1,
	component.KindBoss:       2,
	component.KindBullet:     3,
	component.KindBossBullet: 4,
	component.KindBubble:     5,
}

// ordered returns the placed handles sorted by layer, then by creation order.
func (s *Sprites) ordered() []component.Handle {
	hs := make([]component.Handle, 0, len(s.items))
	for h, sp := range s.items {
		if sp.placed {
			hs = append(hs, h)
		}
	}
	sort.Slice(hs, func(i, j int) bool {
		a, b := s.items[hs[i]], s.items[hs[j]]
		if drawOrder[a.kind] != drawOrder[b.kind] {
			return drawOrder[a.kind] < drawOrder[b.kind]
		}
		return hs[i] < hs[j]
	})
	return hs
}

func (s *Sprites) Draw(screen *ebiten.Image) {
	for _, h := range s.ordered() {
		sp := s.items[h]
		r := sp.rect
		x, y, w, hgt := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)

		switch sp.kind {
		case component.KindObstacle:
			c, ok := config.ObstacleColors[sp.tag]
			if !ok {
				c = config.ObstacleColors["red"]
			}
			vector.DrawFilledRect(screen, x, y, w, hgt, c, true)
			vector.StrokeRect(screen, x, y, w, hgt, 1, color.White, true)
		case component.KindBoss:
			vector.DrawFilledRect(screen, x, y, w, hgt, config.BossColor, true)
			vector.StrokeRect(screen, x, y, w, hgt, 2, config.BossStrokeColor, true)
		case component.KindEnemy:
			vector.DrawFilledCircle(screen, x+w/2, y+hgt/2, w/2, config.EnemyColor, true)
		case component.KindBullet:
			vector.DrawFilledCircle(screen, x+w/2, y+hgt/2, w/2, config.BulletColor, true)
		case component.KindBossBullet:
			vector.DrawFilledCircle(screen, x+w/2, y+hgt/2, w/2, config.BossBulletColor, true)
		case component.KindBubble:
			vector.DrawFilledRect(screen, x, y, w, hgt, config.BubbleColor, true)
			if s.face != nil {
				// подпись может быть шире пузыря, центрируем по нему
				tw := font.MeasureString(s.face, sp.tag).Ceil()
				text.Draw(screen, sp.tag, s.face, int(x+w/2)-tw/2, int(y+hgt/2)+4, config.TextLightColor)
			}
		}
	}
}

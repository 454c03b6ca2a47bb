package host

import (
	"math"

	"go-stage-shooter/internal/interfaces"
)

// Field is a fixed-size play field.
type Field struct {
	W, H float64
}

var _ interfaces.Field = Field{}

func (f Field) Bounds() (float64, float64) {
	return f.W, f.H
}

// Player — позиция игрока в координатах поля. Двигает его только хост.
type Player struct {
	X, Y   float64
	Speed  float64
	startX float64
	startY float64
	field  Field
}

var _ interfaces.PlayerTracker = (*Player)(nil)

func NewPlayer(field Field, x, y, speed float64) *Player {
	return &Player{X: x, Y: y, Speed: speed, startX: x, startY: y, field: field}
}

func (p *Player) PlayerPos() (float64, float64) {
	return p.X, p.Y
}

// MoveToward сдвигает игрока к (tx, ty) не дальше Speed*deltaTime и не выводит за поле.
func (p *Player) MoveToward(tx, ty, deltaTime float64) {
	dx, dy := tx-p.X, ty-p.Y
	dist := math.Hypot(dx, dy)
	step := p.Speed * deltaTime
	if dist <= step {
		p.X, p.Y = tx, ty
	} else {
		p.X += dx / dist * step
		p.Y += dy / dist * step
	}
	p.clamp()
}

// Nudge сдвигает игрока на (dx, dy) без ограничения скорости.
func (p *Player) Nudge(dx, dy float64) {
	p.X += dx
	p.Y += dy
	p.clamp()
}

func (p *Player) clamp() {
	p.X = math.Max(0, math.Min(p.field.W, p.X))
	p.Y = math.Max(0, math.Min(p.field.H, p.Y))
}

// Reset возвращает игрока на стартовую позицию.
func (p *Player) Reset() {
	p.X, p.Y = p.startX, p.startY
}

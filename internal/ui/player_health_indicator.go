// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthCells       = 10
	HealthCellRadius  = 7.0
	HealthCellSpacing = 4.0
)

// PlayerHealthIndicator отображает здоровье игрока рядом кружков.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// filledCells: сколько кружков закрасить; неполный кружок считается целым.
func filledCells(health, maxHealth int) int {
	if maxHealth <= 0 || health <= 0 {
		return 0
	}
	n := (health*HealthCells + maxHealth - 1) / maxHealth
	return min(n, HealthCells)
}

// Draw рисует индикатор. Последняя треть здоровья красная, остальное синее.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, face font.Face, health, maxHealth int) {
	filled := filledCells(health, maxHealth)

	for j := 0; j < HealthCells; j++ {
		cx := i.X + HealthCellRadius + float32(j)*(HealthCellRadius*2+HealthCellSpacing)
		cy := i.Y + HealthCellRadius

		var c color.Color = color.Black
		if j < filled {
			if filled*3 <= HealthCells {
				c = color.RGBA{220, 60, 60, 255}
			} else {
				c = color.RGBA{70, 130, 220, 255}
			}
		}
		vector.DrawFilledCircle(screen, cx, cy, HealthCellRadius, c, true)
		vector.StrokeCircle(screen, cx, cy, HealthCellRadius, 1, color.White, true)
	}

	if face != nil {
		label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
		text.Draw(screen, label, face, int(i.X), int(i.Y)-6, color.White)
	}
}

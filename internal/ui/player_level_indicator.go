// internal/ui/player_level_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BarIndicator — полоса заполнения с обводкой: опыт игрока, HP босса.
type BarIndicator struct {
	X, Y          float32
	Width, Height float32
	Fill          color.Color
}

const borderWidth = 1

var borderColor = color.White

func NewBarIndicator(x, y, w, h float32, fill color.Color) *BarIndicator {
	return &BarIndicator{X: x, Y: y, Width: w, Height: h, Fill: fill}
}

func fillRatio(cur, total int) float64 {
	if total <= 0 || cur <= 0 {
		return 0
	}
	return min(1.0, float64(cur)/float64(total))
}

// Draw отрисовывает полосу, заполненную на cur/total.
func (i *BarIndicator) Draw(screen *ebiten.Image, cur, total int) {
	vector.StrokeRect(screen, i.X, i.Y, i.Width, i.Height, borderWidth, borderColor, true)

	fillWidth := float32(float64(i.Width-borderWidth*2) * fillRatio(cur, total))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, i.Height-borderWidth*2, i.Fill, true)
	}
}

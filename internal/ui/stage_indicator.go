package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// StageIndicator отображает номер стадии римскими цифрами.
type StageIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

// NewStageIndicator создает индикатор, центрированный по x.
func NewStageIndicator(x, y int) *StageIndicator {
	return &StageIndicator{
		X:                x,
		Y:                y,
		Color:            color.RGBA{70, 130, 220, 255},
		OutlineColor:     color.White,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *StageIndicator) Draw(screen *ebiten.Image, face font.Face, stageLv int) {
	if stageLv <= 0 || face == nil {
		return
	}
	label := toRoman(stageLv)

	// Каждая пятая стадия выделяется
	textColor := i.Color
	if stageLv%5 == 0 {
		textColor = color.RGBA{230, 60, 60, 255}
	}

	x := i.X - font.MeasureString(face, label).Ceil()/2
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, x, i.Y, textColor)
}

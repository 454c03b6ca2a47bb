// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — круглая кнопка паузы с анимацией нажатия.
type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.Color
	PlayColor      color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play)
		x1, y1 := b.X-size*0.4, b.Y-size*0.5
		x2, y2 := b.X-size*0.4, b.Y+size*0.5
		x3, y3 := b.X+size*0.5, b.Y
		vector.StrokeLine(screen, x1, y1, x2, y2, 3, b.PlayColor, true)
		vector.StrokeLine(screen, x2, y2, x3, y3, 3, b.PlayColor, true)
		vector.StrokeLine(screen, x3, y3, x1, y1, 3, b.PlayColor, true)
	} else {
		// Два прямоугольника (pause)
		width := size * 0.3
		height := size
		spacing := size * 0.2
		vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
		vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	}
	vector.StrokeCircle(screen, b.X, b.Y, size, 1, color.White, true)
}

// IsClicked проверяет, попал ли курсор в кнопку.
func (b *PauseButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}

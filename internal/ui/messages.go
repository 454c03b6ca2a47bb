package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

type message struct {
	text string
	age  float64
}

// MessageLog keeps the last few stage messages and fades them out after ttl seconds.
type MessageLog struct {
	items    []message
	capacity int
	ttl      float64
}

func NewMessageLog(capacity int, ttl float64) *MessageLog {
	return &MessageLog{capacity: capacity, ttl: ttl}
}

func (l *MessageLog) Push(s string) {
	l.items = append(l.items, message{text: s})
	if len(l.items) > l.capacity {
		l.items = l.items[len(l.items)-l.capacity:]
	}
}

// Update ages the messages and drops expired ones.
func (l *MessageLog) Update(deltaTime float64) {
	kept := l.items[:0]
	for _, m := range l.items {
		m.age += deltaTime
		if m.age < l.ttl {
			kept = append(kept, m)
		}
	}
	l.items = kept
}

func (l *MessageLog) Lines() []string {
	out := make([]string, len(l.items))
	for i, m := range l.items {
		out[i] = m.text
	}
	return out
}

// Draw выводит сообщения снизу вверх от (x, y); старые бледнее.
func (l *MessageLog) Draw(screen *ebiten.Image, face font.Face, x, y int) {
	if face == nil {
		return
	}
	for i := len(l.items) - 1; i >= 0; i-- {
		m := l.items[i]
		alpha := 1 - m.age/l.ttl
		c := color.NRGBA{240, 240, 240, uint8(255 * alpha)}
		text.Draw(screen, m.text, face, x, y, c)
		y -= 16
	}
}

// Package tui hosts a stage in a terminal through tcell.
package tui

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"go-stage-shooter/internal/component"
	"go-stage-shooter/internal/interfaces"
)

// Cells is the part of tcell.Screen the canvas draws into.
type Cells interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

type glyph struct {
	kind   component.Kind
	tag    string
	rect   component.Rect
	placed bool
}

// Canvas is a Renderer that maps field rectangles onto terminal cells.
type Canvas struct {
	fieldW, fieldH float64
	next           component.Handle
	items          map[component.Handle]*glyph
}

var _ interfaces.Renderer = (*Canvas)(nil)

func NewCanvas(fieldW, fieldH float64) *Canvas {
	return &Canvas{fieldW: fieldW, fieldH: fieldH, items: make(map[component.Handle]*glyph)}
}

func (c *Canvas) Attach(kind component.Kind, tag string) component.Handle {
	c.next++
	c.items[c.next] = &glyph{kind: kind, tag: tag}
	return c.next
}

func (c *Canvas) Place(h component.Handle, r component.Rect) {
	if g, ok := c.items[h]; ok {
		g.rect = r
		g.placed = true
	}
}

func (c *Canvas) Release(h component.Handle) {
	delete(c.items, h)
}

func (c *Canvas) Len() int {
	return len(c.items)
}

// ToCell converts a field point into a cell of a cols×rows grid.
func (c *Canvas) ToCell(x, y float64, cols, rows int) (int, int) {
	return int(x / c.fieldW * float64(cols)), int(y / c.fieldH * float64(rows))
}

// ToField returns the field point at the centre of a cell.
func (c *Canvas) ToField(col, row, cols, rows int) (float64, float64) {
	return (float64(col) + 0.5) * c.fieldW / float64(cols), (float64(row) + 0.5) * c.fieldH / float64(rows)
}

var (
	styleObstacle = map[string]tcell.Style{
		"red":   tcell.StyleDefault.Foreground(tcell.ColorRed),
		"blue":  tcell.StyleDefault.Foreground(tcell.ColorBlue),
		"green": tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}
	styleBoss       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleEnemy      = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBullet     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBossBullet = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleBubble     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// слои снизу вверх
var layer = map[component.Kind]int{
	component.KindObstacle:   0,
	component.KindBoss:       1,
	component.KindEnemy:      2,
	component.KindBullet:     3,
	component.KindBossBullet: 4,
	component.KindBubble:     5,
}

// Draw paints every placed visual into a cols×rows grid.
func (c *Canvas) Draw(dst Cells, cols, rows int) {
	hs := make([]component.Handle, 0, len(c.items))
	for h, g := range c.items {
		if g.placed {
			hs = append(hs, h)
		}
	}
	sort.Slice(hs, func(i, j int) bool {
		a, b := c.items[hs[i]], c.items[hs[j]]
		if layer[a.kind] != layer[b.kind] {
			return layer[a.kind] < layer[b.kind]
		}
		return hs[i] < hs[j]
	})

	put := func(x, y int, r rune, st tcell.Style) {
		if x >= 0 && x < cols && y >= 0 && y < rows {
			dst.SetContent(x, y, r, nil, st)
		}
	}

	for _, h := range hs {
		g := c.items[h]
		r := g.rect
		cx, cy := c.ToCell(r.X+r.W/2, r.Y+r.H/2, cols, rows)

		switch g.kind {
		case component.KindObstacle, component.KindBoss:
			x0, y0 := c.ToCell(r.X, r.Y, cols, rows)
			x1, y1 := c.ToCell(r.X+r.W, r.Y+r.H, cols, rows)
			ch, st := '▒', styleObstacle[g.tag]
			if g.kind == component.KindBoss {
				ch, st = '█', styleBoss
			}
			for y := y0; y <= max(y0, y1-1); y++ {
				for x := x0; x <= max(x0, x1-1); x++ {
					put(x, y, ch, st)
				}
			}
		case component.KindEnemy:
			put(cx, cy, 'o', styleEnemy)
		case component.KindBullet:
			put(cx, cy, '|', styleBullet)
		case component.KindBossBullet:
			put(cx, cy, '*', styleBossBullet)
		case component.KindBubble:
			x := cx - len([]rune(g.tag))/2
			for i, ch := range []rune(g.tag) {
				put(x+i, cy, ch, styleBubble)
			}
		}
	}
}

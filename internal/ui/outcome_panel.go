// internal/ui/outcome_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-stage-shooter/internal/config"
)

const (
	panelHeight    = 150
	panelMargin    = 5
	animationSpeed = 600.0 // пикселей в секунду
	lineHeight     = 20
	btnWidth       = 150
	btnHeight      = 40
)

// Choice is what the player picked on the outcome panel.
type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceNext
	ChoiceEscape
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect image.Rectangle
	Text string
}

// OutcomePanel выезжает снизу после победы над боссом и предлагает
// перейти к следующей стадии или уйти.
type OutcomePanel struct {
	IsVisible    bool
	Title        string
	Lines        []string
	fontFace     font.Face
	currentY     float64
	targetY      float64
	NextButton   Button
	EscapeButton Button
}

func NewOutcomePanel(face font.Face) *OutcomePanel {
	p := &OutcomePanel{
		fontFace: face,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
	p.layout()
	return p
}

// Show opens the panel with a title and summary lines.
func (p *OutcomePanel) Show(title string, lines ...string) {
	p.Title = title
	p.Lines = lines
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *OutcomePanel) Hide() {
	p.targetY = config.ScreenHeight
}

func (p *OutcomePanel) Update(deltaTime float64) {
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		step := animationSpeed * deltaTime
		if math.Abs(diff) <= step {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += step
		} else {
			p.currentY -= step
		}
		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
		}
	}
	p.layout()
}

func (p *OutcomePanel) panelRect() image.Rectangle {
	return image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)
}

func (p *OutcomePanel) layout() {
	r := p.panelRect()
	p.NextButton = Button{
		Rect: image.Rect(r.Max.X-btnWidth-20, r.Max.Y-btnHeight-20, r.Max.X-20, r.Max.Y-20),
		Text: "Next stage",
	}
	p.EscapeButton = Button{
		Rect: image.Rect(r.Max.X-btnWidth*2-40, r.Max.Y-btnHeight-20, r.Max.X-btnWidth-40, r.Max.Y-20),
		Text: "Escape",
	}
}

// HandleClick maps a click to a choice. A hidden or still moving panel ignores clicks.
func (p *OutcomePanel) HandleClick(x, y int) Choice {
	if !p.IsVisible || p.currentY != p.targetY {
		return ChoiceNone
	}
	pt := image.Pt(x, y)
	switch {
	case pt.In(p.NextButton.Rect):
		p.Hide()
		return ChoiceNext
	case pt.In(p.EscapeButton.Rect):
		p.Hide()
		return ChoiceEscape
	}
	return ChoiceNone
}

func (p *OutcomePanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}
	r := p.panelRect()

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, borderColor, true)

	if p.fontFace == nil {
		return
	}
	y := r.Min.Y + 15 + lineHeight/2
	text.Draw(screen, p.Title, p.fontFace, r.Min.X+15, y, config.TextLightColor)
	for _, l := range p.Lines {
		y += lineHeight
		text.Draw(screen, l, p.fontFace, r.Min.X+15, y, config.TextLightColor)
	}

	p.drawButton(screen, p.EscapeButton, color.RGBA{R: 100, G: 60, B: 60, A: 255})
	p.drawButton(screen, p.NextButton, color.RGBA{R: 60, G: 120, B: 60, A: 255})
}

func (p *OutcomePanel) drawButton(screen *ebiten.Image, b Button, c color.Color) {
	vector.DrawFilledRect(screen, float32(b.Rect.Min.X), float32(b.Rect.Min.Y), float32(btnWidth), float32(btnHeight), c, true)

	textBounds := text.BoundString(p.fontFace, b.Text)
	textX := b.Rect.Min.X + (btnWidth-textBounds.Dx())/2
	textY := b.Rect.Min.Y + (btnHeight-textBounds.Dy())/2 - textBounds.Min.Y
	text.Draw(screen, b.Text, p.fontFace, textX, textY, color.White)
}

// RewardSummary formats the banked rewards line shown after a win.
func RewardSummary(energy int, cards []string) string {
	if len(cards) == 0 {
		return fmt.Sprintf("+%d energy", energy)
	}
	return fmt.Sprintf("+%d energy, cards %v", energy, cards)
}

package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-stage-shooter/internal/component"
)

func TestSpritesLifecycle(t *testing.T) {
	s := NewSprites(nil)

	boss := s.Attach(component.KindBoss, "")
	bubble := s.Attach(component.KindBubble, "red: tap to destroy")
	obstacle := s.Attach(component.KindObstacle, "red")
	assert.Equal(t, 3, s.Len())
	assert.Empty(t, s.ordered(), "unplaced visuals are not drawn")

	for _, h := range []component.Handle{boss, bubble, obstacle} {
		s.Place(h, component.Rect{W: 10, H: 10})
	}
	assert.Equal(t, []component.Handle{obstacle, boss, bubble}, s.ordered())

	s.Release(boss)
	s.Release(boss)
	s.Place(boss, component.Rect{})
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []component.Handle{obstacle, bubble}, s.ordered())
}

func TestToRoman(t *testing.T) {
	assert.Equal(t, "", toRoman(0))
	assert.Equal(t, "IV", toRoman(4))
	assert.Equal(t, "XIV", toRoman(14))
	assert.Equal(t, "XC", toRoman(90))
}

func TestMessageLogExpires(t *testing.T) {
	l := NewMessageLog(2, 3)
	l.Push("a")
	l.Push("b")
	l.Push("c")
	assert.Equal(t, []string{"b", "c"}, l.Lines())

	l.Update(2.5)
	l.Push("d")
	l.Update(1)
	assert.Equal(t, []string{"d"}, l.Lines())
}

func TestIndicatorMath(t *testing.T) {
	assert.Equal(t, 10, filledCells(100, 100))
	assert.Equal(t, 1, filledCells(1, 100))
	assert.Equal(t, 0, filledCells(0, 100))
	assert.Equal(t, 10, filledCells(150, 100))

	assert.Equal(t, 0.5, fillRatio(185, 370))
	assert.Equal(t, 1.0, fillRatio(12, 10))
	assert.Equal(t, 0.0, fillRatio(3, 0))
}

func TestOutcomePanelClicks(t *testing.T) {
	p := NewOutcomePanel(nil)
	assert.Equal(t, ChoiceNone, p.HandleClick(p.NextButton.Rect.Min.X+1, p.NextButton.Rect.Min.Y+1))

	p.Show("Boss defeated!")
	p.Update(0.1)
	assert.Equal(t, ChoiceNone, p.HandleClick(p.NextButton.Rect.Min.X+1, p.NextButton.Rect.Min.Y+1), "still sliding in")

	p.Update(1)
	assert.Equal(t, ChoiceNext, p.HandleClick(p.NextButton.Rect.Min.X+1, p.NextButton.Rect.Min.Y+1))

	p.Update(1)
	assert.False(t, p.IsVisible)

	p.Show("again")
	p.Update(1)
	assert.Equal(t, ChoiceEscape, p.HandleClick(p.EscapeButton.Rect.Min.X+1, p.EscapeButton.Rect.Min.Y+1))
}

func TestRewardSummary(t *testing.T) {
	assert.Equal(t, "+0 energy", RewardSummary(0, nil))
	assert.Equal(t, "+12 energy, cards [1 8]", RewardSummary(12, []string{"1", "8"}))
}

func TestHUDRefresh(t *testing.T) {
	h := NewHUD(nil)
	h.Refresh(HUDData{HP: 40, HPMax: 100, StageLv: 2, Exp: 15, Energy: 7, PendingEnergy: 9})
	assert.Equal(t, "EXP 15  Energy 7 (+9)", h.Summary())

	h.SetBoss(100, 490, true)
	assert.True(t, h.data.HasBoss)
	assert.Equal(t, 40, h.data.HP)
}

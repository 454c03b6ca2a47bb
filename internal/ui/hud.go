package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-stage-shooter/internal/config"
)

// HUDData is the snapshot the HUD is rebuilt from on refresh.
type HUDData struct {
	HP, HPMax     int
	StageLv       int
	Exp           int
	Energy        int
	PendingEnergy int
	BossHP        int
	BossHPMax     int
	HasBoss       bool
}

// HUD рисует здоровье, стадию, опыт и HP босса. Текстовые строки
// пересобираются только по Refresh.
type HUD struct {
	face   font.Face
	health *PlayerHealthIndicator
	stage  *StageIndicator
	boss   *BarIndicator

	data    HUDData
	summary string
}

func NewHUD(face font.Face) *HUD {
	return &HUD{
		face:   face,
		health: NewPlayerHealthIndicator(12, config.ScreenHeight-34),
		stage:  NewStageIndicator(config.ScreenWidth/2, 30),
		boss:   NewBarIndicator(config.ScreenWidth/2-100, 10, 200, 8, config.BossHPColor),
	}
}

func (h *HUD) Refresh(d HUDData) {
	h.data = d
	h.summary = fmt.Sprintf("EXP %d  Energy %d (+%d)", d.Exp, d.Energy, d.PendingEnergy)
}

// Summary returns the text line built by the last Refresh.
func (h *HUD) Summary() string {
	return h.summary
}

// SetBoss обновляет только полосу босса; она меняется каждый кадр.
func (h *HUD) SetBoss(hp, hpMax int, ok bool) {
	h.data.BossHP, h.data.BossHPMax, h.data.HasBoss = hp, hpMax, ok
}

func (h *HUD) Draw(screen *ebiten.Image) {
	d := h.data
	if d.HasBoss {
		h.boss.Draw(screen, d.BossHP, d.BossHPMax)
	}
	h.stage.Draw(screen, h.face, d.StageLv)
	h.health.Draw(screen, h.face, d.HP, d.HPMax)
	if h.face != nil {
		text.Draw(screen, h.summary, h.face, config.ScreenWidth-200, config.ScreenHeight-20, config.TextLightColor)
	}
}

// internal/state/menu_state.go
package state

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-stage-shooter/internal/config"
	"go-stage-shooter/internal/stage"
)

// MenuState — экран между боями: старт (Space/клик) и лечение (R).
type MenuState struct {
	sm    *StateMachine
	world *World
}

func NewMenuState(sm *StateMachine, world *World) *MenuState {
	return &MenuState{sm: sm, world: world}
}

func (m *MenuState) Enter() {
	m.world.RefreshHUD()
}

func (m *MenuState) Update(deltaTime float64) {
	m.world.Update(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		m.world.Profile.Heal()
		m.world.Messages.Push("HP restored")
		m.world.RefreshHUD()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		err := m.world.Start()
		switch {
		case errors.Is(err, stage.ErrHPDepleted):
			// сообщение уже пришло от стадии, остаёмся в меню
		case err != nil:
			m.world.Messages.Push(err.Error())
		default:
			m.sm.SetState(NewGameState(m.sm, m.world))
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	w := m.world
	p := w.Profile

	x := 40
	text.Draw(screen, fmt.Sprintf("Stage %d", p.StageLv), w.Face, x, 200, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("HP %d/%d   EXP %d   Energy %d", p.HP, p.HPMax, p.Exp, p.Energy), w.Face, x, 230, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Cards %v", p.Cards), w.Face, x, 250, config.TextLightColor)
	text.Draw(screen, "Space: start   R: heal", w.Face, x, 300, config.TextLightColor)

	w.Messages.Draw(screen, w.Face, x, config.ScreenHeight-60)
}

func (m *MenuState) Exit() {}

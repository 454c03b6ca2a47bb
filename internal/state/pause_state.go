// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-stage-shooter/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState держит стадию на паузе. Кадры продолжают планироваться,
// поэтому после снятия паузы шаг времени обычный.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	s.previousState.world.Session.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	s.previousState.world.Update(deltaTime)

	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.previousState.pauseButton.IsClicked(x, y)
	}

	if unpause {
		// При выходе из паузы "отжимаем" кнопку в самом игровом состоянии
		s.previousState.pauseButton.TogglePause()
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlay, false)

	face := s.previousState.world.Face
	pauseText := "PAUSED"
	textWidth := font.MeasureString(face, pauseText).Ceil()
	text.Draw(screen, pauseText, face, (config.ScreenWidth-textWidth)/2, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {
	s.previousState.world.Session.SetPaused(false)
}

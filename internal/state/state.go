// internal/state/state.go
package state

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для всех экранов хоста
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		slog.Debug("screen changed", "component", "state", "screen", screenName(newState))
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current возвращает активное состояние
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

func screenName(s State) string {
	switch s.(type) {
	case *MenuState:
		return "menu"
	case *GameState:
		return "game"
	case *PauseState:
		return "pause"
	default:
		return "other"
	}
}

// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-stage-shooter/internal/config"
	"go-stage-shooter/internal/ui"
)

const clickCooldown = 200 * time.Millisecond

// GameState — идущий бой
type GameState struct {
	sm          *StateMachine
	world       *World
	pauseButton *ui.PauseButton
	outcome     *ui.OutcomePanel
}

func NewGameState(sm *StateMachine, world *World) *GameState {
	return &GameState{
		sm:          sm,
		world:       world,
		pauseButton: ui.NewPauseButton(config.ScreenWidth-30, 60, 16, color.RGBA{220, 220, 220, 255}, color.RGBA{120, 200, 120, 255}),
		outcome:     ui.NewOutcomePanel(world.Face),
	}
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	g.world.Update(deltaTime)
	g.outcome.Update(deltaTime)

	switch g.world.takeOutcome() {
	case outcomeDefeat:
		g.world.Profile.LoseStage()
		g.world.RefreshHUD()
		g.sm.SetState(NewMenuState(g.sm, g.world))
		return
	case outcomeBossDefeat:
		gained := g.world.Profile.WinStage()
		g.world.RefreshHUD()
		g.outcome.Show(
			"Boss defeated!",
			ui.RewardSummary(gained, g.world.Profile.CardCategories()),
			fmt.Sprintf("Next: stage %d", g.world.Profile.StageLv),
		)
	}

	if g.outcome.IsVisible {
		g.handleOutcome()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.world.Debug = !g.world.Debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}

	g.movePlayer(deltaTime)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.pauseButton.IsClicked(x, y) {
			if time.Since(g.pauseButton.LastToggleTime) >= clickCooldown {
				g.pause()
			}
			return
		}
		if _, ok := g.world.Session.HandleTap(float64(x), float64(y)); ok {
			g.world.RefreshHUD()
		}
	}
}

// movePlayer: стрелки/WASD, либо правая кнопка мыши — к курсору.
func (g *GameState) movePlayer(deltaTime float64) {
	p := g.world.Player
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		p.MoveToward(float64(x), float64(y), deltaTime)
		return
	}

	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy++
	}
	if dx != 0 || dy != 0 {
		p.MoveToward(p.X+dx*config.ScreenWidth, p.Y+dy*config.ScreenWidth, deltaTime)
	}
}

func (g *GameState) handleOutcome() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	switch g.outcome.HandleClick(x, y) {
	case ui.ChoiceNext:
		if err := g.world.Start(); err != nil {
			g.sm.SetState(NewMenuState(g.sm, g.world))
		}
	case ui.ChoiceEscape:
		g.sm.SetState(NewMenuState(g.sm, g.world))
	}
}

func (g *GameState) pause() {
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)
	g.pauseButton.Draw(screen)
	g.outcome.Draw(screen)

	if g.world.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  live %d", ebiten.ActualTPS(), g.world.Session.Live()), 8, 40)
	}
}

func (g *GameState) Exit() {}

// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-stage-shooter/internal/config"
	"go-stage-shooter/internal/host"
	"go-stage-shooter/internal/logger"
	"go-stage-shooter/internal/state"
	"go-stage-shooter/internal/utils"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := utils.ClampDelta(now.Sub(a.lastUpdateTime))
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	envFile := flag.String("env", ".env", "optional settings file")
	flag.Parse()

	settings, err := config.LoadSettings(*envFile)
	if err != nil {
		log.Fatal(err)
	}
	logger.Init(settings.LogLevel, settings.LogJSON)

	profile, err := loadProfile(settings)
	if err != nil {
		log.Fatal(err)
	}
	defer saveProfile(settings, profile)

	world, err := state.NewWorld(profile, settings.Seed, slog.Default())
	if err != nil {
		log.Fatal(err)
	}
	defer world.Session.Unmount()

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewMenuState(sm, world))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Stage Shooter")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

func loadProfile(s *config.Settings) (*host.Profile, error) {
	if s.ProfilePath == "" {
		return host.NewProfile(s.PlayerHP, s.StageLevel), nil
	}
	return host.LoadProfile(s.ProfilePath, s.PlayerHP, s.StageLevel)
}

func saveProfile(s *config.Settings, p *host.Profile) {
	if s.ProfilePath == "" {
		return
	}
	if err := p.Save(s.ProfilePath); err != nil {
		slog.Error("profile not saved", "error", err)
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"go-stage-shooter/internal/audio"
	"go-stage-shooter/internal/config"
	"go-stage-shooter/internal/host"
	"go-stage-shooter/internal/logger"
	"go-stage-shooter/internal/tui"
)

func main() {
	envFile := flag.String("env", ".env", "optional settings file")
	logFile := flag.String("log", "stage-tui.log", "log file; the terminal is busy drawing")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	settings, err := config.LoadSettings(*envFile)
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	logger.InitTo(f, settings.LogLevel, settings.LogJSON)

	profile, err := loadProfile(settings)
	if err != nil {
		log.Fatal(err)
	}
	defer saveProfile(settings, profile)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	var cues *audio.Cues
	if !*mute {
		cues = audio.New()
	}

	game, err := tui.NewGame(screen, profile, settings.Seed, cues)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	defer game.Close()

	slog.Info("terminal host started", "stage_lv", profile.StageLv, "hp", profile.HP)
	game.Run()
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

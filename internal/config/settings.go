package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings holds the runtime knobs a host reads at startup.
type Settings struct {
	Seed       int64
	LogLevel   string
	LogJSON    bool
	StageLevel int
	PlayerHP   int

	// ProfilePath — файл сохранения профиля; пусто — без сохранения.
	ProfilePath string
}

// LoadSettings reads an optional .env file and then the process environment.
// A missing file is not an error; values already set in the environment win.
func LoadSettings(path string) (*Settings, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}

	s := &Settings{
		LogLevel:    getEnv("SHOOTER_LOG_LEVEL", "info"),
		StageLevel:  DefaultStageLevel,
		PlayerHP:    PlayerDefaultHP,
		ProfilePath: getEnv("SHOOTER_PROFILE", ""),
	}

	var err error
	if s.Seed, err = getInt64("SHOOTER_SEED", 0); err != nil {
		return nil, err
	}
	if s.LogJSON, err = getBool("SHOOTER_LOG_JSON", false); err != nil {
		return nil, err
	}
	lv, err := getInt64("SHOOTER_STAGE_LEVEL", DefaultStageLevel)
	if err != nil {
		return nil, err
	}
	hp, err := getInt64("SHOOTER_PLAYER_HP", PlayerDefaultHP)
	if err != nil {
		return nil, err
	}
	s.StageLevel, s.PlayerHP = int(lv), int(hp)
	if s.StageLevel < 1 {
		s.StageLevel = 1
	}
	return s, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt64(key string, fallback int64) (int64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
	return b, nil
}

// internal/host/storage.go
package host

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// savedProfile — то, что переживает перезапуск. Незабранные награды не сохраняются.
type savedProfile struct {
	HP      int            `json:"hp"`
	HPMax   int            `json:"hp_max"`
	StageLv int            `json:"stage_lv"`
	Exp     int            `json:"exp"`
	Energy  int            `json:"energy"`
	Cards   map[string]int `json:"cards"`
}

// LoadProfile reads a saved profile. A missing file yields a fresh profile
// with the given defaults.
func LoadProfile(path string, hpMax, stageLv int) (*Profile, error) {
	file, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewProfile(hpMax, stageLv), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var saved savedProfile
	if err := json.Unmarshal(file, &saved); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	// Старые сохранения могут не содержать hp_max/stage_lv: берём значения по умолчанию.
	if saved.HPMax <= 0 {
		saved.HPMax = hpMax
	}
	if saved.StageLv < 1 {
		saved.StageLv = stageLv
	}
	p := NewProfile(saved.HPMax, saved.StageLv)
	p.HP = min(max(saved.HP, 0), p.HPMax)
	p.Exp = saved.Exp
	p.Energy = saved.Energy
	for c, n := range saved.Cards {
		p.Cards[c] = n
	}
	p.log.Info("profile loaded", "path", path, "stage_lv", p.StageLv)
	return p, nil
}

// Save writes the banked part of the profile as JSON.
func (p *Profile) Save(path string) error {
	data, err := json.MarshalIndent(savedProfile{
		HP:      p.HP,
		HPMax:   p.HPMax,
		StageLv: p.StageLv,
		Exp:     p.Exp,
		Energy:  p.Energy,
		Cards:   p.Cards,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile file: %w", err)
	}
	return nil
}

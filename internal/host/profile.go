// Package host holds the host-side pieces a stage runs against: the player
// record behind interfaces.StateAccess with its reward policy, the field and
// the player position.
package host

import (
	"log/slog"
	"sort"

	"go-stage-shooter/internal/component"
	"go-stage-shooter/internal/interfaces"
)

// Profile — постоянные данные игрока между стадиями.
// Ядро видит только HP, StageLv и Exp; энергия и карты принадлежат хосту.
type Profile struct {
	HP      int
	HPMax   int
	StageLv int
	Exp     int
	Energy  int
	Cards   map[string]int

	// Награды за препятствия копятся до конца боя.
	Pending []component.Reward

	log *slog.Logger
}

var _ interfaces.StateAccess = (*Profile)(nil)

func NewProfile(hpMax, stageLv int) *Profile {
	if hpMax <= 0 {
		hpMax = 1
	}
	if stageLv < 1 {
		stageLv = 1
	}
	return &Profile{
		HP:      hpMax,
		HPMax:   hpMax,
		StageLv: stageLv,
		Cards:   make(map[string]int),
		log:     slog.With("component", "profile"),
	}
}

func (p *Profile) Read() interfaces.PlayerState {
	return interfaces.PlayerState{HP: p.HP, StageLv: p.StageLv, Exp: p.Exp}
}

// Mutate applies fn to a copy of the core-visible fields and writes it back.
// HP is kept within [0, HPMax].
func (p *Profile) Mutate(fn func(d *interfaces.PlayerState)) {
	d := p.Read()
	fn(&d)

	p.HP = min(max(d.HP, 0), p.HPMax)
	p.StageLv = max(d.StageLv, 1)
	p.Exp = d.Exp
}

// QueueReward откладывает награду за препятствие до конца боя.
func (p *Profile) QueueReward(r component.Reward) {
	p.Pending = append(p.Pending, r)
}

// WinStage banks the pending rewards and moves to the next stage.
// It returns the total energy banked.
func (p *Profile) WinStage() int {
	gained := 0
	for _, r := range p.Pending {
		gained += r.Energy
		p.Cards[r.Cat]++
	}
	p.Energy += gained
	p.Pending = nil
	p.StageLv++

	p.log.Info("stage cleared", "next_stage_lv", p.StageLv, "energy", gained)
	return gained
}

// LoseStage drops the pending rewards and returns how many were lost.
// Banked energy and cards stay.
func (p *Profile) LoseStage() int {
	lost := len(p.Pending)
	p.Pending = nil
	p.log.Info("stage lost", "rewards_dropped", lost)
	return lost
}

// Heal восстанавливает HP до максимума.
func (p *Profile) Heal() {
	p.HP = p.HPMax
}

// PendingEnergy — сумма энергии в отложенных наградах.
func (p *Profile) PendingEnergy() int {
	n := 0
	for _, r := range p.Pending {
		n += r.Energy
	}
	return n
}

// CardCategories возвращает категории карт по порядку.
func (p *Profile) CardCategories() []string {
	cats := make([]string, 0, len(p.Cards))
	for c := range p.Cards {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

package host

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-stage-shooter/internal/component"
	"go-stage-shooter/internal/interfaces"
)

func TestNewProfileDefaults(t *testing.T) {
	p := NewProfile(0, 0)
	assert.Equal(t, 1, p.HPMax)
	assert.Equal(t, 1, p.HP)
	assert.Equal(t, 1, p.StageLv)
}

func TestMutateClampsHP(t *testing.T) {
	p := NewProfile(100, 1)

	p.Mutate(func(d *interfaces.PlayerState) { d.HP -= 130 })
	assert.Equal(t, 0, p.HP)

	p.Mutate(func(d *interfaces.PlayerState) { d.HP = 500; d.Exp += 5 })
	assert.Equal(t, 100, p.HP)
	assert.Equal(t, 5, p.Exp)
	assert.Equal(t, interfaces.PlayerState{HP: 100, StageLv: 1, Exp: 5}, p.Read())
}

func TestWinStageBanksRewards(t *testing.T) {
	p := NewProfile(100, 2)
	p.QueueReward(component.Reward{Energy: 5, Cat: "3"})
	p.QueueReward(component.Reward{Energy: 9, Cat: "3"})
	p.QueueReward(component.Reward{Energy: 7, Cat: "8"})
	assert.Equal(t, 21, p.PendingEnergy())

	gained := p.WinStage()

	assert.Equal(t, 21, gained)
	assert.Equal(t, 21, p.Energy)
	assert.Equal(t, 3, p.StageLv)
	assert.Empty(t, p.Pending)
	assert.Equal(t, map[string]int{"3": 2, "8": 1}, p.Cards)
	assert.Equal(t, []string{"3", "8"}, p.CardCategories())
}

func TestLoseStageDropsOnlyPending(t *testing.T) {
	p := NewProfile(100, 1)
	p.QueueReward(component.Reward{Energy: 6, Cat: "1"})
	p.WinStage()
	p.QueueReward(component.Reward{Energy: 10, Cat: "2"})
	p.QueueReward(component.Reward{Energy: 5, Cat: "4"})

	assert.Equal(t, 2, p.LoseStage())
	assert.Equal(t, 6, p.Energy)
	assert.Equal(t, 2, p.StageLv, "defeat keeps the stage level")
	assert.Empty(t, p.Pending)
	assert.Equal(t, map[string]int{"1": 1}, p.Cards)
}

func TestHeal(t *testing.T) {
	p := NewProfile(80, 1)
	p.Mutate(func(d *interfaces.PlayerState) { d.HP = 0 })
	p.Heal()
	assert.Equal(t, 80, p.HP)
}

package state

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-stage-shooter/internal/config"
	"go-stage-shooter/internal/host"
	"go-stage-shooter/internal/loop"
	"go-stage-shooter/internal/stage"
	"go-stage-shooter/internal/ui"
	"go-stage-shooter/internal/utils"
)

type outcome int

const (
	outcomeNone outcome = iota
	outcomeDefeat
	outcomeBossDefeat
)

// World связывает стадию с профилем и экранными объектами и переживает смену экранов.
type World struct {
	Profile  *host.Profile
	Session  *stage.Session
	Frames   *loop.Manual
	Sprites  *ui.Sprites
	HUD      *ui.HUD
	Messages *ui.MessageLog
	Player   *host.Player
	Face     font.Face
	Debug    bool // F3: оверлей с TPS и числом сущностей

	hudDirty bool
	outcome  outcome
}

// NewWorld mounts a stage session on the desktop host's capabilities.
func NewWorld(profile *host.Profile, seed int64, logger *slog.Logger) (*World, error) {
	face := basicfont.Face7x13
	field := host.Field{W: config.ScreenWidth, H: config.ScreenHeight}
	w := &World{
		Profile:  profile,
		Frames:   loop.NewManual(time.Now),
		Sprites:  ui.NewSprites(face),
		HUD:      ui.NewHUD(face),
		Messages: ui.NewMessageLog(4, 3.5),
		Player:   host.NewPlayer(field, config.PlayerStartX, config.PlayerStartY, config.PlayerMoveSpeed),
		Face:     face,
	}

	s, err := stage.Mount(stage.Options{
		Field:               field,
		PlayerEl:            w.Player,
		Player:              w.Player,
		State:               profile,
		Renderer:            w.Sprites,
		Scheduler:           w.Frames,
		Rng:                 utils.NewPRNGService(seed),
		Logger:              logger,
		OnMessage:           w.Messages.Push,
		OnRequestHudRefresh: func() { w.hudDirty = true },
		OnReward:            profile.QueueReward,
		OnDefeat:            func() { w.outcome = outcomeDefeat },
		OnBossDefeat:        func() { w.outcome = outcomeBossDefeat },
	})
	if err != nil {
		return nil, fmt.Errorf("mount stage: %w", err)
	}
	w.Session = s
	w.RefreshHUD()
	return w, nil
}

// Update прогоняет кадры стадии, состаривает сообщения и обновляет HUD.
func (w *World) Update(deltaTime float64) {
	w.Frames.Pump(time.Now())
	w.Messages.Update(deltaTime)

	w.HUD.SetBoss(w.Session.BossHP())
	if w.hudDirty {
		w.RefreshHUD()
	}
}

func (w *World) RefreshHUD() {
	p := w.Profile
	w.HUD.Refresh(ui.HUDData{
		HP:            p.HP,
		HPMax:         p.HPMax,
		StageLv:       p.StageLv,
		Exp:           p.Exp,
		Energy:        p.Energy,
		PendingEnergy: p.PendingEnergy(),
	})
	w.HUD.SetBoss(w.Session.BossHP())
	w.hudDirty = false
}

// takeOutcome возвращает и сбрасывает исход последнего кадра.
func (w *World) takeOutcome() outcome {
	o := w.outcome
	w.outcome = outcomeNone
	return o
}

// Start начинает стадию с начальной позиции игрока.
func (w *World) Start() error {
	w.Player.Reset()
	w.outcome = outcomeNone
	err := w.Session.StartStage()
	w.RefreshHUD()
	return err
}

func (w *World) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	w.Sprites.Draw(screen)

	vector.DrawFilledCircle(screen, float32(w.Player.X), float32(w.Player.Y), config.PlayerHitRadius, config.PlayerColor, true)

	w.HUD.Draw(screen)
	w.Messages.Draw(screen, w.Face, 12, config.ScreenHeight-60)
}

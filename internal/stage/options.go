package stage

import (
	"fmt"
	"log/slog"

	"go-stage-shooter/internal/component"
	"go-stage-shooter/internal/interfaces"
	"go-stage-shooter/internal/utils"
)

// Options is the capability set a host hands to Mount. Field, Player, State and
// Scheduler are required; every callback may be nil.
type Options struct {
	Field     interfaces.Field
	PlayerEl  any // непрозрачный визуал игрока, ядро его не трогает
	Player    interfaces.PlayerTracker
	State     interfaces.StateAccess
	Renderer  interfaces.Renderer
	Scheduler interfaces.FrameScheduler
	Rng       *utils.PRNGService
	Logger    *slog.Logger

	OnMessage           func(text string)
	OnRequestHudRefresh func()
	OnReward            func(r component.Reward)
	OnDefeat            func()
	OnBossDefeat        func()
}

func (o *Options) validate() error {
	switch {
	case o.Field == nil:
		return fmt.Errorf("%w: field", ErrMissingCapability)
	case o.Player == nil:
		return fmt.Errorf("%w: player position", ErrMissingCapability)
	case o.State == nil:
		return fmt.Errorf("%w: state access", ErrMissingCapability)
	case o.Scheduler == nil:
		return fmt.Errorf("%w: frame scheduler", ErrMissingCapability)
	}
	return nil
}

// withDefaults fills optional pieces so the rest of the session never nil-checks.
func (o Options) withDefaults() Options {
	if o.Renderer == nil {
		o.Renderer = headless{}
	}
	if o.Rng == nil {
		o.Rng = utils.NewPRNGService(0)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.OnMessage == nil {
		o.OnMessage = func(string) {}
	}
	if o.OnRequestHudRefresh == nil {
		o.OnRequestHudRefresh = func() {}
	}
	if o.OnReward == nil {
		o.OnReward = func(component.Reward) {}
	}
	if o.OnDefeat == nil {
		o.OnDefeat = func() {}
	}
	if o.OnBossDefeat == nil {
		o.OnBossDefeat = func() {}
	}
	return o
}

// headless is the renderer used when the host draws nothing.
type headless struct{}

func (headless) Attach(component.Kind, string) component.Handle { return 0 }
func (headless) Place(component.Handle, component.Rect) {}
func (headless) Release(component.Handle) {}

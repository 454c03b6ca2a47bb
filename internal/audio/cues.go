// Package audio plays short procedural tones for stage events.
package audio

import (
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"golang.org/x/time/rate"

	"go-stage-shooter/internal/event"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq     float64
	duration time.Duration
}

// cueTones: один тон на тип события.
var cueTones = map[event.EventType]tone{
	event.StageStarted:      {freq: 523, duration: 120 * time.Millisecond},
	event.EnemyDestroyed:    {freq: 880, duration: 50 * time.Millisecond},
	event.BossDamaged:       {freq: 440, duration: 15 * time.Millisecond},
	event.PlayerHit:         {freq: 196, duration: 90 * time.Millisecond},
	event.ObstacleDestroyed: {freq: 1320, duration: 70 * time.Millisecond},
	event.BossDefeated:      {freq: 660, duration: 350 * time.Millisecond},
	event.PlayerDefeated:    {freq: 110, duration: 450 * time.Millisecond},
	event.StageRefused:      {freq: 150, duration: 150 * time.Millisecond},
}

// Исходы боя звучат всегда, остальное режется лимитером.
var alwaysPlay = map[event.EventType]bool{
	event.BossDefeated:   true,
	event.PlayerDefeated: true,
}

// Cues listens to a stage's event bus and plays a tone per event. Frequent
// cues (kills, hits) are rate limited so a busy tick doesn't stack tones.
type Cues struct {
	play    func(s beep.Streamer)
	limiter *rate.Limiter
	now     func() time.Time
	enabled bool
	log     *slog.Logger
}

func newLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(40*time.Millisecond), 4)
}

var _ event.Listener = (*Cues)(nil)

// New initialises the speaker. Without an audio device the cues stay silent.
func New() *Cues {
	c := &Cues{play: func(s beep.Streamer) { speaker.Play(s) }, limiter: newLimiter(), now: time.Now, log: slog.With("component", "audio")}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		c.log.Warn("audio disabled", "error", err)
		return c
	}
	c.enabled = true
	return c
}

// NewWithPlayer отдаёт потоки в play вместо динамика.
func NewWithPlayer(play func(s beep.Streamer)) *Cues {
	return &Cues{play: play, limiter: newLimiter(), now: time.Now, enabled: true, log: slog.With("component", "audio")}
}

// Subscribe подписывает звуки на все события, у которых есть тон.
func (c *Cues) Subscribe(d *event.Dispatcher) {
	for t := range cueTones {
		d.Subscribe(t, c)
	}
}

func (c *Cues) OnEvent(e event.Event) {
	if !c.enabled {
		return
	}
	t, ok := cueTones[e.Type]
	if !ok {
		return
	}
	if !alwaysPlay[e.Type] && !c.limiter.AllowN(c.now(), 1) {
		return
	}
	s, err := Tone(t.freq, t.duration)
	if err != nil {
		c.log.Debug("tone skipped", "event", e.Type, "error", err)
		return
	}
	c.play(s)
}

// Close закрывает динамик, если его открыл New.
func (c *Cues) Close() {
	if c.enabled {
		speaker.Close()
		c.enabled = false
	}
}

// Tone returns a sine tone of the given frequency and length.
func Tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(d), sine), nil
}

package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-stage-shooter/internal/audio"
	"go-stage-shooter/internal/config"
	"go-stage-shooter/internal/host"
	"go-stage-shooter/internal/loop"
	"go-stage-shooter/internal/stage"
	"go-stage-shooter/internal/utils"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	moveStep      = 16.0                  // единиц поля на нажатие
	maxMessages   = 3
	statusRows    = 2
)

type mode int

const (
	modeMenu mode = iota
	modeFight
	modeWon
)

type outcome int

const (
	outcomeNone outcome = iota
	outcomeDefeat
	outcomeBossDefeat
)

// Game runs the stage on a tcell screen: one goroutine polls input, the main
// loop pumps frames on a ticker and redraws.
type Game struct {
	screen  tcell.Screen
	frames  *loop.Manual
	session *stage.Session
	profile *host.Profile
	player  *host.Player
	canvas  *Canvas
	cues    *audio.Cues
	log     *slog.Logger

	mode     mode
	outcome  outcome
	messages []string
}

// NewGame mounts a stage on an initialised screen. cues may be nil.
func NewGame(screen tcell.Screen, profile *host.Profile, seed int64, cues *audio.Cues) (*Game, error) {
	field := host.Field{W: config.ScreenWidth, H: config.ScreenHeight}
	g := &Game{
		screen:  screen,
		frames:  loop.NewManual(time.Now),
		profile: profile,
		player:  host.NewPlayer(field, config.PlayerStartX, config.PlayerStartY, config.PlayerMoveSpeed),
		canvas:  NewCanvas(field.W, field.H),
		cues:    cues,
		log:     slog.With("component", "tui"),
	}

	s, err := stage.Mount(stage.Options{
		Field:        field,
		PlayerEl:     g.player,
		Player:       g.player,
		State:        profile,
		Renderer:     g.canvas,
		Scheduler:    g.frames,
		Rng:          utils.NewPRNGService(seed),
		OnMessage:    g.pushMessage,
		OnReward:     profile.QueueReward,
		OnDefeat:     func() { g.outcome = outcomeDefeat },
		OnBossDefeat: func() { g.outcome = outcomeBossDefeat },
	})
	if err != nil {
		return nil, fmt.Errorf("mount stage: %w", err)
	}
	g.session = s
	if cues != nil {
		cues.Subscribe(s.Events())
	}
	screen.EnableMouse()
	return g, nil
}

func (g *Game) pushMessage(s string) {
	g.messages = append(g.messages, s)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

// fieldSize — сетка под поле; нижние строки под статус.
func (g *Game) fieldSize() (int, int) {
	cols, rows := g.screen.Size()
	return cols, max(1, rows-statusRows-maxMessages)
}

func (g *Game) start() {
	g.player.Reset()
	g.outcome = outcomeNone
	err := g.session.StartStage()
	switch {
	case errors.Is(err, stage.ErrHPDepleted):
		g.mode = modeMenu
	case err != nil:
		g.pushMessage(err.Error())
		g.mode = modeMenu
	default:
		g.mode = modeFight
	}
}

// HandleEvent applies one input event and reports whether the game keeps running.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		g.handleKey(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 && g.mode == modeFight {
			cols, rows := g.fieldSize()
			x, y := ev.Position()
			if y < rows {
				fx, fy := g.canvas.ToField(x, y, cols, rows)
				g.session.HandleTap(fx, fy)
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) handleKey(ev *tcell.EventKey) {
	r := ev.Rune()
	if ev.Key() != tcell.KeyRune {
		r = 0
	}

	switch g.mode {
	case modeMenu:
		switch {
		case ev.Key() == tcell.KeyEnter || r == ' ':
			g.start()
		case r == 'r':
			g.profile.Heal()
			g.pushMessage("HP restored")
		}
	case modeWon:
		switch {
		case ev.Key() == tcell.KeyEnter || r == 'n':
			g.start()
		case ev.Key() == tcell.KeyEscape || r == 'e':
			g.mode = modeMenu
		}
	case modeFight:
		switch {
		case r == 'p' || ev.Key() == tcell.KeyEscape:
			g.session.SetPaused(!g.session.IsPaused())
		case ev.Key() == tcell.KeyLeft || r == 'h':
			g.player.Nudge(-moveStep, 0)
		case ev.Key() == tcell.KeyRight || r == 'l':
			g.player.Nudge(moveStep, 0)
		case ev.Key() == tcell.KeyUp || r == 'k':
			g.player.Nudge(0, -moveStep)
		case ev.Key() == tcell.KeyDown || r == 'j':
			g.player.Nudge(0, moveStep)
		}
	}
}

// Tick pumps the stage frames due at now and applies the fight outcome.
func (g *Game) Tick(now time.Time) {
	g.frames.Pump(now)

	switch g.outcome {
	case outcomeDefeat:
		g.profile.LoseStage()
		g.mode = modeMenu
	case outcomeBossDefeat:
		gained := g.profile.WinStage()
		g.pushMessage(fmt.Sprintf("+%d energy banked. Enter: stage %d, e: escape", gained, g.profile.StageLv))
		g.mode = modeWon
	}
	g.outcome = outcomeNone
}

func (g *Game) statusLine() string {
	p := g.profile
	line := fmt.Sprintf("HP %d/%d  Stage %d  EXP %d  Energy %d (+%d)", p.HP, p.HPMax, p.StageLv, p.Exp, p.Energy, p.PendingEnergy())
	if hp, hpMax, ok := g.session.BossHP(); ok {
		line += fmt.Sprintf("  Boss %d/%d", hp, hpMax)
	}
	if g.session.IsPaused() {
		line += "  [PAUSED]"
	}
	return line
}

func (g *Game) hint() string {
	switch g.mode {
	case modeMenu:
		return "Space: start  r: heal  q: quit"
	case modeWon:
		return "Enter: next stage  e: escape  q: quit"
	default:
		return "arrows/hjkl: move  click: tap obstacle  p: pause  q: quit"
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func (g *Game) Draw() {
	g.screen.Clear()
	cols, rows := g.fieldSize()

	g.canvas.Draw(g.screen, cols, rows)
	if g.mode == modeFight {
		px, py := g.canvas.ToCell(g.player.X, g.player.Y, cols, rows)
		g.screen.SetContent(px, min(py, rows-1), 'A', nil, tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true))
	}

	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	drawText(g.screen, 0, rows, g.statusLine(), text.Reverse(true))
	drawText(g.screen, 0, rows+1, g.hint(), text)
	for i, m := range g.messages {
		drawText(g.screen, 0, rows+statusRows+i, m, text)
	}
	g.screen.Show()
}

// Run blocks until the player quits.
func (g *Game) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go g.pollEvents(eventChan, done)

	g.Draw()
	for {
		select {
		case ev := <-eventChan:
			if !g.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			g.Tick(now)
			g.Draw()
		}
	}
}

// pollEvents перекладывает события экрана в канал, пока экран жив и Run не вышел.
func (g *Game) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return // экран закрыт
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Close unmounts the stage and releases audio. The caller finalises the screen.
func (g *Game) Close() {
	g.session.Unmount()
	if g.cues != nil {
		g.cues.Close()
	}
	g.log.Info("terminal host closed")
}

package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong/internal/audio"
	"github.com/diegok/pong/internal/config"
	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/sched"
	"github.com/diegok/pong/internal/ui"
)

const (
	frameInterval = 16 * time.Millisecond // ~60fps
	holdInterval  = 25 * time.Millisecond
)

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg      *config.Config
	log      *log.Logger
	logFile  *os.File
	screen   *ui.Screen
	renderer *ui.Renderer
	loop     *sched.Loop
	game     *game.Game
	session  *session
	sound    *audio.Player
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

// Run is the main entry point for the application.
// It initializes the screen, sets up signal handling, and runs the game
// until the player quits or the process is interrupted.
func (a *App) Run() error {
	logger, logFile, err := newLogger(a.cfg.LogFile, a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log, a.logFile = logger, logFile
	defer a.cleanup()

	// Game works without sound
	if err := audio.Init(); err != nil {
		a.log.Warn("audio unavailable", "err", err)
	}

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s := sched.New()
	a.loop = sched.NewLoop(s)
	a.setup(s, cancel)

	go a.pollEvents()

	a.log.Info("pong ready", "width", a.cfg.Width, "height", a.cfg.Height, "config", a.cfg.ConfigFile)
	err = a.loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// setup creates the game on s and registers the frontend tasks.
func (a *App) setup(s *sched.Scheduler, quit func()) {
	a.game = game.New(a.cfg.Settings(), s, a.log.WithPrefix("game"))

	a.sound = audio.NewPlayer(a.cfg.Sound)
	a.sound.Bind(a.game.Options())
	a.game.Subscribe(a.sound.Handle)

	a.session = newSession(a.game, s, func() ui.Layout {
		return a.renderer.Layout(a.game.Field())
	}, quit, a.log.WithPrefix("input"))

	s.Every(constant(frameInterval), a.render).Start()
	s.Every(constant(holdInterval), a.session.expireHolds).Start()
}

func constant(d time.Duration) func() time.Duration {
	return func() time.Duration { return d }
}

// pollEvents forwards terminal events to the loop goroutine. It returns
// when the screen is finalized or the loop stops.
func (a *App) pollEvents() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if err := a.loop.Post(func() { a.handleEvent(ev) }); err != nil {
			return
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) {
	if _, ok := ev.(*tcell.EventResize); ok {
		a.screen.Sync()
		return
	}
	a.session.handleEvent(ev)
}

func (a *App) render() {
	a.renderer.RenderGame(a.game.Snapshot())
}

// cleanup releases all resources held by the app.
func (a *App) cleanup() {
	if a.game != nil {
		a.game.Close()
		p := a.game.Player(game.Left)
		q := a.game.Player(game.Right)
		a.log.Info("pong exiting", "left", p.Points, "right", q.Points)
	}

	audio.Close()

	// Finalize screen
	if a.screen != nil {
		a.screen.Fini()
	}

	if a.logFile != nil {
		a.logFile.Close()
	}
}

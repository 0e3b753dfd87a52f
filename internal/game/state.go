package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/diegok/pong/internal/sched"
)

// Constants for game state management
const (
	DefaultWidth  = 600.0
	DefaultHeight = 360.0
	MoveIncrement = 2.0  // ball displacement per axis and tick on serve
	InitialSpeed  = 60.0 // ticks per second
	Acceleration  = 1.05 // speed factor per paddle hit
	GoalDelay     = 500 * time.Millisecond
)

// Status is the state of a match.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusRunning:
		return "Running"
	case StatusPaused:
		return "Paused"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Settings are the tunables of a game. The zero value of any field means
// its default.
type Settings struct {
	Width        float64
	Height       float64
	PaddleLength float64
	BallSpeed    float64 // initial ball ticks per second
	PaddleSpeed  float64 // initial paddle ticks per second
	Acceleration float64
	GoalDelay    time.Duration
	SoundOn      bool
	AnglePaddle  bool
	Seed         int64 // 0 seeds from the clock
}

// DefaultSettings returns the settings of a standard game.
func DefaultSettings() Settings {
	return Settings{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		PaddleLength: InitialPaddleLength,
		BallSpeed:    InitialSpeed,
		PaddleSpeed:  InitialSpeed,
		Acceleration: Acceleration,
		GoalDelay:    GoalDelay,
		SoundOn:      false,
		AnglePaddle:  true,
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.Width <= 0 {
		s.Width = d.Width
	}
	if s.Height <= 0 {
		s.Height = d.Height
	}
	if s.PaddleLength <= 0 {
		s.PaddleLength = d.PaddleLength
	}
	if s.BallSpeed <= 0 {
		s.BallSpeed = d.BallSpeed
	}
	if s.PaddleSpeed <= 0 {
		s.PaddleSpeed = d.PaddleSpeed
	}
	if s.Acceleration <= 0 {
		s.Acceleration = d.Acceleration
	}
	if s.GoalDelay <= 0 {
		s.GoalDelay = d.GoalDelay
	}
	return s
}

// Game owns the ball, both paddles and both players, and runs them on a
// scheduler. All methods must be called from the goroutine that advances
// the scheduler.
type Game struct {
	settings Settings
	field    Playfield
	ball     *Ball
	paddles  [2]*Paddle
	players  [2]*Player
	options  *Options

	status      Status
	goalPending bool
	ballSpeed   float64
	paddleSpeed float64

	sched      *sched.Scheduler
	ballTask   *sched.Task
	paddleTask *sched.Task
	goalTask   *sched.Task

	listeners  []Listener
	tickEvents []Event

	rng *rand.Rand
	log *log.Logger
}

// New creates an idle game on s. The paddle task starts right away so the
// paddles can be moved before the first serve. A nil logger discards logs.
func New(settings Settings, s *sched.Scheduler, logger *log.Logger) *Game {
	settings = settings.withDefaults()
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	field := Playfield{Width: settings.Width, Height: settings.Height}
	g := &Game{
		settings:    settings,
		field:       field,
		ball:        NewBall(field.Width/2, field.Height/2),
		options:     NewOptions(settings.SoundOn, settings.AnglePaddle),
		status:      StatusIdle,
		ballSpeed:   settings.BallSpeed,
		paddleSpeed: settings.PaddleSpeed,
		sched:       s,
		rng:         rand.New(rand.NewSource(seed)),
		log:         logger,
	}
	g.paddles[Left] = NewPaddle(Left, field, settings.PaddleLength)
	g.paddles[Right] = NewPaddle(Right, field, settings.PaddleLength)
	g.players[Left] = NewPlayer(Left.String())
	g.players[Right] = NewPlayer(Right.String())

	g.ballTask = s.Every(func() time.Duration { return sched.Rate(g.ballSpeed) }, func() { g.Tick() })
	g.paddleTask = s.Every(func() time.Duration { return sched.Rate(g.paddleSpeed) }, g.movePaddles)
	g.paddleTask.Start()

	g.options.OnChange(func(o *Options) {
		g.log.Info("options changed", "sound", o.SoundOn(), "anglePaddle", o.AnglePaddle())
	})

	return g
}

// Subscribe registers fn for simulation events.
func (g *Game) Subscribe(fn Listener) {
	g.listeners = append(g.listeners, fn)
}

func (g *Game) emit(e Event) {
	g.tickEvents = append(g.tickEvents, e)
	for _, fn := range g.listeners {
		fn(e)
	}
}

// Start begins a new match with fresh players and a random serve. It does
// nothing while a match is in progress, paused or not.
func (g *Game) Start() {
	if g.status != StatusIdle {
		return
	}

	g.players[Left] = NewPlayer(Left.String())
	g.players[Right] = NewPlayer(Right.String())
	g.resetSpeeds()
	g.serve(Side(g.rng.Intn(2)))
	g.ball.Visible = true

	g.status = StatusRunning
	g.ballTask.Start()

	g.log.Info("game started", "ballX", g.ball.X, "ballY", g.ball.Y)
}

// Stop ends the match. A pending goal resume is abandoned.
func (g *Game) Stop() {
	g.ballTask.Stop()
	g.cancelGoalPause()
	g.ball.Visible = false
	if g.status != StatusIdle {
		g.log.Info("game stopped",
			"left", g.players[Left].Points,
			"right", g.players[Right].Points)
	}
	g.status = StatusIdle
}

// Pause halts the ball. Paddles keep moving.
func (g *Game) Pause() {
	if g.status != StatusRunning {
		return
	}
	g.status = StatusPaused
	g.ballTask.Stop()
	g.log.Info("game paused")
}

// Resume restarts the ball at its current rate. During a goal pause the
// ball waits for the pending resume instead.
func (g *Game) Resume() {
	if g.status != StatusPaused {
		return
	}
	g.status = StatusRunning
	if !g.goalPending {
		g.ballTask.Start()
	}
	g.log.Info("game resumed", "ballSpeed", g.ballSpeed)
}

// TogglePause pauses a running match or resumes a paused one.
func (g *Game) TogglePause() {
	switch g.status {
	case StatusRunning:
		g.Pause()
	case StatusPaused:
		g.Resume()
	}
}

// SetPaddleHeld records whether the movement key for side and dir is down.
// The paddle moves on the next paddle ticks while the flag is set.
func (g *Game) SetPaddleHeld(side Side, dir Direction, held bool) {
	if p := g.Paddle(side); p != nil {
		p.SetHeld(dir, held)
	}
}

// DragPaddle moves a paddle's top edge directly, as a mouse drag does.
func (g *Game) DragPaddle(side Side, top float64) {
	if p := g.Paddle(side); p != nil {
		p.MoveTo(top)
	}
}

// SetOption changes one of the in-game toggles by name, as accepted by
// ParseOptionName.
func (g *Game) SetOption(name string, on bool) error {
	opt, err := ParseOptionName(name)
	if err != nil {
		return err
	}
	return g.options.Set(opt, on)
}

// ToggleOption flips one of the in-game toggles by name.
func (g *Game) ToggleOption(name string) error {
	opt, err := ParseOptionName(name)
	if err != nil {
		return err
	}
	return g.options.Toggle(opt)
}

// Close stops every task the game owns, the paddle task included.
func (g *Game) Close() {
	g.Stop()
	g.paddleTask.Stop()
}

func (g *Game) Options() *Options { return g.options }
func (g *Game) Status() Status { return g.status }
func (g *Game) Ball() *Ball { return g.ball }
func (g *Game) Field() Playfield { return g.field }
func (g *Game) BallSpeed() float64 { return g.ballSpeed }
func (g *Game) PaddleSpeed() float64 { return g.paddleSpeed }
func (g *Game) GoalPending() bool { return g.goalPending }
func (g *Game) Settings() Settings { return g.settings }

// Paddle returns the paddle of side, or nil for an unknown side.
func (g *Game) Paddle(side Side) *Paddle {
	if side != Left && side != Right {
		return nil
	}
	return g.paddles[side]
}

// Player returns the player of side, or nil for an unknown side.
func (g *Game) Player(side Side) *Player {
	if side != Left && side != Right {
		return nil
	}
	return g.players[side]
}

func (g *Game) resetSpeeds() {
	g.ballSpeed = g.settings.BallSpeed
	g.paddleSpeed = g.settings.PaddleSpeed
}

// serve puts the ball just inside the edge of side, heading into the field,
// at a random height and vertical direction.
func (g *Game) serve(side Side) {
	x := 2 * g.ball.Radius
	if side == Right {
		x = g.field.Width - 2*g.ball.Radius
	}
	y := g.rng.Float64() * g.field.Height
	down := g.rng.Intn(2) == 0
	g.ball.Serve(x, y, side == Left, down, MoveIncrement)
}

// startGoalPause hides the ball and schedules its return. The scheduler
// keeps running, so paddles and input are unaffected.
func (g *Game) startGoalPause() {
	g.ballTask.Stop()
	g.ball.Visible = false
	g.cancelGoalPause()
	g.goalPending = true
	g.goalTask = g.sched.After(g.settings.GoalDelay, g.endGoalPause)
}

func (g *Game) endGoalPause() {
	g.goalPending = false
	g.goalTask = nil
	g.ball.Visible = true
	if g.status == StatusRunning {
		g.ballTask.Start()
	}
}

func (g *Game) cancelGoalPause() {
	if g.goalTask != nil {
		g.goalTask.Stop()
		g.goalTask = nil
	}
	g.goalPending = false
}

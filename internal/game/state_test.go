package game

import (
	"errors"
	"testing"
	"time"

	"github.com/diegok/pong/internal/sched"
)

func newTestGame(t *testing.T) (*Game, *sched.Scheduler) {
	t.Helper()
	s := sched.New()
	settings := DefaultSettings()
	settings.Seed = 42
	return New(settings, s, nil), s
}

func TestNew_StartsIdle(t *testing.T) {
	g, s := newTestGame(t)

	if g.Status() != StatusIdle {
		t.Errorf("expected Idle, got %v", g.Status())
	}
	if g.Ball().Visible {
		t.Error("ball should be hidden before the first start")
	}
	if g.BallSpeed() != InitialSpeed || g.PaddleSpeed() != InitialSpeed {
		t.Errorf("expected initial speeds %f, got %f/%f", InitialSpeed, g.BallSpeed(), g.PaddleSpeed())
	}
	if s.Pending() != 1 {
		t.Errorf("expected only the paddle task queued, got %d tasks", s.Pending())
	}
}

func TestSettings_ZeroValuesUseDefaults(t *testing.T) {
	g := New(Settings{Seed: 1}, sched.New(), nil)

	got := g.Settings()
	want := DefaultSettings()
	want.Seed = 1
	want.AnglePaddle = false // booleans are taken as given

	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestStart(t *testing.T) {
	g, _ := newTestGame(t)

	g.Start()

	if g.Status() != StatusRunning {
		t.Fatalf("expected Running, got %v", g.Status())
	}
	ball := g.Ball()
	if !ball.Visible {
		t.Error("ball should be visible after start")
	}
	if ball.X != 2*BallRadius && ball.X != DefaultWidth-2*BallRadius {
		t.Errorf("expected ball at one of the side edges, got X=%f", ball.X)
	}
	if ball.X < DefaultWidth/2 && ball.VX != MoveIncrement {
		t.Errorf("ball served from the left should head right, VX=%f", ball.VX)
	}
	if ball.X > DefaultWidth/2 && ball.VX != -MoveIncrement {
		t.Errorf("ball served from the right should head left, VX=%f", ball.VX)
	}
	if ball.Y < 0 || ball.Y >= DefaultHeight {
		t.Errorf("expected Y in [0,%f), got %f", DefaultHeight, ball.Y)
	}
	if ball.VY != MoveIncrement && ball.VY != -MoveIncrement {
		t.Errorf("expected VY=±%f, got %f", MoveIncrement, ball.VY)
	}
	for _, side := range []Side{Left, Right} {
		if g.Player(side).Points != 0 {
			t.Errorf("expected %v to start with 0 points", side)
		}
	}
}

func TestStart_BothSidesServe(t *testing.T) {
	seen := map[float64]bool{}
	for seed := int64(1); seed <= 32; seed++ {
		settings := DefaultSettings()
		settings.Seed = seed
		g := New(settings, sched.New(), nil)
		g.Start()
		seen[g.Ball().VX] = true
	}

	if !seen[MoveIncrement] || !seen[-MoveIncrement] {
		t.Errorf("expected serves toward both sides over 32 seeds, got %v", seen)
	}
}

func TestStart_WhileRunningIsNoop(t *testing.T) {
	g, _ := newTestGame(t)
	g.Start()

	g.Player(Left).Points = 3
	g.Player(Right).Points = 5
	g.Ball().X, g.Ball().Y = 123, 77

	g.Start()

	if g.Player(Left).Points != 3 || g.Player(Right).Points != 5 {
		t.Errorf("scores were reset: %d-%d", g.Player(Left).Points, g.Player(Right).Points)
	}
	if g.Ball().X != 123 || g.Ball().Y != 77 {
		t.Errorf("ball was moved to (%f,%f)", g.Ball().X, g.Ball().Y)
	}

	g.Pause()
	g.Start()
	if g.Status() != StatusPaused || g.Player(Right).Points != 5 {
		t.Error("start while paused should do nothing")
	}
}

func TestStart_AfterStopResetsScores(t *testing.T) {
	g, _ := newTestGame(t)
	g.Start()
	g.Player(Left).Points = 4

	g.Stop()
	g.Start()

	if g.Player(Left).Points != 0 {
		t.Errorf("expected scores reset on a new game, got %d", g.Player(Left).Points)
	}
}

func TestBallMovesOnSchedule(t *testing.T) {
	g, s := newTestGame(t)
	g.Start()
	x := g.Ball().X

	s.Advance(sched.Rate(InitialSpeed) * 10)

	moved := g.Ball().X - x
	if moved != 10*g.Ball().VX {
		t.Errorf("expected 10 ball ticks (%f), ball moved %f", 10*g.Ball().VX, moved)
	}
}

func TestStop(t *testing.T) {
	g, s := newTestGame(t)
	g.Start()

	g.Stop()

	if g.Status() != StatusIdle {
		t.Errorf("expected Idle, got %v", g.Status())
	}
	if g.Ball().Visible {
		t.Error("ball should be hidden after stop")
	}

	x, y := g.Ball().X, g.Ball().Y
	s.Advance(time.Second)
	if g.Ball().X != x || g.Ball().Y != y {
		t.Error("ball moved after stop")
	}

	// Stop always succeeds, even when idle.
	g.Stop()
	if g.Status() != StatusIdle {
		t.Errorf("expected Idle, got %v", g.Status())
	}
}

func TestPauseResume(t *testing.T) {
	g, s := newTestGame(t)
	g.Start()

	g.Pause()
	if g.Status() != StatusPaused {
		t.Fatalf("expected Paused, got %v", g.Status())
	}

	x := g.Ball().X
	s.Advance(time.Second)
	if g.Ball().X != x {
		t.Error("ball moved while paused")
	}

	g.Resume()
	if g.Status() != StatusRunning {
		t.Fatalf("expected Running, got %v", g.Status())
	}
	s.Advance(sched.Rate(InitialSpeed) * 2)
	if g.Ball().X == x {
		t.Error("ball did not move after resume")
	}
}

func TestPause_PaddlesKeepMoving(t *testing.T) {
	g, s := newTestGame(t)
	g.Start()
	g.Pause()

	y := g.Paddle(Left).Y
	g.SetPaddleHeld(Left, DirUp, true)
	s.Advance(sched.Rate(InitialSpeed) * 5)

	if g.Paddle(Left).Y != y-5*PaddleStep {
		t.Errorf("expected paddle at %f, got %f", y-5*PaddleStep, g.Paddle(Left).Y)
	}
}

func TestPauseResume_Guards(t *testing.T) {
	g, _ := newTestGame(t)

	g.Pause()
	if g.Status() != StatusIdle {
		t.Errorf("pause while idle changed status to %v", g.Status())
	}
	g.Resume()
	if g.Status() != StatusIdle {
		t.Errorf("resume while idle changed status to %v", g.Status())
	}

	g.Start()
	g.Resume()
	if g.Status() != StatusRunning {
		t.Errorf("resume while running changed status to %v", g.Status())
	}

	g.Pause()
	g.Pause()
	if g.Status() != StatusPaused {
		t.Errorf("second pause changed status to %v", g.Status())
	}
}

func TestTogglePause(t *testing.T) {
	g, _ := newTestGame(t)

	g.TogglePause()
	if g.Status() != StatusIdle {
		t.Errorf("toggle while idle changed status to %v", g.Status())
	}

	g.Start()
	g.TogglePause()
	if g.Status() != StatusPaused {
		t.Errorf("expected Paused, got %v", g.Status())
	}
	g.TogglePause()
	if g.Status() != StatusRunning {
		t.Errorf("expected Running, got %v", g.Status())
	}
}

func TestStop_ClearsPause(t *testing.T) {
	g, _ := newTestGame(t)
	g.Start()
	g.Pause()

	g.Stop()

	if g.Status() != StatusIdle {
		t.Errorf("expected Idle, got %v", g.Status())
	}
}

// scoreRight drives the ball out through the left wall.
func scoreRight(t *testing.T, g *Game) {
	t.Helper()
	g.Ball().X = -BallRadius - 1
	g.Ball().Y = 100
	g.Ball().VX = -MoveIncrement
	g.Ball().VY = MoveIncrement

	events := g.Tick()
	if len(events) == 0 || events[len(events)-1].Kind != EventGoal {
		t.Fatalf("expected a goal, got %v", events)
	}
}

func TestGoalPause(t *testing.T) {
	g, s := newTestGame(t)
	g.Start()
	scoreRight(t, g)

	if !g.GoalPending() {
		t.Fatal("expected goal pause after a goal")
	}
	if g.Ball().Visible {
		t.Error("ball should be hidden during goal pause")
	}
	if g.Status() != StatusRunning {
		t.Errorf("goal pause should not change status, got %v", g.Status())
	}

	x, y := g.Ball().X, g.Ball().Y
	s.Advance(GoalDelay - time.Millisecond)
	if g.Ball().X != x || g.Ball().Y != y {
		t.Error("ball moved during goal pause")
	}
	if g.Tick() != nil {
		t.Error("Tick should do nothing during goal pause")
	}

	s.Advance(time.Millisecond)
	if g.GoalPending() {
		t.Fatal("goal pause should be over")
	}
	if !g.Ball().Visible {
		t.Error("ball should be visible after goal pause")
	}

	s.Advance(sched.Rate(InitialSpeed))
	if g.Ball().X == x {
		t.Error("ball did not move after goal pause")
	}
}

func TestGoalPause_PaddlesKeepMoving(t *testing.T) {
	g, s := newTestGame(t)
	g.Start()
	scoreRight(t, g)

	y := g.Paddle(Right).Y
	g.SetPaddleHeld(Right, DirDown, true)
	s.Advance(sched.Rate(InitialSpeed) * 3)

	if !g.GoalPending() {
		t.Fatal("test expects to still be in the goal pause")
	}
	if g.Paddle(Right).Y != y+3*PaddleStep {
		t.Errorf("expected paddle at %f, got %f", y+3*PaddleStep, g.Paddle(Right).Y)
	}
}

func TestGoalPause_StopAbandonsResume(t *testing.T) {
	g, s := newTestGame(t)
	g.Start()
	scoreRight(t, g)

	g.Stop()
	s.Advance(time.Second)

	if g.GoalPending() {
		t.Error("goal pause should be abandoned on stop")
	}
	if g.Ball().Visible {
		t.Error("ball reappeared after stop")
	}
	if s.Pending() != 1 {
		t.Errorf("expected only the paddle task queued, got %d", s.Pending())
	}
}

func TestGoalPause_PausedDuringDelay(t *testing.T) {
	g, s := newTestGame(t)
	g.Start()
	scoreRight(t, g)

	g.Pause()
	s.Advance(GoalDelay)

	if !g.Ball().Visible {
		t.Error("ball should reappear when the goal delay ends")
	}
	x := g.Ball().X
	s.Advance(time.Second)
	if g.Ball().X != x {
		t.Error("ball moved while paused")
	}

	g.Resume()
	s.Advance(sched.Rate(InitialSpeed))
	if g.Ball().X == x {
		t.Error("ball did not move after resume")
	}
}

func TestGoalPause_ResumedDuringDelay(t *testing.T) {
	g, s := newTestGame(t)
	g.Start()
	scoreRight(t, g)

	g.Pause()
	g.Resume()
	x := g.Ball().X
	s.Advance(GoalDelay / 2)

	if g.Ball().X != x {
		t.Error("ball moved before the goal delay ended")
	}

	s.Advance(GoalDelay/2 + sched.Rate(InitialSpeed))
	if g.Ball().X == x {
		t.Error("ball did not move after the goal delay")
	}
}

func TestPaddlesMoveBeforeStart(t *testing.T) {
	g, s := newTestGame(t)
	y := g.Paddle(Left).Y

	g.SetPaddleHeld(Left, DirUp, true)
	s.Advance(sched.Rate(InitialSpeed) * 4)
	g.SetPaddleHeld(Left, DirUp, false)
	s.Advance(time.Second)

	if g.Paddle(Left).Y != y-4*PaddleStep {
		t.Errorf("expected paddle at %f, got %f", y-4*PaddleStep, g.Paddle(Left).Y)
	}
}

func TestPaddles_StayInsideField(t *testing.T) {
	g, s := newTestGame(t)
	g.Start()

	dirs := []Direction{DirUp, DirDown}
	for i := 0; i < 400; i++ {
		side := Side(i % 2)
		g.SetPaddleHeld(side, dirs[(i/7)%2], true)
		g.SetPaddleHeld(side, dirs[(i/7+1)%2], false)
		s.Advance(7 * time.Millisecond)

		for _, p := range []*Paddle{g.Paddle(Left), g.Paddle(Right)} {
			if p.Y < 0 || p.Y > DefaultHeight-p.Length {
				t.Fatalf("paddle %v out of bounds at step %d: Y=%f", p.Side, i, p.Y)
			}
		}
	}
}

func TestDragPaddle(t *testing.T) {
	g, _ := newTestGame(t)

	g.DragPaddle(Right, 80)
	if g.Paddle(Right).Y != 80 {
		t.Errorf("expected Y=80, got %f", g.Paddle(Right).Y)
	}

	g.DragPaddle(Right, 1000)
	if g.Paddle(Right).Y != DefaultHeight-InitialPaddleLength {
		t.Errorf("expected drag to clamp at the bottom, got %f", g.Paddle(Right).Y)
	}

	g.DragPaddle(Side(7), 10)
}

func TestClose_StopsPaddleTask(t *testing.T) {
	g, s := newTestGame(t)
	g.Start()

	g.Close()

	if s.Pending() != 0 {
		t.Errorf("expected no queued tasks after close, got %d", s.Pending())
	}
}

func TestSetOption(t *testing.T) {
	g, _ := newTestGame(t)

	if err := g.SetOption(string(OptionSound), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.Options().SoundOn() {
		t.Error("expected sound on")
	}
	if err := g.ToggleOption("angle"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Options().AnglePaddle() {
		t.Error("expected angle mode off")
	}
	if err := g.SetOption("gravity", true); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("expected ErrUnknownOption, got %v", err)
	}
}

func TestSetOption_ByName(t *testing.T) {
	tests := []struct {
		name      string
		on        bool
		wantSound bool
		wantAngle bool
	}{
		{"Sound", true, true, true},
		{"SOUND", true, true, true},
		{"anglePaddle", false, false, false},
		{"angle", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			if err := g.SetOption(tt.name, tt.on); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if g.Options().SoundOn() != tt.wantSound || g.Options().AnglePaddle() != tt.wantAngle {
				t.Errorf("SetOption(%q, %v): sound=%v angle=%v", tt.name, tt.on,
					g.Options().SoundOn(), g.Options().AnglePaddle())
			}
		})
	}
}

func TestSnapshot(t *testing.T) {
	g, _ := newTestGame(t)
	g.Start()
	g.Player(Right).Points = 2

	snap := g.Snapshot()

	if snap.Status != StatusRunning {
		t.Errorf("expected Running, got %v", snap.Status)
	}
	if snap.Ball.X != g.Ball().X || snap.Ball.Radius != BallRadius || !snap.Ball.Visible {
		t.Errorf("unexpected ball state %+v", snap.Ball)
	}
	if snap.Paddles[Right].X != g.Paddle(Right).X || snap.Paddles[Right].Length != InitialPaddleLength {
		t.Errorf("unexpected right paddle %+v", snap.Paddles[Right])
	}
	if snap.Players[Right].Points != 2 || snap.Players[Left].Name != "Left" {
		t.Errorf("unexpected players %+v", snap.Players)
	}
	if snap.OptionsText != "Options: Sound (1) OFF  Angling Paddle (2) ON  " {
		t.Errorf("unexpected options text %q", snap.OptionsText)
	}

	snap.Paddles[Left].Y = -100
	if g.Paddle(Left).Y == -100 {
		t.Error("snapshot shares state with the game")
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusIdle, "Idle"},
		{StatusRunning, "Running"},
		{StatusPaused, "Paused"},
		{Status(9), "Status(9)"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

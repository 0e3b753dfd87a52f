package game

// BallState is the renderable part of the ball.
type BallState struct {
	X, Y    float64
	Radius  float64
	VX, VY  float64
	Visible bool
}

// PaddleState is the renderable part of a paddle.
type PaddleState struct {
	Side   Side
	X, Y   float64
	Width  float64
	Length float64
}

// PlayerState is a player's name and points.
type PlayerState struct {
	Name   string
	Points int
}

// Snapshot is a copy of everything the frontend draws. It shares nothing
// with the live game.
type Snapshot struct {
	Field       Playfield
	Ball        BallState
	Paddles     [2]PaddleState
	Players     [2]PlayerState
	Status      Status
	GoalPause   bool
	BallSpeed   float64
	PaddleSpeed float64
	SoundOn     bool
	AnglePaddle bool
	OptionsText string
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Field: g.field,
		Ball: BallState{
			X:       g.ball.X,
			Y:       g.ball.Y,
			Radius:  g.ball.Radius,
			VX:      g.ball.VX,
			VY:      g.ball.VY,
			Visible: g.ball.Visible,
		},
		Status:      g.status,
		GoalPause:   g.goalPending,
		BallSpeed:   g.ballSpeed,
		PaddleSpeed: g.paddleSpeed,
		SoundOn:     g.options.SoundOn(),
		AnglePaddle: g.options.AnglePaddle(),
		OptionsText: g.options.Summary(),
	}
	for i, p := range g.paddles {
		s.Paddles[i] = PaddleState{Side: p.Side, X: p.X, Y: p.Y, Width: p.Width, Length: p.Length}
	}
	for i, p := range g.players {
		s.Players[i] = PlayerState{Name: p.Name, Points: p.Points}
	}
	return s
}

package game

import "github.com/diegok/pong/internal/geom"

const (
	PaddleWidth         = 10.0
	PaddleInset         = 20.0 // distance from the side wall
	InitialPaddleLength = 60.0
	PaddleStep          = 2.0 // movement per paddle tick
)

type Paddle struct {
	Side        Side
	X           float64 // fixed
	Y           float64 // top edge
	Width       float64
	Length      float64
	CourtHeight float64

	Up   bool
	Down bool
}

// NewPaddle creates a paddle vertically centered on its side of the field.
func NewPaddle(side Side, field Playfield, length float64) *Paddle {
	x := PaddleInset
	if side == Right {
		x = field.Width - PaddleInset - PaddleWidth
	}
	p := &Paddle{
		Side:        side,
		X:           x,
		Width:       PaddleWidth,
		Length:      length,
		CourtHeight: field.Height,
	}
	p.MoveTo((field.Height - length) / 2)
	return p
}

// Bounds returns the paddle's bounding box.
func (p *Paddle) Bounds() geom.Rect {
	return geom.NewRect(p.X, p.Y, p.Width, p.Length)
}

// MaxY is the lowest allowed top edge.
func (p *Paddle) MaxY() float64 {
	if p.CourtHeight < p.Length {
		return 0
	}
	return p.CourtHeight - p.Length
}

// SetHeld records whether movement in dir is currently requested.
func (p *Paddle) SetHeld(dir Direction, held bool) {
	switch dir {
	case DirUp:
		p.Up = held
	case DirDown:
		p.Down = held
	}
}

// Move applies the held flags once. Holding both directions cancels out.
func (p *Paddle) Move(step float64) {
	y := p.Y
	if p.Up {
		y -= step
	}
	if p.Down {
		y += step
	}
	p.MoveTo(y)
}

// MoveTo sets the top edge, clamped to the court.
func (p *Paddle) MoveTo(y float64) {
	p.Y = geom.Clamp(y, 0, p.MaxY())
}

// CenterY returns the vertical center of the paddle.
func (p *Paddle) CenterY() float64 {
	return p.Y + p.Length/2
}

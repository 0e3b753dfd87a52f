package game

import (
	"math"

	"github.com/diegok/pong/internal/geom"
)

const BallRadius = 5.0

// Ball is the moving ball. VX and VY are the displacement applied on every
// ball tick; how often that happens is set by the game's ball speed.
type Ball struct {
	X, Y    float64
	Radius  float64
	VX, VY  float64
	Visible bool
}

func NewBall(x, y float64) *Ball {
	return &Ball{X: x, Y: y, Radius: BallRadius}
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() geom.Rect {
	return geom.RectAround(geom.Point{X: b.X, Y: b.Y}, b.Radius)
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceVertical reverses vertical direction (wall bounce)
func (b *Ball) BounceVertical() {
	b.VY = -b.VY
}

// BounceHorizontal reverses horizontal direction, keeping the angle.
func (b *Ball) BounceHorizontal() {
	b.VX = -b.VX
}

// Deflect sends the ball back across the field with an angle that depends
// on where it met the paddle. paddleTop and paddleLength describe the
// paddle's vertical extent.
//
// The hit position runs from -1 to 1 (0 at the paddle center) and is signed
// by the vertical direction, so the current angle is widened or flattened:
// the new angle is angle*(1+hitPos). A center hit keeps the angle, an edge
// hit doubles it.
func (b *Ball) Deflect(paddleTop, paddleLength float64) {
	hitPos := (b.Y-paddleTop)/paddleLength - 0.5
	hitPos = geom.Clamp(hitPos*2*sign(b.VY), -1, 1)

	speed := b.Speed()
	angle := math.Atan(b.VY / math.Abs(b.VX))
	newAngle := angle * (1 + hitPos)

	b.VY = speed * math.Sin(newAngle)
	b.VX = -sign(b.VX) * speed * math.Cos(newAngle)
}

// Speed returns the length of the per-tick displacement.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Serve places the ball and gives it a fresh diagonal velocity of step per
// axis.
func (b *Ball) Serve(x, y float64, right, down bool, step float64) {
	b.X = x
	b.Y = y
	b.VX = step
	if !right {
		b.VX = -step
	}
	b.VY = step
	if !down {
		b.VY = -step
	}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

package game

import "fmt"

// Side identifies one half of the field.
type Side int

const (
	Left  Side = 0
	Right Side = 1
)

func (s Side) String() string {
	switch s {
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Direction represents paddle movement direction
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = 2
)

// Player keeps the points of one side.
type Player struct {
	Name   string
	Points int
}

func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

// Score adds a point.
func (p *Player) Score() {
	p.Points++
}

// Playfield is the size of the court. The origin is the top-left corner.
type Playfield struct {
	Width  float64
	Height float64
}

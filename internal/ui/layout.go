package ui

import (
	"math"

	"github.com/diegok/pong/internal/game"
)

// Rows reserved around the court: one scoreboard row above, the how-to and
// options rows below.
const (
	headerRows = 1
	footerRows = 2
)

// Layout maps court coordinates onto terminal cells and back.
type Layout struct {
	Field   game.Playfield
	ScreenW int
	ScreenH int
}

// NewLayout returns the layout of field on a screenW x screenH terminal.
func NewLayout(field game.Playfield, screenW, screenH int) Layout {
	return Layout{Field: field, ScreenW: screenW, ScreenH: screenH}
}

// Top is the first court row.
func (l Layout) Top() int { return headerRows }

// Rows is the number of court rows, at least one.
func (l Layout) Rows() int {
	return max(l.ScreenH-headerRows-footerRows, 1)
}

// Bottom is the last court row.
func (l Layout) Bottom() int { return l.Top() + l.Rows() - 1 }

func (l Layout) scaleX() float64 { return float64(l.ScreenW) / l.Field.Width }
func (l Layout) scaleY() float64 { return float64(l.Rows()) / l.Field.Height }

// Column converts a court x to a screen column.
func (l Layout) Column(x float64) int {
	c := int(math.Floor(x * l.scaleX()))
	return min(max(c, 0), l.ScreenW-1)
}

// Row converts a court y to a screen row inside the court.
func (l Layout) Row(y float64) int {
	r := int(math.Floor(y * l.scaleY()))
	return l.Top() + min(max(r, 0), l.Rows()-1)
}

// Span returns the rows covered by the court interval [y, y+length).
func (l Layout) Span(y, length float64) (first, last int) {
	first = l.Row(y)
	last = l.Row(math.Nextafter(y+length, y))
	if last < first {
		last = first
	}
	return first, last
}

// CourtY converts a screen row to the court y at the center of that row.
func (l Layout) CourtY(row int) float64 {
	return (float64(row-l.Top()) + 0.5) / l.scaleY()
}

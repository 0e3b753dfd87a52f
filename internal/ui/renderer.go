package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong/internal/game"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █
)

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Layout returns the current mapping between the court and the screen.
func (r *Renderer) Layout(field game.Playfield) Layout {
	w, h := r.screen.Size()
	return NewLayout(field, w, h)
}

// Message returns the text shown over the court, if any.
func Message(s game.Snapshot) string {
	switch {
	case s.GoalPause:
		return "GOAL!"
	case s.Status == game.StatusPaused:
		return "PAUSED - press P to resume"
	case s.Status == game.StatusIdle:
		return "Press SPACE to start"
	}
	return ""
}

// RenderGame displays the game screen
func (r *Renderer) RenderGame(s game.Snapshot) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	l := NewLayout(s.Field, screenW, screenH)

	// Draw court background (black)
	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, l.Top(), screenW, l.Rows(), courtStyle, ' ')

	// Draw center dashed line
	centerX := l.Column(s.Field.Width / 2)
	lineStyle := courtStyle.Foreground(tcell.ColorDarkGray)
	for y := l.Top(); y <= l.Bottom(); y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, '|')
	}

	r.renderScoreboard(s, screenW)

	for _, p := range s.Paddles {
		col := l.Column(p.X + p.Width/2)
		first, last := l.Span(p.Y, p.Length)
		style := SideStyle(p.Side).Background(tcell.ColorBlack)
		r.screen.DrawVerticalLine(col, first, last, style, PaddleChar)
	}

	if s.Ball.Visible {
		ballStyle := courtStyle.Foreground(tcell.ColorWhite)
		r.screen.SetCell(l.Column(s.Ball.X), l.Row(s.Ball.Y), ballStyle, BallChar)
	}

	if msg := Message(s); msg != "" {
		msgStyle := courtStyle.Foreground(tcell.ColorYellow).Bold(true)
		msgX := max((screenW-len(msg))/2, 0)
		r.screen.DrawText(msgX, l.Top()+l.Rows()/2, msg, msgStyle)
	}

	// How-to and options lines
	footerY := l.Bottom() + 1
	r.screen.DrawText(0, footerY, HowTo, tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.DrawText(0, footerY+1, s.OptionsText, tcell.StyleDefault.Foreground(tcell.ColorTeal))

	r.screen.Show()
}

// renderScoreboard draws a stadium-style scoreboard at top center
func (r *Renderer) renderScoreboard(s game.Snapshot, screenW int) {
	// Scoreboard format: [ Left  3 - 2  Right ]
	left, right := s.Players[game.Left], s.Players[game.Right]
	parts := []struct {
		text  string
		color tcell.Color
	}{
		{"[ ", tcell.ColorWhite},
		{left.Name, SideColors[game.Left]},
		{fmt.Sprintf(" %d - %d ", left.Points, right.Points), tcell.ColorWhite},
		{right.Name, SideColors[game.Right]},
		{" ]", tcell.ColorWhite},
	}

	width := 0
	for _, p := range parts {
		width += len(p.text)
	}

	x := max((screenW-width)/2, 0)
	base := tcell.StyleDefault.Background(tcell.ColorDarkGray).Bold(true)
	for _, p := range parts {
		r.screen.DrawText(x, 0, p.text, base.Foreground(p.color))
		x += len(p.text)
	}
}

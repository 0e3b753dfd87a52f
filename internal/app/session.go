package app

import (
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/sched"
	"github.com/diegok/pong/internal/ui"
)

// dragGrab is how many columns beside a paddle still pick it up.
const dragGrab = 1

type drag struct {
	active bool
	side   game.Side
	offset float64 // pointer y minus paddle top, in court units
}

// session turns terminal input into game intents. It must run on the
// goroutine that advances the scheduler.
type session struct {
	game   *game.Game
	sched  *sched.Scheduler
	holds  *ui.HoldTracker
	layout func() ui.Layout
	quit   func()
	log    *log.Logger

	drag drag
}

func newSession(g *game.Game, s *sched.Scheduler, layout func() ui.Layout, quit func(), logger *log.Logger) *session {
	return &session{
		game:   g,
		sched:  s,
		holds:  ui.NewHoldTracker(ui.HoldTimeout),
		layout: layout,
		quit:   quit,
		log:    logger,
	}
}

// handleEvent processes keyboard, mouse and focus events.
func (s *session) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKey(ev)
	case *tcell.EventMouse:
		s.handleMouse(ev)
	case *tcell.EventFocus:
		// Key repeats stop arriving while unfocused.
		if !ev.Focused {
			s.releaseAll()
		}
	}
}

func (s *session) handleKey(ev *tcell.EventKey) {
	if side, dir, ok := ui.KeyToPaddle(ev.Key(), ev.Rune()); ok {
		if s.holds.Press(side, dir, s.sched.Now()) {
			s.game.SetPaddleHeld(side, dir, true)
		}
		return
	}

	action := ui.KeyToAction(ev.Key(), ev.Rune())
	switch action {
	case ui.ActionStart:
		s.game.Start()
	case ui.ActionStop:
		s.game.Stop()
	case ui.ActionTogglePause:
		s.game.TogglePause()
	case ui.ActionToggleSound, ui.ActionToggleAngle:
		s.toggle(action.Option())
	case ui.ActionQuit:
		s.quit()
	}
}

func (s *session) toggle(name string) {
	if err := s.game.ToggleOption(name); err != nil {
		s.log.Error("toggle option", "option", name, "err", err)
	}
}

// expireHolds releases paddle keys that stopped repeating.
func (s *session) expireHolds() {
	for _, h := range s.holds.Expire(s.sched.Now()) {
		s.game.SetPaddleHeld(h.Side, h.Dir, false)
	}
}

func (s *session) releaseAll() {
	for _, h := range s.holds.ReleaseAll() {
		s.game.SetPaddleHeld(h.Side, h.Dir, false)
	}
}

// handleMouse drags a paddle while the primary button is down. The grab
// point on the paddle stays under the pointer.
func (s *session) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		if s.drag.active {
			s.log.Debug("drag ended", "side", s.drag.side)
		}
		s.drag.active = false
		return
	}

	col, row := ev.Position()
	l := s.layout()
	y := l.CourtY(row)

	if !s.drag.active {
		side, ok := s.paddleAt(l, col, row)
		if !ok {
			return
		}
		s.drag = drag{active: true, side: side, offset: y - s.game.Paddle(side).Y}
		s.log.Debug("drag started", "side", side)
	}
	s.game.DragPaddle(s.drag.side, y-s.drag.offset)
}

func (s *session) paddleAt(l ui.Layout, col, row int) (game.Side, bool) {
	for _, side := range []game.Side{game.Left, game.Right} {
		p := s.game.Paddle(side)
		pc := l.Column(p.X + p.Width/2)
		first, last := l.Span(p.Y, p.Length)
		if col >= pc-dragGrab && col <= pc+dragGrab && row >= first && row <= last {
			return side, true
		}
	}
	return game.Left, false
}

package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong/internal/game"
)

// Action is a game command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionStop
	ActionTogglePause
	ActionToggleSound
	ActionToggleAngle
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionStop:
		return "stop"
	case ActionTogglePause:
		return "pause"
	case ActionToggleSound:
		return "sound"
	case ActionToggleAngle:
		return "angle"
	case ActionQuit:
		return "quit"
	}
	return "none"
}

// Option returns the name of the option an action toggles, or "" for
// other actions.
func (a Action) Option() string {
	switch a {
	case ActionToggleSound:
		return "sound"
	case ActionToggleAngle:
		return "anglePaddle"
	}
	return ""
}

// HowTo lists the key bindings shown under the court.
const HowTo = "SPACE=Start ESC=Stop P=Pause 1=Sound 2=Angle Q/A=Left UP/DOWN=Right X=Quit"

// KeyToAction converts a key event to a game command
func KeyToAction(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEscape:
		return ActionStop
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch r {
		case ' ':
			return ActionStart
		case 'p', 'P':
			return ActionTogglePause
		case '1':
			return ActionToggleSound
		case '2':
			return ActionToggleAngle
		case 'x', 'X':
			return ActionQuit
		}
	}
	return ActionNone
}

// KeyToPaddle converts a key event to the paddle and direction it drives.
// The left paddle uses q/a, the right one the arrow keys.
func KeyToPaddle(key tcell.Key, r rune) (game.Side, game.Direction, bool) {
	switch key {
	case tcell.KeyUp:
		return game.Right, game.DirUp, true
	case tcell.KeyDown:
		return game.Right, game.DirDown, true
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return game.Left, game.DirUp, true
		case 'a', 'A':
			return game.Left, game.DirDown, true
		}
	}
	return game.Left, game.DirNone, false
}

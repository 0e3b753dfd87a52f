package ui

import (
	"time"

	"github.com/diegok/pong/internal/game"
)

// HoldTimeout is how long a paddle key counts as held after its last key
// event. Terminals report no key release, only repeats.
const HoldTimeout = 150 * time.Millisecond

// Hold is one paddle key being held.
type Hold struct {
	Side game.Side
	Dir  game.Direction
}

// HoldTracker turns key presses and repeats into held and released
// states.
type HoldTracker struct {
	timeout time.Duration
	held    [2][3]bool
	last    [2][3]time.Duration
}

// NewHoldTracker creates a tracker. A non-positive timeout uses
// HoldTimeout.
func NewHoldTracker(timeout time.Duration) *HoldTracker {
	if timeout <= 0 {
		timeout = HoldTimeout
	}
	return &HoldTracker{timeout: timeout}
}

func valid(side game.Side, dir game.Direction) bool {
	return (side == game.Left || side == game.Right) && (dir == game.DirUp || dir == game.DirDown)
}

// Press records a key event at now and reports whether the key was not
// held before.
func (h *HoldTracker) Press(side game.Side, dir game.Direction, now time.Duration) bool {
	if !valid(side, dir) {
		return false
	}
	started := !h.held[side][dir]
	h.held[side][dir] = true
	h.last[side][dir] = now
	return started
}

// Held reports whether the key is currently held.
func (h *HoldTracker) Held(side game.Side, dir game.Direction) bool {
	return valid(side, dir) && h.held[side][dir]
}

// Expire releases every key whose last event is older than the timeout
// and returns them.
func (h *HoldTracker) Expire(now time.Duration) []Hold {
	var released []Hold
	for _, side := range []game.Side{game.Left, game.Right} {
		for _, dir := range []game.Direction{game.DirUp, game.DirDown} {
			if h.held[side][dir] && now-h.last[side][dir] >= h.timeout {
				h.held[side][dir] = false
				released = append(released, Hold{Side: side, Dir: dir})
			}
		}
	}
	return released
}

// ReleaseAll releases every held key and returns them.
func (h *HoldTracker) ReleaseAll() []Hold {
	var released []Hold
	for _, side := range []game.Side{game.Left, game.Right} {
		for _, dir := range []game.Direction{game.DirUp, game.DirDown} {
			if h.held[side][dir] {
				h.held[side][dir] = false
				released = append(released, Hold{Side: side, Dir: dir})
			}
		}
	}
	return released
}

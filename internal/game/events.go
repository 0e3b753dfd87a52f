package game

import "fmt"

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventWallBounce EventKind = iota
	EventPaddleHit
	EventGoal
)

func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "WallBounce"
	case EventPaddleHit:
		return "PaddleHit"
	case EventGoal:
		return "Goal"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is raised by the simulation for feedback such as sound. For
// PaddleHit, Side is the paddle that was hit; for Goal, the side that
// scored. WallBounce leaves Side unset.
type Event struct {
	Kind EventKind
	Side Side
}

func (e Event) String() string {
	if e.Kind == EventWallBounce {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", e.Kind, e.Side)
}

// Listener receives simulation events.
type Listener func(Event)

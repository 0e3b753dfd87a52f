package sched

import (
	"context"
	"errors"
	"time"
)

const inboxSize = 64

// ErrLoopClosed is returned by Post once the loop has stopped.
var ErrLoopClosed = errors.New("loop closed")

// Loop runs a Scheduler against the wall clock on a single goroutine.
// Closures handed to Post run on that same goroutine, between task fires,
// so they may touch anything the scheduled tasks touch.
type Loop struct {
	s     *Scheduler
	inbox chan func()
	done  chan struct{}
	now   func() time.Time
}

// NewLoop creates a loop for s.
func NewLoop(s *Scheduler) *Loop {
	return &Loop{
		s:     s,
		inbox: make(chan func(), inboxSize),
		done:  make(chan struct{}),
		now:   time.Now,
	}
}

// Post queues fn to run on the loop goroutine. It blocks while the inbox is
// full and fails once the loop has returned.
func (l *Loop) Post(fn func()) error {
	select {
	case <-l.done:
		return ErrLoopClosed
	default:
	}

	select {
	case l.inbox <- fn:
		return nil
	case <-l.done:
		return ErrLoopClosed
	}
}

// Run drives the scheduler until ctx is cancelled. Tasks still queued when
// it returns are abandoned.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	start := l.now().Add(-l.s.Now())
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	for {
		l.s.AdvanceTo(l.now().Sub(start))

		wait := time.Hour
		if next, ok := l.s.Next(); ok {
			wait = next - l.s.Now()
			if wait < 0 {
				wait = 0
			}
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(wait)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.inbox:
			fn()
		case <-timer.C:
		}
	}
}

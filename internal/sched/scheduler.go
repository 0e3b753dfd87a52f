// Package sched is a single-threaded cooperative scheduler.
//
// A Scheduler keeps its own notion of time and fires tasks only when it is
// advanced, which keeps game logic deterministic under test. Loop drives a
// Scheduler from the wall clock.
package sched

import (
	"container/heap"
	"time"
)

// MinPeriod is the shortest period a periodic task is re-armed with.
const MinPeriod = time.Millisecond

// Task is a periodic or one-shot callback owned by a Scheduler.
type Task struct {
	s      *Scheduler
	fn     func()
	period func() time.Duration
	once   bool

	due   time.Duration
	seq   uint64
	index int // position in the queue, -1 when not queued
	armed bool
}

// Scheduler orders tasks by deadline. It is not safe for concurrent use;
// all calls must come from the goroutine that advances it.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue taskQueue
}

// New creates a scheduler whose clock starts at zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every creates a stopped periodic task. period is evaluated every time the
// task is armed, so a callback that changes the rate affects the next fire.
func (s *Scheduler) Every(period func() time.Duration, fn func()) *Task {
	return &Task{s: s, fn: fn, period: period, index: -1}
}

// After schedules fn to run once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	t := &Task{s: s, fn: fn, period: func() time.Duration { return d }, once: true, index: -1}
	t.Start()
	return t
}

// Next returns the deadline of the earliest queued task.
func (s *Scheduler) Next() (time.Duration, bool) {
	if len(s.queue) == 0 {
		return 0, false
	}
	return s.queue[0].due, true
}

// Pending returns the number of queued tasks.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Advance moves the clock forward by d and runs everything that became due.
func (s *Scheduler) Advance(d time.Duration) int {
	return s.AdvanceTo(s.now + d)
}

// AdvanceTo runs every task due at or before t in deadline order, then sets
// the clock to t. It returns the number of callbacks run.
func (s *Scheduler) AdvanceTo(t time.Duration) int {
	fired := 0
	for len(s.queue) > 0 && s.queue[0].due <= t {
		task := heap.Pop(&s.queue).(*Task)
		if task.due > s.now {
			s.now = task.due
		}
		if task.once {
			task.armed = false
		}

		task.fn()
		fired++

		// Re-arm unless the callback stopped or restarted the task itself.
		if !task.once && task.armed && task.index < 0 {
			s.push(task)
		}
	}
	if t > s.now {
		s.now = t
	}
	return fired
}

func (s *Scheduler) push(t *Task) {
	d := t.period()
	if d < MinPeriod {
		d = MinPeriod
	}
	t.due = s.now + d
	s.seq++
	t.seq = s.seq
	heap.Push(&s.queue, t)
}

// Start arms the task one period from now. Starting an armed task does
// nothing.
func (t *Task) Start() {
	if t.armed {
		return
	}
	t.armed = true
	t.s.push(t)
}

// Stop disarms the task. It reports whether the task was armed.
func (t *Task) Stop() bool {
	if !t.armed {
		return false
	}
	t.armed = false
	if t.index >= 0 {
		heap.Remove(&t.s.queue, t.index)
	}
	return true
}

// Active reports whether the task is armed.
func (t *Task) Active() bool {
	return t.armed
}

type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*Task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Rate converts a frequency in ticks per second to a period.
func Rate(perSecond float64) time.Duration {
	if perSecond <= 0 {
		return MinPeriod
	}
	return time.Duration(float64(time.Second) / perSecond)
}

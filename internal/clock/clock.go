// Package clock provides cancellable deferred tasks on a virtual clock.
// Games advance the clock from their fixed-rate Step, so every callback runs
// on the same goroutine as the rest of the simulation.
package clock

import (
	"sort"
	"time"
)

// Handle refers to a scheduled task.
type Handle interface {
	// Cancel stops the task if it has not fired yet.
	// Returns true if this call prevented the task from running.
	Cancel() bool

	// Pending reports whether the task is still waiting to fire.
	Pending() bool
}

// Scheduler runs one-shot callbacks after a delay.
type Scheduler interface {
	// AfterFunc schedules fn to run once at least d after Now().
	AfterFunc(d time.Duration, fn func()) Handle

	// Now returns the time elapsed since the scheduler was created.
	Now() time.Duration
}

// task is a single scheduled callback.
type task struct {
	due   time.Duration
	seq   uint64
	fn    func()
	done  bool // fired or cancelled
	owner *Manual
}

func (t *task) Cancel() bool {
	if t.done {
		return false
	}
	t.done = true
	t.owner.remove(t)
	return true
}

func (t *task) Pending() bool {
	return !t.done
}

// Manual is a Scheduler whose time only moves when Advance is called.
// It is not safe for concurrent use.
type Manual struct {
	now   time.Duration
	seq   uint64
	queue []*task // sorted by due, then seq
}

// NewManual creates a manual clock at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the current virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// AfterFunc schedules fn to run when the clock reaches Now()+d.
// Negative delays are treated as zero.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &task{
		due:   m.now + d,
		seq:   m.seq,
		fn:    fn,
		owner: m,
	}

	i := sort.Search(len(m.queue), func(i int) bool {
		q := m.queue[i]
		return q.due > t.due || (q.due == t.due && q.seq > t.seq)
	})
	m.queue = append(m.queue, nil)
	copy(m.queue[i+1:], m.queue[i:])
	m.queue[i] = t

	return t
}

// Advance moves the clock forward by d and runs every task that falls due,
// in due order. Tasks scheduled by callbacks run too if they fall due within
// the same window.
func (m *Manual) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := m.now + d

	for len(m.queue) > 0 && m.queue[0].due <= target {
		t := m.queue[0]
		m.queue = m.queue[1:]
		m.now = t.due
		t.done = true
		t.fn()
	}

	m.now = target
}

// Len returns the number of pending tasks.
func (m *Manual) Len() int {
	return len(m.queue)
}

// remove drops a cancelled task from the queue.
func (m *Manual) remove(t *task) {
	for i, q := range m.queue {
		if q == t {
			m.queue = append(m.queue[:i], m.queue[i+1:]...)
			return
		}
	}
}

/*
manual.go - Virtual-time Scheduler for deterministic tests

PURPOSE:
  Manual keeps a virtual clock that only moves when Advance is called. Due
  tasks run synchronously, in due-time order (insertion order breaks ties),
  on the goroutine that called Advance. A 4-second bake therefore completes
  in microseconds of wall time, and the exact tick count is reproducible.

REENTRANCY:
  Callbacks frequently schedule or cancel tasks (a completing bake cancels
  its own tick source; a score change schedules the flash expiry). The mutex
  is released while a callback runs, and new tasks scheduled mid-Advance are
  due-dated against the virtual "now" of the tick that spawned them, so they
  still fire within the same Advance window when due.
*/
package sched

import (
	"sync"
	"time"
)

// Manual is a Scheduler driven by explicit Advance calls. Use in tests.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	owner     *Manual
	due       time.Duration
	period    time.Duration // 0 for one-shots
	fn        func()
	seq       int
	cancelled bool
}

// NewManual returns a virtual-time scheduler starting at t=0.
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Every(period time.Duration, fn func()) Task {
	return m.add(period, period, fn)
}

func (m *Manual) After(delay time.Duration, fn func()) Task {
	return m.add(delay, 0, fn)
}

func (m *Manual) add(delay, period time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTask{owner: m, due: m.now + delay, period: period, fn: fn, seq: m.seq}
	m.seq++
	m.tasks = append(m.tasks, t)
	return t
}

func (t *manualTask) Cancel() {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	t.cancelled = true
}

// Now returns the current virtual time since construction.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending reports how many live tasks remain scheduled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance moves virtual time forward by d, running every task that comes
// due, in order. Periodic tasks are rescheduled before their callback runs,
// so a callback that cancels its own task suppresses all later firings.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d

	for {
		next := m.earliestLocked(target)
		if next == nil {
			break
		}
		m.now = next.due
		if next.period > 0 {
			next.due += next.period
		} else {
			next.cancelled = true // one-shot: consumed
		}
		fn := next.fn

		m.mu.Unlock()
		fn()
		m.mu.Lock()
	}

	m.now = target
	m.compactLocked()
	m.mu.Unlock()
}

// earliestLocked finds the live task with the smallest due time <= target.
// Ties resolve by scheduling order.
func (m *Manual) earliestLocked(target time.Duration) *manualTask {
	var best *manualTask
	for _, t := range m.tasks {
		if t.cancelled || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *Manual) compactLocked() {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	m.tasks = live
}

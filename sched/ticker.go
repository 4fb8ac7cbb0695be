/*
ticker.go - Real-time Scheduler backed by the Go runtime

DESIGN:
  One goroutine per periodic task, each with its own time.Ticker and a stop
  channel; one-shots ride on time.AfterFunc. Cancellation is guarded by a
  sync.Once so double-Cancel and self-Cancel (from inside the callback) are
  both safe.
*/
package sched

import (
	"sync"
	"time"
)

// Ticker is the production Scheduler. The zero value is ready to use.
type Ticker struct{}

// NewTicker returns a real-time scheduler.
func NewTicker() *Ticker {
	return &Ticker{}
}

// =============================================================================
// PERIODIC TASKS
// =============================================================================

type tickerTask struct {
	stop chan struct{}
	once sync.Once
}

func (s *Ticker) Every(period time.Duration, fn func()) Task {
	t := &tickerTask{stop: make(chan struct{})}

	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-t.stop:
				return
			}
		}
	}()

	return t
}

func (t *tickerTask) Cancel() {
	t.once.Do(func() { close(t.stop) })
}

// =============================================================================
// ONE-SHOT TASKS
// =============================================================================

type timerTask struct {
	timer *time.Timer
	once  sync.Once
}

func (s *Ticker) After(delay time.Duration, fn func()) Task {
	t := &timerTask{}
	t.timer = time.AfterFunc(delay, fn)
	return t
}

func (t *timerTask) Cancel() {
	t.once.Do(func() { t.timer.Stop() })
}

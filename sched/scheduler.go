/*
Package sched provides the scheduling abstraction for the simulation engine.

PURPOSE:
  The engine never touches ambient timers directly. Every periodic effect
  (bake progress ticks, passive income, score animation) and every one-shot
  effect (notice expiry, event banner expiry) goes through a Scheduler that
  is injected at construction time.

WHY AN ABSTRACTION:
  - Tests advance virtual time deterministically (Manual) instead of
    sleeping through real delays.
  - Every scheduled effect is individually cancellable, so session teardown
    can prove nothing leaks.
  - Replacing a schedule (cancel + reschedule) is explicit, which is what
    keeps the passive-income rate from double-crediting.

IMPLEMENTATIONS:
  - Ticker: real time, one goroutine per task (ticker.go)
  - Manual: virtual time for tests (manual.go)

SEE ALSO:
  - bakery/engine.go: the only consumer
*/
package sched

import "time"

// Task is a handle to a scheduled callback.
type Task interface {
	// Cancel stops the task. Idempotent; safe to call from within the
	// task's own callback.
	Cancel()
}

// Scheduler runs callbacks on a schedule.
//
// Callbacks must be quick and non-blocking: the engine's run-to-completion
// model depends on each callback fully applying its state change before the
// next one runs.
type Scheduler interface {
	// Every runs fn repeatedly with the given period until cancelled.
	Every(period time.Duration, fn func()) Task

	// After runs fn once after the given delay, unless cancelled first.
	After(delay time.Duration, fn func()) Task
}

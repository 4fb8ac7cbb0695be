/*
engine.go - The session engine and its command plumbing

PURPOSE:
  Engine owns one State and serializes every mutation behind a mutex: each
  command or scheduled callback fully computes its next state before any
  other handler runs (run-to-completion). Periodic effects go through the
  injected sched.Scheduler so tests drive them with virtual time.

SCHEDULED EFFECTS:
  - one progress tick per active bake slot (independently cancellable)
  - one passive-income schedule, fully replaced on every rate change
  - one score-animation schedule that self-cancels when caught up
  - one-shot expiries for the notice, the event banner, and the score flash

POST-COMMAND HOOK:
  After every mutating command the engine re-evaluates the fixed list of
  automatic-mission predicates against the new state (missions.go). There
  is no implicit change notification anywhere.

SEE ALSO:
  - baking.go, day.go, market.go, missions.go, credit.go, events.go:
    the command handlers
  - sched: the scheduler abstraction
*/
package bakery

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/warp/bakery-engine/sched"
)

// Rand supplies the engine's randomness. *math/rand.Rand satisfies it;
// tests inject scripted values.
type Rand interface {
	Intn(n int) int
}

// Engine runs one bakery session.
type Engine struct {
	mu    sync.Mutex
	cfg   Config
	clock sched.Scheduler
	rng   Rand

	st         State
	nextSlotID int
	closed     bool

	slotTasks   map[int]sched.Task
	passiveTask sched.Task
	animTask    sched.Task
	noticeTask  sched.Task
	eventTask   sched.Task
	flashTask   sched.Task

	// Generation counters pair each transient with the expiry that set it,
	// so a stale one-shot never clears a newer value.
	noticeGen int
	eventGen  int
	flashGen  int
}

// New creates a session with the given scheduler. A nil rng falls back to
// a time-seeded source.
func New(cfg Config, clock sched.Scheduler, rng Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		cfg:       cfg,
		clock:     clock,
		rng:       rng,
		st:        NewState(cfg),
		slotTasks: make(map[int]sched.Task),
	}
}

// Close tears down every scheduled effect. The engine rejects all commands
// afterwards. Idempotent.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	for id, t := range e.slotTasks {
		t.Cancel()
		delete(e.slotTasks, id)
	}
	for _, t := range []sched.Task{e.passiveTask, e.animTask, e.noticeTask, e.eventTask, e.flashTask} {
		if t != nil {
			t.Cancel()
		}
	}
	e.passiveTask, e.animTask, e.noticeTask, e.eventTask, e.flashTask = nil, nil, nil, nil, nil
}

// Snapshot returns a deep copy of the full session state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.Clone()
}

// =============================================================================
// LOCKED HELPERS - callers must hold e.mu
// =============================================================================

// notifyLocked replaces the transient notice and re-arms its expiry.
func (e *Engine) notifyLocked(msg string, sev Severity) {
	e.st.Notice = &Notice{Message: msg, Severity: sev}
	e.noticeGen++
	gen := e.noticeGen
	if e.noticeTask != nil {
		e.noticeTask.Cancel()
	}
	e.noticeTask = e.clock.After(e.cfg.NoticeTTL, func() { e.expireNotice(gen) })
}

func (e *Engine) expireNotice(gen int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || gen != e.noticeGen {
		return
	}
	e.st.Notice = nil
	e.noticeTask = nil
}

// logLocked prepends to the bounded activity log, stamped with the day.
func (e *Engine) logLocked(msg string) {
	entry := fmt.Sprintf("[Day %d] %s", e.st.Day, msg)
	e.st.ActivityLog = prependBounded(e.st.ActivityLog, entry, e.cfg.LogLen)
}

// creditLogLocked prepends to the bounded credit log.
func (e *Engine) creditLogLocked(msg string) {
	entry := fmt.Sprintf("[Day %d] %s", e.st.Day, msg)
	e.st.Credit.Log = prependBounded(e.st.Credit.Log, entry, e.cfg.LogLen)
}

// earnLocked credits coins and the lifetime-earned counter.
func (e *Engine) earnLocked(amt Coins) {
	e.st.Resources.Coins = e.st.Resources.Coins.Add(amt)
	e.st.TotalEarned = e.st.TotalEarned.Add(amt)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

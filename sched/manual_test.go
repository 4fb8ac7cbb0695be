package sched_test

import (
	"testing"
	"time"

	"github.com/warp/bakery-engine/sched"
)

func TestManual_After_FiresOnceAtDue(t *testing.T) {
	// GIVEN: A one-shot scheduled 50ms out
	// WHEN: Advancing past the due time, then further
	// THEN: The callback runs exactly once

	m := sched.NewManual()
	fired := 0
	m.After(50*time.Millisecond, func() { fired++ })

	m.Advance(49 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired before due: %d", fired)
	}
	m.Advance(1 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("expected 1 firing at due, got %d", fired)
	}
	m.Advance(200 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("one-shot fired again: %d", fired)
	}
}

func TestManual_Every_FiresOncePerPeriod(t *testing.T) {
	m := sched.NewManual()
	fired := 0
	m.Every(10*time.Millisecond, func() { fired++ })

	m.Advance(35 * time.Millisecond)
	if fired != 3 {
		t.Fatalf("expected 3 firings in 35ms at 10ms period, got %d", fired)
	}
	m.Advance(5 * time.Millisecond)
	if fired != 4 {
		t.Fatalf("expected 4 firings at 40ms, got %d", fired)
	}
}

func TestManual_Cancel_SuppressesPendingFirings(t *testing.T) {
	m := sched.NewManual()
	fired := 0
	task := m.Every(10*time.Millisecond, func() { fired++ })

	m.Advance(20 * time.Millisecond)
	task.Cancel()
	m.Advance(100 * time.Millisecond)

	if fired != 2 {
		t.Fatalf("expected 2 firings before cancel, got %d", fired)
	}
}

func TestManual_SelfCancelFromCallback(t *testing.T) {
	// GIVEN: A periodic task that cancels itself on its third run
	// THEN: Later ticks within the same Advance are suppressed

	m := sched.NewManual()
	fired := 0
	var task sched.Task
	task = m.Every(10*time.Millisecond, func() {
		fired++
		if fired == 3 {
			task.Cancel()
		}
	})

	m.Advance(time.Second)
	if fired != 3 {
		t.Fatalf("expected exactly 3 firings, got %d", fired)
	}
}

func TestManual_SchedulingFromCallback(t *testing.T) {
	// A callback may schedule new work; work due within the same Advance
	// window still runs.

	m := sched.NewManual()
	var chained bool
	m.After(10*time.Millisecond, func() {
		m.After(10*time.Millisecond, func() { chained = true })
	})

	m.Advance(30 * time.Millisecond)
	if !chained {
		t.Fatal("chained callback did not run")
	}
}

func TestManual_OrderingWithinAdvance(t *testing.T) {
	// GIVEN: Two tasks due at different times inside one Advance
	// THEN: They run in due-time order, not registration order

	m := sched.NewManual()
	var order []string
	m.After(20*time.Millisecond, func() { order = append(order, "late") })
	m.After(10*time.Millisecond, func() { order = append(order, "early") })

	m.Advance(30 * time.Millisecond)
	if len(order) != 2 || order[0] != "early" || order[1] != "late" {
		t.Fatalf("wrong order: %v", order)
	}
}

func TestManual_NowAdvances(t *testing.T) {
	m := sched.NewManual()
	m.Advance(75 * time.Millisecond)
	if m.Now() != 75*time.Millisecond {
		t.Fatalf("Now() = %v, want 75ms", m.Now())
	}
}

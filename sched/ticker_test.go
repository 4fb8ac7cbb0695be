package sched_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/warp/bakery-engine/sched"
)

func TestTicker_After_Fires(t *testing.T) {
	s := sched.NewTicker()
	done := make(chan struct{})
	s.After(5*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("one-shot never fired")
	}
}

func TestTicker_Every_FiresRepeatedly(t *testing.T) {
	s := sched.NewTicker()
	var n atomic.Int32
	task := s.Every(2*time.Millisecond, func() { n.Add(1) })
	defer task.Cancel()

	deadline := time.After(time.Second)
	for n.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("only %d firings within deadline", n.Load())
		case <-time.After(time.Millisecond):
		}
	}
}

func TestTicker_Cancel_StopsFirings(t *testing.T) {
	s := sched.NewTicker()
	var n atomic.Int32
	task := s.Every(2*time.Millisecond, func() { n.Add(1) })

	time.Sleep(10 * time.Millisecond)
	task.Cancel()
	settled := n.Load()

	time.Sleep(20 * time.Millisecond)
	// One in-flight tick may land right at cancel time; none after that.
	if n.Load() > settled+1 {
		t.Fatalf("ticks continued after cancel: %d -> %d", settled, n.Load())
	}
}

func TestTicker_CancelIdempotent(t *testing.T) {
	s := sched.NewTicker()
	task := s.After(time.Hour, func() {})
	task.Cancel()
	task.Cancel()
}

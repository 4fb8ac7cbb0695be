package bakery_test

import (
	"testing"
	"time"

	"github.com/warp/bakery-engine/bakery"
)

func stormIndex(t *testing.T) int {
	t.Helper()
	for i, ev := range bakery.EventPool() {
		if ev.ID == "storm" {
			return i
		}
	}
	t.Fatal("storm missing from event pool")
	return -1
}

func TestEvent_AppliedAndExpires(t *testing.T) {
	e, clock := newScriptedEngine(bakery.DefaultConfig(), 0, 0) // raccoon: -6 flour
	defer e.Close()

	if err := e.AdvanceDay(); err != nil {
		t.Fatalf("AdvanceDay: %v", err)
	}

	st := e.Snapshot()
	if st.Event == nil || st.Event.ID != "raccoon" {
		t.Fatalf("event = %+v, want raccoon", st.Event)
	}
	if st.Resources.Flour != 18+3-6 {
		t.Fatalf("flour = %d, want 15", st.Resources.Flour)
	}

	clock.Advance(4 * time.Second)
	if st := e.Snapshot(); st.Event != nil {
		t.Fatalf("event banner survived its lifetime: %+v", st.Event)
	}
}

func TestEvent_StormCutsCustomersFlooredAtOne(t *testing.T) {
	e, _ := newScriptedEngine(bakery.DefaultConfig(), 0, stormIndex(t))
	defer e.Close()

	if err := e.AdvanceDay(); err != nil {
		t.Fatalf("AdvanceDay: %v", err)
	}

	// Storm is -4 customers against a base of 3: floored at 1.
	if st := e.Snapshot(); st.Resources.Customers != 1 {
		t.Fatalf("customers = %d, want 1", st.Resources.Customers)
	}
}

func TestEvent_InsuranceBlocksStorm(t *testing.T) {
	// GIVEN: Storm insurance owned
	// WHEN: Advancing days across every possible event draw
	// THEN: The storm never lands

	cfg := bakery.DefaultConfig()
	cfg.StartingCoins = 150
	poolSize := len(bakery.EventPool())

	for idx := 0; idx < poolSize; idx++ {
		e, _ := newScriptedEngine(cfg, 0, idx)
		if err := e.BuyUpgrade("insurance"); err != nil {
			t.Fatalf("BuyUpgrade: %v", err)
		}
		if err := e.AdvanceDay(); err != nil {
			t.Fatalf("AdvanceDay: %v", err)
		}

		st := e.Snapshot()
		if st.Event == nil {
			t.Fatalf("draw %d: no event", idx)
		}
		if st.Event.ID == "storm" {
			t.Fatalf("draw %d: storm landed despite insurance", idx)
		}
		e.Close()
	}
}

func TestEvent_NegativeCoinsFloorAtZero(t *testing.T) {
	cfg := bakery.DefaultConfig()
	cfg.StartingCoins = 0
	cfg.StartingCustomers = 0 // suppress income for the assertion

	var saleIdx int
	for i, ev := range bakery.EventPool() {
		if ev.ID == "sale" {
			saleIdx = i
		}
	}

	e, _ := newScriptedEngine(cfg, 0, saleIdx) // sale: -3 coins
	defer e.Close()

	if err := e.AdvanceDay(); err != nil {
		t.Fatalf("AdvanceDay: %v", err)
	}
	wantCoins(t, e.Snapshot(), 0)
}

func TestEvent_HappinessCappedAtHundred(t *testing.T) {
	cfg := bakery.DefaultConfig()
	cfg.StartingHappiness = 95

	var healthIdx int
	for i, ev := range bakery.EventPool() {
		if ev.ID == "health" {
			healthIdx = i
		}
	}

	e, _ := newScriptedEngine(cfg, 0, healthIdx) // health: +10 happiness
	defer e.Close()

	if err := e.AdvanceDay(); err != nil {
		t.Fatalf("AdvanceDay: %v", err)
	}
	if st := e.Snapshot(); st.Resources.Happiness != 100 {
		t.Fatalf("happiness = %d, want capped at 100", st.Resources.Happiness)
	}
}

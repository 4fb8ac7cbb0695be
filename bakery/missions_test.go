package bakery_test

import (
	"testing"
	"time"

	"github.com/warp/bakery-engine/bakery"
)

func missionByAction(st bakery.State, action bakery.MissionAction) bakery.Mission {
	for _, m := range st.Missions {
		if m.Action == action {
			return m
		}
	}
	return bakery.Mission{}
}

func TestCompleteMission_Save5_UnlocksMuffin(t *testing.T) {
	e, _ := newTestEngine(bakery.DefaultConfig())
	defer e.Close()

	if err := e.CompleteMission(bakery.ActionSave5); err != nil {
		t.Fatalf("CompleteMission: %v", err)
	}

	st := e.Snapshot()
	if !missionByAction(st, bakery.ActionSave5).Done {
		t.Fatal("mission not marked done")
	}
	if !st.Resources.Savings.AtLeastInt(5) {
		t.Fatalf("savings = %s, want >= 5", st.Resources.Savings.Value)
	}
	if st.Resources.Flour != 23 {
		t.Fatalf("flour = %d, want 23", st.Resources.Flour)
	}
	for _, r := range st.Recipes {
		if r.ID == "muffin" && r.Locked {
			t.Fatal("muffin still locked after its mission")
		}
	}
}

func TestCompleteMission_Save20_TransfersOnce(t *testing.T) {
	// GIVEN: A fresh session with empty savings
	// WHEN: Claiming the 20-coin transfer mission twice
	// THEN: Savings rise by exactly 20 once, and the repeat is rejected

	e, _ := newTestEngine(bakery.DefaultConfig())
	defer e.Close()

	if err := e.CompleteMission(bakery.ActionSave20); err != nil {
		t.Fatalf("CompleteMission: %v", err)
	}

	st := e.Snapshot()
	if got := st.Resources.Savings.Round(); got != 20 {
		t.Fatalf("savings = %d, want 20", got)
	}
	for _, r := range st.Recipes {
		if r.ID == "croissant" && r.Locked {
			t.Fatal("croissant still locked after its mission")
		}
	}

	if err := e.CompleteMission(bakery.ActionSave20); err != bakery.ErrInvalidTarget {
		t.Fatalf("second completion = %v, want ErrInvalidTarget", err)
	}
	if got := e.Snapshot().Resources.Savings.Round(); got != 20 {
		t.Fatalf("savings after repeat = %d, want 20", got)
	}
}

func TestCompleteMission_AlreadyDone_Rejected(t *testing.T) {
	e, _ := newTestEngine(bakery.DefaultConfig())
	defer e.Close()

	if err := e.CompleteMission(bakery.ActionCheck); err != nil {
		t.Fatalf("first completion: %v", err)
	}
	wantCoins(t, e.Snapshot(), 26)

	if err := e.CompleteMission(bakery.ActionCheck); err != bakery.ErrInvalidTarget {
		t.Fatalf("second completion = %v, want ErrInvalidTarget", err)
	}
	wantCoins(t, e.Snapshot(), 26) // reward applies exactly once
}

func TestCompleteMission_AutoMission_NotManuallyClaimable(t *testing.T) {
	e, _ := newTestEngine(bakery.DefaultConfig())
	defer e.Close()

	if err := e.CompleteMission(bakery.ActionBake3); err != bakery.ErrInvalidTarget {
		t.Fatalf("claiming auto mission = %v, want ErrInvalidTarget", err)
	}
}

func TestCompleteMission_Budget_BoostsCustomersAndHappiness(t *testing.T) {
	e, _ := newTestEngine(bakery.DefaultConfig())
	defer e.Close()

	if err := e.CompleteMission(bakery.ActionBudget); err != nil {
		t.Fatalf("CompleteMission: %v", err)
	}

	st := e.Snapshot()
	if st.Resources.Customers != 6 {
		t.Fatalf("customers = %d, want 6", st.Resources.Customers)
	}
	if st.Resources.Happiness != 84 {
		t.Fatalf("happiness = %d, want 84", st.Resources.Happiness)
	}
}

func TestAutoMission_Invest3_UnlocksDonut(t *testing.T) {
	cfg := bakery.DefaultConfig()
	cfg.StartingCoins = 100
	e, _ := newTestEngine(cfg)
	defer e.Close()

	for i := 0; i < 3; i++ {
		if err := e.FeedInvestment(5); err != nil {
			t.Fatalf("invest %d: %v", i+1, err)
		}
	}

	st := e.Snapshot()
	if !missionByAction(st, bakery.ActionInvest3).Done {
		t.Fatal("sourdough mission not completed at level 3")
	}
	for _, r := range st.Recipes {
		if r.ID == "donut" && r.Locked {
			t.Fatal("donut still locked at sourdough level 3")
		}
	}
}

func TestAutoMission_Save50_UnlocksCake(t *testing.T) {
	cfg := bakery.DefaultConfig()
	cfg.StartingCoins = 100
	e, _ := newTestEngine(cfg)
	defer e.Close()

	if err := e.FeedInvestment(50); err != nil {
		t.Fatalf("FeedInvestment: %v", err)
	}

	st := e.Snapshot()
	if !missionByAction(st, bakery.ActionSave50).Done {
		t.Fatal("save-50 mission not completed at 50 savings")
	}
	for _, r := range st.Recipes {
		if r.ID == "cake" && r.Locked {
			t.Fatal("cake still locked at 50 savings")
		}
	}
}

func TestMissions_ResetOnDayAdvance(t *testing.T) {
	// GIVEN: The balance-check mission completed today
	// WHEN: The day advances
	// THEN: The mission is claimable again (daily cycle)

	e, _ := newTestEngine(bakery.DefaultConfig())
	defer e.Close()

	if err := e.CompleteMission(bakery.ActionCheck); err != nil {
		t.Fatalf("day 1 completion: %v", err)
	}
	if err := e.AdvanceDay(); err != nil {
		t.Fatalf("AdvanceDay: %v", err)
	}

	st := e.Snapshot()
	if missionByAction(st, bakery.ActionCheck).Done {
		t.Fatal("mission still done after day reset")
	}
	if err := e.CompleteMission(bakery.ActionCheck); err != nil {
		t.Fatalf("day 2 completion: %v", err)
	}
}

func TestImpulse_ResistCompletesMissionAndLiftsHappiness(t *testing.T) {
	e, _ := newTestEngine(bakery.DefaultConfig())
	defer e.Close()

	if err := e.TriggerImpulseChoice(true); err != nil {
		t.Fatalf("TriggerImpulseChoice: %v", err)
	}

	st := e.Snapshot()
	if !missionByAction(st, bakery.ActionResist).Done {
		t.Fatal("resist mission not completed")
	}
	// +10 from the mission reward, +8 from resisting.
	if st.Resources.Happiness != 90 {
		t.Fatalf("happiness = %d, want 90", st.Resources.Happiness)
	}
	if st.Resources.Flour != 30 {
		t.Fatalf("flour = %d, want 30 (mission adds 12)", st.Resources.Flour)
	}
}

func TestImpulse_SplurgeDrainsFloored(t *testing.T) {
	cfg := bakery.DefaultConfig()
	cfg.StartingCoins = 10 // below the 28-coin hit
	cfg.StartingFlour = 2  // below the 4-flour hit
	e, _ := newTestEngine(cfg)
	defer e.Close()

	if err := e.TriggerImpulseChoice(false); err != nil {
		t.Fatalf("TriggerImpulseChoice: %v", err)
	}

	st := e.Snapshot()
	wantCoins(t, st, 0)
	if st.Resources.Flour != 0 {
		t.Fatalf("flour = %d, want 0", st.Resources.Flour)
	}
	if st.Resources.Happiness != 72-15 {
		t.Fatalf("happiness = %d, want 57", st.Resources.Happiness)
	}
}

func TestBakeCount_ResetsDaily(t *testing.T) {
	e, clock := newTestEngine(bakery.DefaultConfig())
	defer e.Close()

	for i := 0; i < 2; i++ {
		if err := e.StartBake("bread"); err != nil {
			t.Fatalf("bake %d: %v", i+1, err)
		}
		clock.Advance(4 * time.Second)
	}
	if err := e.AdvanceDay(); err != nil {
		t.Fatalf("AdvanceDay: %v", err)
	}

	// One more bake on day 2 must not be counted as the third of day 1.
	if err := e.StartBake("bread"); err != nil {
		t.Fatalf("day-2 bake: %v", err)
	}
	clock.Advance(4 * time.Second)

	st := e.Snapshot()
	if missionByAction(st, bakery.ActionBake3).Done {
		t.Fatal("bake-3 mission fired across a day boundary")
	}
	if st.BakesToday != 1 {
		t.Fatalf("bakes today = %d, want 1", st.BakesToday)
	}
}

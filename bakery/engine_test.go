package bakery_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/bakery-engine/bakery"
	"github.com/warp/bakery-engine/sched"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

// scriptedRand cycles through a fixed value list. Values are taken modulo
// the requested bound so a script stays valid across different draws.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func newTestEngine(cfg bakery.Config) (*bakery.Engine, *sched.Manual) {
	clock := sched.NewManual()
	return bakery.New(cfg, clock, &scriptedRand{}), clock
}

func wantCoins(t *testing.T, st bakery.State, n int) {
	t.Helper()
	if !st.Resources.Coins.Value.Equal(decimal.NewFromInt(int64(n))) {
		t.Fatalf("coins = %s, want %d", st.Resources.Coins.Value, n)
	}
}

// approxCoins tolerates the rounding of repeated per-tick credits
// (rate/60 is not exact in decimal).
func approxCoins(t *testing.T, st bakery.State, want float64) {
	t.Helper()
	diff := st.Resources.Coins.Value.Sub(decimal.NewFromFloat(want)).Abs()
	if diff.GreaterThan(decimal.NewFromFloat(0.001)) {
		t.Fatalf("coins = %s, want ~%v", st.Resources.Coins.Value, want)
	}
}

func wantScore(t *testing.T, st bakery.State, n int) {
	t.Helper()
	if st.Credit.Score != n {
		t.Fatalf("score = %d, want %d", st.Credit.Score, n)
	}
}

// =============================================================================
// SESSION LIFECYCLE
// =============================================================================

func TestNewEngine_InitialState(t *testing.T) {
	e, _ := newTestEngine(bakery.DefaultConfig())
	defer e.Close()
	st := e.Snapshot()

	wantCoins(t, st, 20)
	if st.Resources.Flour != 18 || st.Resources.MaxFlour != 40 {
		t.Fatalf("flour = %d/%d, want 18/40", st.Resources.Flour, st.Resources.MaxFlour)
	}
	if st.Resources.Customers != 3 || st.Resources.Happiness != 72 {
		t.Fatalf("customers/happiness = %d/%d, want 3/72", st.Resources.Customers, st.Resources.Happiness)
	}
	if st.Day != 1 {
		t.Fatalf("day = %d, want 1", st.Day)
	}
	wantScore(t, st, 650)
	if st.Credit.DisplayScore != 650 {
		t.Fatalf("display score = %d, want 650", st.Credit.DisplayScore)
	}
	if len(st.CoinHistory) != 3 || len(st.FlourHistory) != 3 {
		t.Fatalf("seed history lengths = %d/%d, want 3/3", len(st.CoinHistory), len(st.FlourHistory))
	}
	if len(st.Credit.ScoreHistory) != 1 || st.Credit.ScoreHistory[0] != 650 {
		t.Fatalf("score history = %v, want [650]", st.Credit.ScoreHistory)
	}

	unlocked := 0
	for _, r := range st.Recipes {
		if !r.Locked {
			unlocked++
		}
	}
	if unlocked != 1 {
		t.Fatalf("unlocked recipes at start = %d, want 1 (bread)", unlocked)
	}
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	// GIVEN: A snapshot of a fresh session
	// WHEN: Mutating the snapshot's slices
	// THEN: A second snapshot is unaffected

	e, _ := newTestEngine(bakery.DefaultConfig())
	defer e.Close()

	first := e.Snapshot()
	first.Recipes[0].Locked = true
	first.Missions[0].Done = true
	first.CoinHistory[0] = -999
	first.ActivityLog[0] = "tampered"

	second := e.Snapshot()
	if second.Recipes[0].Locked {
		t.Fatal("recipe mutation leaked into engine state")
	}
	if second.Missions[0].Done {
		t.Fatal("mission mutation leaked into engine state")
	}
	if second.CoinHistory[0] == -999 {
		t.Fatal("history mutation leaked into engine state")
	}
	if second.ActivityLog[0] == "tampered" {
		t.Fatal("log mutation leaked into engine state")
	}
}

func TestIsRejection_SeparatesRejectionsFromLifecycle(t *testing.T) {
	rejections := []error{
		bakery.ErrInsufficientFunds,
		bakery.ErrCapacityExceeded,
		bakery.ErrInvalidTarget,
		&bakery.InsufficientFundsError{Resource: "coins", Need: 10, Have: 2},
		&bakery.CapacityError{Resource: "oven", Limit: 1},
	}
	for _, err := range rejections {
		if !bakery.IsRejection(err) {
			t.Errorf("IsRejection(%v) = false, want true", err)
		}
	}
	if bakery.IsRejection(bakery.ErrSessionClosed) {
		t.Error("session teardown is not a command rejection")
	}
	if bakery.IsRejection(nil) {
		t.Error("IsRejection(nil) = true, want false")
	}
}

func TestClose_RejectsCommands(t *testing.T) {
	e, _ := newTestEngine(bakery.DefaultConfig())
	e.Close()
	e.Close() // idempotent

	if err := e.StartBake("bread"); err != bakery.ErrSessionClosed {
		t.Fatalf("StartBake after close = %v, want ErrSessionClosed", err)
	}
	if err := e.AdvanceDay(); err != bakery.ErrSessionClosed {
		t.Fatalf("AdvanceDay after close = %v, want ErrSessionClosed", err)
	}
}

// =============================================================================
// TRANSIENT NOTICES
// =============================================================================

func TestNotice_ExpiresAfterTTL(t *testing.T) {
	e, clock := newTestEngine(bakery.DefaultConfig())
	defer e.Close()

	// Coffee costs 60, the session starts with 20.
	if err := e.BuyUpgrade("coffee"); err == nil {
		t.Fatal("expected rejection for unaffordable upgrade")
	}

	st := e.Snapshot()
	if st.Notice == nil || st.Notice.Severity != bakery.SeverityBad {
		t.Fatalf("expected a bad notice, got %+v", st.Notice)
	}

	clock.Advance(3800 * time.Millisecond)
	if st := e.Snapshot(); st.Notice != nil {
		t.Fatalf("notice survived its lifetime: %+v", st.Notice)
	}
}

func TestNotice_ReplacementRearmsExpiry(t *testing.T) {
	// GIVEN: A notice raised at t=0 and replaced at t=2s
	// THEN: The first notice's expiry must not clear the second

	e, clock := newTestEngine(bakery.DefaultConfig())
	defer e.Close()

	e.BuyUpgrade("coffee") // rejected, raises notice
	clock.Advance(2 * time.Second)
	e.BuyUpgrade("delivery") // rejected, replaces notice

	clock.Advance(2 * time.Second) // past the first notice's lifetime
	if st := e.Snapshot(); st.Notice == nil {
		t.Fatal("replacement notice cleared by stale expiry")
	}

	clock.Advance(2 * time.Second) // past the second notice's lifetime
	if st := e.Snapshot(); st.Notice != nil {
		t.Fatal("replacement notice never expired")
	}
}

// =============================================================================
// PASSIVE INCOME
// =============================================================================

func TestPassiveIncome_CreditsPerTick(t *testing.T) {
	cfg := bakery.DefaultConfig()
	cfg.StartingCoins = 100
	e, clock := newTestEngine(cfg)
	defer e.Close()

	// Coffee machine: +2 coins/min, credited in per-second slices.
	if err := e.BuyUpgrade("coffee"); err != nil {
		t.Fatalf("BuyUpgrade: %v", err)
	}
	wantCoins(t, e.Snapshot(), 40)

	clock.Advance(60 * time.Second)
	approxCoins(t, e.Snapshot(), 42)
}

func TestPassiveIncome_RateChangeReplacesSchedule(t *testing.T) {
	// Raising the rate mid-flight must not leave the old schedule
	// crediting alongside the new one.

	cfg := bakery.DefaultConfig()
	cfg.StartingCoins = 200
	e, clock := newTestEngine(cfg)
	defer e.Close()

	e.BuyUpgrade("coffee")          // 2/min, coins 140
	clock.Advance(30 * time.Second) // +1, coins ~141
	e.FeedInvestment(10)            // level 1: 2.6/min, coins ~131, savings 10

	clock.Advance(60 * time.Second)
	// Were the old schedule still alive, the minute would add ~4.6 instead.
	approxCoins(t, e.Snapshot(), 131+2.6)
}

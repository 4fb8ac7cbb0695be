/*
state.go - The aggregate session state

PURPOSE:
  Everything a session knows lives in one State value owned by one Engine.
  Queries hand out deep copies; nothing outside the engine ever holds a
  pointer into live state.

BOUNDED SEQUENCES:
  Coin/flour histories keep the last 14 days, the pastry shelf the last 10
  icons, both logs the last 40 entries (newest first). Score history is
  append-only: every adjustment in a session stays charted.
*/
package bakery

import (
	"fmt"
	"math"
)

// ResourceState is the mutable resource ledger.
type ResourceState struct {
	Coins     Coins
	Flour     int
	MaxFlour  int
	Savings   Coins
	Customers int
	Happiness int
}

// BakeSlot is one in-progress bake. Created by StartBake, removed when
// progress reaches 100; there is no cancellation path.
type BakeSlot struct {
	ID       int
	RecipeID RecipeID
	Progress float64 // 0..100, reported clamped

	ticksDone  int
	ticksTotal int
}

// CreditState models the consumer-credit subsystem.
//
// INVARIANT: CreditUsed changes only in lockstep with SupplierDebt through
// borrow/pay operations. Score is never assigned directly, only adjusted
// by a delta and clamped to [ScoreFloor, ScoreCeiling].
type CreditState struct {
	Score         int
	DisplayScore  int // animated value stepping toward Score
	ScoreHistory  []int
	CreditUsed    int
	SupplierDebt  int
	EmergencyFund Coins
	LoanBalance   int
	LoanRate      float64 // fixed at issuance
	TotalInterest Coins
	Log           []string
}

// Notice is a transient, display-only notification.
type Notice struct {
	Message  string
	Severity Severity
}

// ScoreFlash is the transient score-change callout.
type ScoreFlash struct {
	Delta  int
	Reason string
}

// State is the full session aggregate.
type State struct {
	Day       int
	Resources ResourceState

	TotalEarned     Coins
	SourdoughLevel  int
	SourdoughEarned Coins

	Recipes  []Recipe
	Upgrades []Upgrade
	Missions []Mission

	Slots      []BakeSlot
	BakesToday int

	PastryShelf  []string
	CoinHistory  []int
	FlourHistory []int
	ActivityLog  []string

	Credit CreditState

	// Transient display state, auto-cleared on a schedule.
	Notice *Notice
	Event  *EventDef
	Flash  *ScoreFlash
}

// NewState builds the day-1 session: reference starting resources, the
// full catalogs, and seeded histories.
func NewState(cfg Config) State {
	st := State{
		Day: 1,
		Resources: ResourceState{
			Coins:     CoinsFromInt(cfg.StartingCoins),
			Flour:     cfg.StartingFlour,
			MaxFlour:  cfg.StartingMaxFlour,
			Savings:   ZeroCoins(),
			Customers: cfg.StartingCustomers,
			Happiness: cfg.StartingHappiness,
		},
		TotalEarned:     ZeroCoins(),
		SourdoughEarned: ZeroCoins(),
		Recipes:         BaseRecipes(),
		Upgrades:        BaseUpgrades(),
		Missions:        BaseMissions(),
		CoinHistory:     []int{cfg.StartingCoins, cfg.StartingCoins, cfg.StartingCoins},
		FlourHistory:    []int{cfg.StartingFlour, cfg.StartingFlour, cfg.StartingFlour},
		ActivityLog:     []string{"[Day 1] ☀️ Your bakery is open!"},
		Credit: CreditState{
			Score:         cfg.StartingScore,
			DisplayScore:  cfg.StartingScore,
			ScoreHistory:  []int{cfg.StartingScore},
			EmergencyFund: ZeroCoins(),
			TotalInterest: ZeroCoins(),
			Log:           []string{fmt.Sprintf("[Day 1] 💳 Credit account opened. Score: %d", cfg.StartingScore)},
		},
	}
	return st
}

// Clone returns a deep copy safe to hand outside the engine.
func (s State) Clone() State {
	out := s
	out.Recipes = append([]Recipe(nil), s.Recipes...)
	out.Upgrades = append([]Upgrade(nil), s.Upgrades...)
	out.Missions = append([]Mission(nil), s.Missions...)
	out.Slots = append([]BakeSlot(nil), s.Slots...)
	out.PastryShelf = append([]string(nil), s.PastryShelf...)
	out.CoinHistory = append([]int(nil), s.CoinHistory...)
	out.FlourHistory = append([]int(nil), s.FlourHistory...)
	out.ActivityLog = append([]string(nil), s.ActivityLog...)
	out.Credit.ScoreHistory = append([]int(nil), s.Credit.ScoreHistory...)
	out.Credit.Log = append([]string(nil), s.Credit.Log...)
	if s.Notice != nil {
		n := *s.Notice
		out.Notice = &n
	}
	if s.Event != nil {
		ev := *s.Event
		out.Event = &ev
	}
	if s.Flash != nil {
		f := *s.Flash
		out.Flash = &f
	}
	return out
}

// =============================================================================
// DERIVED QUERIES (read-only, for snapshots and the UI)
// =============================================================================

// UtilizationPercent is creditUsed as a share of the credit limit.
func (s State) UtilizationPercent() int {
	return int(math.Round(float64(s.Credit.CreditUsed) / float64(CreditLimit) * 100))
}

// Band returns the score band the session currently sits in.
func (s State) Band() CreditBand { return BandFor(s.Credit.Score) }

// ShopLevel is the number of owned upgrades.
func (s State) ShopLevel() int {
	n := 0
	for _, u := range s.Upgrades {
		if u.Unlocked {
			n++
		}
	}
	return n
}

// Stressed reports the low-resource "paycheck mode" condition.
func (s State) Stressed() bool {
	return s.Resources.Coins.LessThanInt(6) && s.Resources.Flour < 5
}

// MissionsDone counts completed missions this day cycle.
func (s State) MissionsDone() int {
	n := 0
	for _, m := range s.Missions {
		if m.Done {
			n++
		}
	}
	return n
}

// UnlockedRecipes counts recipes available to bake.
func (s State) UnlockedRecipes() int {
	n := 0
	for _, r := range s.Recipes {
		if !r.Locked {
			n++
		}
	}
	return n
}

func (s State) recipe(id RecipeID) *Recipe {
	for i := range s.Recipes {
		if s.Recipes[i].ID == id {
			return &s.Recipes[i]
		}
	}
	return nil
}

func (s State) upgrade(id UpgradeID) *Upgrade {
	for i := range s.Upgrades {
		if s.Upgrades[i].ID == id {
			return &s.Upgrades[i]
		}
	}
	return nil
}

func (s State) owns(id UpgradeID) bool {
	u := s.upgrade(id)
	return u != nil && u.Unlocked
}

// pendingMission finds the not-yet-done mission for an action, or nil.
func (s State) pendingMission(action MissionAction) *Mission {
	for i := range s.Missions {
		if s.Missions[i].Action == action && !s.Missions[i].Done {
			return &s.Missions[i]
		}
	}
	return nil
}

// =============================================================================
// BOUNDED APPEND HELPERS
// =============================================================================

// appendBounded appends keeping the last max entries (oldest evicted).
func appendBounded(xs []int, v, max int) []int {
	xs = append(xs, v)
	if len(xs) > max {
		xs = xs[len(xs)-max:]
	}
	return xs
}

// prependBounded inserts newest-first, keeping the first max entries.
func prependBounded(xs []string, v string, max int) []string {
	xs = append([]string{v}, xs...)
	if len(xs) > max {
		xs = xs[:max]
	}
	return xs
}

// appendShelf keeps the trailing max icons.
func appendShelf(xs []string, v string, max int) []string {
	xs = append(xs, v)
	if len(xs) > max {
		xs = xs[len(xs)-max:]
	}
	return xs
}

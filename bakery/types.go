/*
Package bakery implements the bakery simulation and credit score engine.

PURPOSE:
  A single Engine owns one aggregate session State: resources, recipes,
  concurrent bake slots, one-time upgrades, a daily mission board, a random
  event generator, and a consumer-credit model (utilization, payment
  history, a single loan with daily interest). The engine drives a UI
  through commands, snapshots, and transient notices; it performs no disk
  or network I/O of its own.

KEY CONCEPTS IN THIS FILE (types.go):
  - Recipe: immutable definition of a bakeable item (only the lock flips)
  - Upgrade / UpgradeEffect: one-time purchasable engine modifiers
  - Mission / MissionAction: goal state machine entries, reset daily
  - EventDef: a random daily perturbation, possibly insurance-blockable
  - CreditBand / loan tiers: read-only score classification tables

DESIGN PRINCIPLES:
  1. Closed variants: upgrade effects and mission actions are enumerated
     types handled exhaustively, not free-form strings
  2. Static catalogs: definitions live in catalog.go and are copied into
     each session's State, never shared mutably
  3. Run-to-completion: every mutation happens under the engine mutex and
     fully applies before any other handler observes it

SEE ALSO:
  - catalog.go: the static definition tables
  - state.go:  the aggregate session state
  - engine.go: the command surface
*/
package bakery

import "time"

// =============================================================================
// IDENTIFIERS
// =============================================================================

type RecipeID string
type UpgradeID string
type MissionID string
type EventID string

// =============================================================================
// RECIPES
// =============================================================================

// Recipe defines a bakeable item. Definitions are immutable except for
// Locked, which flips to false exactly once via a mission reward.
type Recipe struct {
	ID        RecipeID
	Name      string
	Icon      string
	FlourCost int
	Reward    int
	BaseTime  time.Duration
	Locked    bool
	Desc      string
}

// =============================================================================
// UPGRADES
// =============================================================================

// UpgradeEffect is the closed set of things an upgrade can do. Eager
// effects (customers, storage) apply at purchase time; the rest are read
// on demand by the component they modify.
type UpgradeEffect int

const (
	EffectCustomers  UpgradeEffect = iota // +Amount customers, applied at purchase
	EffectPassive                         // +Amount coins/min while owned
	EffectSpeed                           // halves effective bake time
	EffectStorage                         // +Amount max flour, applied at purchase
	EffectInsurance                       // filters blockable events out of the pool
	EffectSecondOven                      // raises bake capacity from 1 to 2
	EffectDelivery                        // +bonus coins on every completed bake
)

func (e UpgradeEffect) String() string {
	switch e {
	case EffectCustomers:
		return "customers"
	case EffectPassive:
		return "passive"
	case EffectSpeed:
		return "speed"
	case EffectStorage:
		return "storage"
	case EffectInsurance:
		return "insurance"
	case EffectSecondOven:
		return "oven2"
	case EffectDelivery:
		return "delivery"
	}
	return "unknown"
}

// Upgrade is a one-time purchasable modifier. Unlocked is one-way true.
type Upgrade struct {
	ID       UpgradeID
	Name     string
	Icon     string
	Cost     int
	Tier     int
	Effect   UpgradeEffect
	Amount   int // magnitude for customers/passive/storage effects
	Unlocked bool
	Desc     string
}

// =============================================================================
// MISSIONS
// =============================================================================

// MissionAction tags what a mission tracks. The reward dispatch in
// missions.go switches exhaustively over these.
type MissionAction string

const (
	ActionSave5     MissionAction = "save5"
	ActionResist    MissionAction = "resist"
	ActionCheck     MissionAction = "check"
	ActionSave20    MissionAction = "save20"
	ActionBudget    MissionAction = "budget"
	ActionBake3     MissionAction = "bake3"
	ActionInvest3   MissionAction = "invest3"
	ActionSave50    MissionAction = "save50"
	ActionPayOnTime MissionAction = "pay_ontime"
	ActionLowUtil   MissionAction = "low_util"
)

// MissionMode distinguishes player-confirmed missions from ones the engine
// completes itself when a derived condition first holds.
type MissionMode int

const (
	MissionManual MissionMode = iota
	MissionAuto
)

// Mission is a goal board entry. Done and BakeCount reset on day advance.
type Mission struct {
	ID         MissionID
	Text       string
	RewardText string
	Action     MissionAction
	Mode       MissionMode
	Done       bool
	BakeCount  int // progress counter, only meaningful for ActionBake3
}

// =============================================================================
// BAKERY EVENTS
// =============================================================================

// Severity classifies notices and events for display.
type Severity string

const (
	SeverityGood Severity = "good"
	SeverityBad  Severity = "bad"
)

// EventDef defines a random perturbation applied once per day advance.
// Zero-valued deltas are skipped; Blockable events are filtered out of the
// sampling pool while the insurance upgrade is owned.
type EventDef struct {
	ID        EventID
	Icon      string
	Message   string
	Severity  Severity
	Flour     int
	Coins     int
	Customers int
	Happiness int
	Blockable bool
}

// =============================================================================
// CREDIT TABLES
// =============================================================================

// CreditBand is a named score range. Band membership is the lowest
// qualifying threshold at or below the current score.
type CreditBand struct {
	Min      int
	Label    string
	OvenDesc string
}

// FlourOffer is one bulk-purchase tier in the ingredient market.
type FlourOffer struct {
	Amount int
	Price  int
}

// PayMode selects the supplier repayment policy.
type PayMode string

const (
	PayFull    PayMode = "full"
	PayPartial PayMode = "partial"
	PaySkip    PayMode = "skip"
)

/*
catalog.go - Static definition tables

PURPOSE:
  The fixed content of the simulation: recipes, upgrades, the mission
  board, the random event pool, flour offers, and the credit score tables.
  Constructor functions return fresh copies so each session mutates its own
  Locked/Unlocked/Done flags without touching the catalog.

NOTE:
  The macaron recipe has no unlock path. It represents the top of the
  progression ladder and stays locked for the whole session.
*/
package bakery

import "time"

// CreditLimit is the fixed ingredient-credit ceiling.
const CreditLimit = 800

// Score bounds. AdjustScore clamps into [ScoreFloor, ScoreCeiling].
const (
	ScoreFloor   = 300
	ScoreCeiling = 850
)

// =============================================================================
// RECIPES
// =============================================================================

// BaseRecipes returns the recipe catalog for a new session.
func BaseRecipes() []Recipe {
	return []Recipe{
		{ID: "bread", Name: "Bread Loaf", Icon: "🍞", FlourCost: 2, Reward: 4, BaseTime: 4 * time.Second, Locked: false, Desc: "Classic staple"},
		{ID: "muffin", Name: "Blueberry Muffin", Icon: "🫐", FlourCost: 3, Reward: 6, BaseTime: 5 * time.Second, Locked: true, Desc: "Customer favourite"},
		{ID: "croissant", Name: "Croissant", Icon: "🥐", FlourCost: 4, Reward: 9, BaseTime: 7 * time.Second, Locked: true, Desc: "Buttery & flaky"},
		{ID: "donut", Name: "Glazed Donut", Icon: "🍩", FlourCost: 4, Reward: 10, BaseTime: 8 * time.Second, Locked: true, Desc: "Sweet treat"},
		{ID: "cake", Name: "Strawberry Cake", Icon: "🎂", FlourCost: 6, Reward: 18, BaseTime: 12 * time.Second, Locked: true, Desc: "Special occasion"},
		{ID: "macaron", Name: "Macarons", Icon: "🪷", FlourCost: 5, Reward: 22, BaseTime: 15 * time.Second, Locked: true, Desc: "Premium tier"},
	}
}

// =============================================================================
// UPGRADES
// =============================================================================

// BaseUpgrades returns the upgrade catalog for a new session.
func BaseUpgrades() []Upgrade {
	return []Upgrade{
		{ID: "shelf", Name: "Display Shelf", Icon: "🗄️", Cost: 15, Tier: 1, Effect: EffectCustomers, Amount: 1, Desc: "+1 customer/day"},
		{ID: "sign", Name: "Neon Sign", Icon: "✨", Cost: 25, Tier: 1, Effect: EffectCustomers, Amount: 2, Desc: "+2 customers/day"},
		{ID: "coffee", Name: "Coffee Machine", Icon: "☕", Cost: 60, Tier: 2, Effect: EffectPassive, Amount: 2, Desc: "+2 coins/min passive"},
		{ID: "mixer", Name: "Stand Mixer", Icon: "🌀", Cost: 80, Tier: 2, Effect: EffectSpeed, Desc: "Halves baking time"},
		{ID: "fridge", Name: "Glass Fridge", Icon: "🧊", Cost: 120, Tier: 2, Effect: EffectStorage, Amount: 10, Desc: "+10 max flour storage"},
		{ID: "insurance", Name: "Storm Insurance", Icon: "🌂", Cost: 100, Tier: 3, Effect: EffectInsurance, Desc: "No penalty on stormy days"},
		{ID: "oven2", Name: "Second Oven", Icon: "🔥", Cost: 200, Tier: 3, Effect: EffectSecondOven, Desc: "Bake 2 items at once"},
		{ID: "delivery", Name: "Delivery Bike", Icon: "🚲", Cost: 350, Tier: 4, Effect: EffectDelivery, Desc: "+5 coins per bake"},
	}
}

// =============================================================================
// MISSIONS
// =============================================================================

// BaseMissions returns the mission board for a new session.
// Manual missions complete through the CompleteMission command (or, for
// "resist", the impulse choice); auto missions complete through the
// post-command predicate sweep; pay_ontime fires from a full supplier
// payment.
func BaseMissions() []Mission {
	return []Mission{
		{ID: "m1", Text: "Save 5 coins", RewardText: "🫐 Muffin recipe", Action: ActionSave5, Mode: MissionManual},
		{ID: "m2", Text: "Resist an impulse buy", RewardText: "+12 Flour", Action: ActionResist, Mode: MissionManual},
		{ID: "m3", Text: "Check your balance", RewardText: "+6 Coins bonus", Action: ActionCheck, Mode: MissionManual},
		{ID: "m4", Text: "Transfer 20 coins to savings", RewardText: "🥐 Croissant recipe", Action: ActionSave20, Mode: MissionManual},
		{ID: "m5", Text: "Stay under budget today", RewardText: "+3 Customers", Action: ActionBudget, Mode: MissionManual},
		{ID: "m6", Text: "Bake 3 items in one day", RewardText: "+20 Coins bonus", Action: ActionBake3, Mode: MissionAuto},
		{ID: "m7", Text: "Invest in sourdough (lvl 3+)", RewardText: "🍩 Donut recipe", Action: ActionInvest3, Mode: MissionAuto},
		{ID: "m8", Text: "Save 50 coins total", RewardText: "🎂 Cake recipe", Action: ActionSave50, Mode: MissionAuto},
		{ID: "m9", Text: "Pay supplier bill in full", RewardText: "+15 Credit Score 💳", Action: ActionPayOnTime, Mode: MissionAuto},
		{ID: "m10", Text: "Keep credit under 30% limit", RewardText: "+10 Credit Score 💳", Action: ActionLowUtil, Mode: MissionAuto},
	}
}

// =============================================================================
// EVENT POOL
// =============================================================================

// EventPool returns the random event definitions. Only the storm is
// blockable by insurance.
func EventPool() []EventDef {
	return []EventDef{
		{ID: "raccoon", Icon: "🦝", Message: "A raccoon stole your flour!", Severity: SeverityBad, Flour: -6},
		{ID: "rush", Icon: "🌟", Message: "Morning rush! Extra customers arrived!", Severity: SeverityGood, Coins: 10},
		{ID: "rain", Icon: "🌧️", Message: "Rainy day! Customers stayed home.", Severity: SeverityBad, Customers: -2},
		{ID: "sunny", Icon: "☀️", Message: "Gorgeous day! Foot traffic is up.", Severity: SeverityGood, Customers: 2},
		{ID: "delivery", Icon: "🚚", Message: "Flour delivery! +10 flour bonus.", Severity: SeverityGood, Flour: 10},
		{ID: "health", Icon: "🏥", Message: "Health inspection passed! Reputation+", Severity: SeverityGood, Happiness: 10},
		{ID: "review", Icon: "⭐", Message: "Viral review! New customers coming.", Severity: SeverityGood, Customers: 3},
		{ID: "storm", Icon: "⛈️", Message: "Storm! All customers stayed home.", Severity: SeverityBad, Customers: -4, Blockable: true},
		{ID: "mouse", Icon: "🐭", Message: "Mouse infestation! Flour contaminated.", Severity: SeverityBad, Flour: -10},
		{ID: "sale", Icon: "💸", Message: "Competitor sale! Customers sniped.", Severity: SeverityBad, Coins: -3},
	}
}

// =============================================================================
// MARKET
// =============================================================================

// FlourOffers is the bulk-purchase ladder, indexed by tier.
func FlourOffers() []FlourOffer {
	return []FlourOffer{
		{Amount: 5, Price: 4},
		{Amount: 10, Price: 7},
		{Amount: 20, Price: 12},
	}
}

// =============================================================================
// CREDIT TABLES
// =============================================================================

// creditBands is ordered highest threshold first; BandFor scans for the
// first qualifying entry.
var creditBands = []CreditBand{
	{Min: 800, Label: "Exceptional", OvenDesc: "Golden Oven — best rates!"},
	{Min: 740, Label: "Very Good", OvenDesc: "Warm Oven — near-best rates"},
	{Min: 670, Label: "Good", OvenDesc: "Steady Oven — most loans approved"},
	{Min: 580, Label: "Fair", OvenDesc: "Cooling Oven — higher interest rates"},
	{Min: 0, Label: "Poor", OvenDesc: "Cold Oven — loans denied or very costly"},
}

// Bands returns the score band ladder, highest first. Read-only.
func Bands() []CreditBand {
	out := make([]CreditBand, len(creditBands))
	copy(out, creditBands)
	return out
}

// BandFor returns the band containing the given score.
func BandFor(score int) CreditBand {
	for _, b := range creditBands {
		if score >= b.Min {
			return b
		}
	}
	return creditBands[len(creditBands)-1]
}

// LoanRateFor returns the annual interest rate a borrower with the given
// score qualifies for.
func LoanRateFor(score int) float64 {
	switch {
	case score >= 740:
		return 0.06
	case score >= 670:
		return 0.10
	case score >= 580:
		return 0.18
	default:
		return 0.25
	}
}

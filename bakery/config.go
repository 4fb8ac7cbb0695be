// Package-level tunables for one simulation session. Defaults reproduce
// the reference balance; tests shrink TTLs or swap the scheduler instead
// of editing these.
package bakery

import "time"

type Config struct {
	// Starting resources
	StartingCoins     int
	StartingFlour     int
	StartingMaxFlour  int
	StartingCustomers int
	StartingHappiness int
	StartingScore     int

	// Scheduling periods
	BakeTick      time.Duration // per-slot progress tick
	PassiveTick   time.Duration // passive income crediting
	ScoreAnimTick time.Duration // displayed-score stepping

	// Transient display lifetimes
	NoticeTTL time.Duration
	EventTTL  time.Duration
	FlashTTL  time.Duration

	// Bounded history lengths
	HistoryLen int // coin/flour day histories
	ShelfLen   int // pastry display shelf
	LogLen     int // activity and credit logs

	// Economy
	IncomePerCustomer     int
	IncomeJitter          int // daily income adds uniform [0, IncomeJitter]
	DailyFlourRefill      int
	DeliveryBonus         int
	SourdoughRatePerLevel float64 // coins/min per investment level

	// Impulse splurge penalties
	ImpulseCoinCost  int
	ImpulseFlourCost int
	ImpulseHappyCost int
}

func DefaultConfig() Config {
	return Config{
		StartingCoins:     20,
		StartingFlour:     18,
		StartingMaxFlour:  40,
		StartingCustomers: 3,
		StartingHappiness: 72,
		StartingScore:     650,

		BakeTick:      100 * time.Millisecond,
		PassiveTick:   time.Second,
		ScoreAnimTick: 14 * time.Millisecond,

		NoticeTTL: 3800 * time.Millisecond,
		EventTTL:  4 * time.Second,
		FlashTTL:  3 * time.Second,

		HistoryLen: 14,
		ShelfLen:   10,
		LogLen:     40,

		IncomePerCustomer:     3,
		IncomeJitter:          5,
		DailyFlourRefill:      3,
		DeliveryBonus:         5,
		SourdoughRatePerLevel: 0.6,

		ImpulseCoinCost:  28,
		ImpulseFlourCost: 4,
		ImpulseHappyCost: 15,
	}
}

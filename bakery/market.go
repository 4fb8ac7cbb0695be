/*
market.go - Purchases, investment, and the impulse test

PURPOSE:
  The market-facing commands: buying flour in bulk tiers, buying one-time
  upgrades, feeding the sourdough investment, and resolving the impulse
  temptation. Also owns the passive-income schedule, which is fully
  replaced (cancel then reschedule) whenever the rate changes so credits
  never stack.
*/
package bakery

import "fmt"

// BuyFlour purchases the given bulk tier. Rejects when coins are short or
// when the purchase would overflow storage (no partial fill).
func (e *Engine) BuyFlour(tier int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrSessionClosed
	}

	offers := FlourOffers()
	if tier < 0 || tier >= len(offers) {
		return ErrInvalidTarget
	}
	offer := offers[tier]

	if e.st.Resources.Coins.LessThanInt(offer.Price) {
		e.notifyLocked("Not enough coins!", SeverityBad)
		return &InsufficientFundsError{Resource: "coins", Need: offer.Price, Have: e.st.Resources.Coins.Floor()}
	}
	if e.st.Resources.Flour+offer.Amount > e.st.Resources.MaxFlour {
		e.notifyLocked("Storage full! Buy the Glass Fridge.", SeverityBad)
		return &CapacityError{Resource: "storage", Limit: e.st.Resources.MaxFlour}
	}

	e.st.Resources.Coins = e.st.Resources.Coins.SubInt(offer.Price)
	e.st.Resources.Flour += offer.Amount

	e.logLocked(fmt.Sprintf("🌾 Bought %d flour for %d coins", offer.Amount, offer.Price))
	e.notifyLocked(fmt.Sprintf("+%d flour!", offer.Amount), SeverityGood)
	e.checkAutoMissionsLocked()
	return nil
}

// BuyUpgrade purchases a one-time upgrade: debits the cost and flips the
// unlocked flag atomically. Already-owned or unknown upgrades are a
// silent no-op.
func (e *Engine) BuyUpgrade(id UpgradeID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrSessionClosed
	}

	u := e.st.upgrade(id)
	if u == nil || u.Unlocked {
		return ErrInvalidTarget
	}
	if e.st.Resources.Coins.LessThanInt(u.Cost) {
		e.notifyLocked("Not enough coins!", SeverityBad)
		return &InsufficientFundsError{Resource: "coins", Need: u.Cost, Have: e.st.Resources.Coins.Floor()}
	}

	e.st.Resources.Coins = e.st.Resources.Coins.SubInt(u.Cost)
	u.Unlocked = true

	// Eager effects apply now; speed, insurance, oven2 and delivery are
	// read on demand by the components they modify.
	switch u.Effect {
	case EffectCustomers:
		e.st.Resources.Customers += u.Amount
	case EffectStorage:
		e.st.Resources.MaxFlour += u.Amount
	case EffectPassive:
		e.refreshPassiveLocked()
	case EffectSpeed, EffectInsurance, EffectSecondOven, EffectDelivery:
	}

	e.logLocked(fmt.Sprintf("🎉 Purchased: %s %s", u.Icon, u.Name))
	e.notifyLocked(fmt.Sprintf("%s %s unlocked!", u.Icon, u.Name), SeverityGood)
	e.checkAutoMissionsLocked()
	return nil
}

// FeedInvestment moves coins into the sourdough investment: the level
// rises by one, the amount counts toward savings, and the passive rate is
// re-derived.
func (e *Engine) FeedInvestment(amount int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrSessionClosed
	}
	if amount <= 0 {
		return ErrInvalidTarget
	}
	if e.st.Resources.Coins.LessThanInt(amount) {
		e.notifyLocked("Not enough coins!", SeverityBad)
		return &InsufficientFundsError{Resource: "coins", Need: amount, Have: e.st.Resources.Coins.Floor()}
	}

	e.st.Resources.Coins = e.st.Resources.Coins.SubInt(amount)
	e.st.SourdoughLevel++
	e.st.Resources.Savings = e.st.Resources.Savings.AddInt(amount)
	e.refreshPassiveLocked()

	rate := e.passiveRateLocked()
	e.logLocked(fmt.Sprintf("🍞 Invested %d coins → Sourdough Level %d", amount, e.st.SourdoughLevel))
	e.notifyLocked(fmt.Sprintf("Sourdough Lv%d! %s coins/min 📈", e.st.SourdoughLevel, rate.Value.StringFixed(1)), SeverityGood)
	e.checkAutoMissionsLocked()
	return nil
}

// TriggerImpulseChoice resolves the temptation prompt. Resisting completes
// the "resist" mission and lifts happiness; splurging drains coins, flour
// and happiness, all floored at their minimums.
func (e *Engine) TriggerImpulseChoice(resist bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrSessionClosed
	}

	res := &e.st.Resources
	if resist {
		e.completeMissionLocked(ActionResist)
		res.Happiness = clampInt(res.Happiness+8, 0, 100)
		e.notifyLocked("💪 Resisted! Flour protected.", SeverityGood)
	} else {
		res.Coins = res.Coins.SubInt(e.cfg.ImpulseCoinCost).FloorZero()
		res.Flour = clampInt(res.Flour-e.cfg.ImpulseFlourCost, 0, res.MaxFlour)
		res.Happiness = clampInt(res.Happiness-e.cfg.ImpulseHappyCost, 0, 100)
		e.logLocked(fmt.Sprintf("💸 Impulse buy: Fancy Gadget (-%d coins, -%d flour)", e.cfg.ImpulseCoinCost, e.cfg.ImpulseFlourCost))
		e.notifyLocked(fmt.Sprintf("🦝 Raccoon strikes! -%d coins, -%d flour", e.cfg.ImpulseCoinCost, e.cfg.ImpulseFlourCost), SeverityBad)
	}
	e.checkAutoMissionsLocked()
	return nil
}

// =============================================================================
// PASSIVE INCOME
// =============================================================================

// PassiveRate returns the current coins/minute from investment and owned
// upgrades.
func (e *Engine) PassiveRate() Coins {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.passiveRateLocked()
}

func (e *Engine) passiveRateLocked() Coins {
	rate := NewCoins(e.cfg.SourdoughRatePerLevel).MulInt(e.st.SourdoughLevel)
	for _, u := range e.st.Upgrades {
		if u.Unlocked && u.Effect == EffectPassive {
			rate = rate.AddInt(u.Amount)
		}
	}
	return rate
}

// refreshPassiveLocked replaces the passive-income schedule with one
// matching the current rate. The prior schedule is cancelled first so two
// schedules can never credit concurrently.
func (e *Engine) refreshPassiveLocked() {
	if e.passiveTask != nil {
		e.passiveTask.Cancel()
		e.passiveTask = nil
	}

	rate := e.passiveRateLocked()
	if rate.IsZero() {
		return
	}
	perTick := rate.DivInt(60)
	sourPerTick := NewCoins(e.cfg.SourdoughRatePerLevel).MulInt(e.st.SourdoughLevel).DivInt(60)

	e.passiveTask = e.clock.Every(e.cfg.PassiveTick, func() { e.passiveTick(perTick, sourPerTick) })
}

func (e *Engine) passiveTick(perTick, sourPerTick Coins) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.st.Resources.Coins = e.st.Resources.Coins.Add(perTick)
	e.st.SourdoughEarned = e.st.SourdoughEarned.Add(sourPerTick)
}

/*
credit.go - The consumer-credit engine

PURPOSE:
  Models an ingredient credit line (limit 800), a bounded score, supplier
  debt with three repayment policies, an emergency fund, and a single-slot
  loan with daily interest (accrued by the day cycle, never at issuance).

CRITICAL INVARIANTS:
  1. CreditUsed == SupplierDebt after any sequence of borrows; the two move
     in lockstep through borrow/pay only.
  2. Score stays in [300, 850]; it is only ever adjusted by a delta and
     clamped, never assigned.
  3. Every score change is logged with its signed delta and reason, appends
     to the score history, and raises a time-boxed flash.

SEE ALSO:
  - day.go: daily loan interest accrual
  - catalog.go: band table and loan rate tiers
*/
package bakery

import (
	"fmt"
	"math"
)

// adjustScoreLocked applies a clamped delta, records it everywhere, and
// kicks the display-score animation.
func (e *Engine) adjustScoreLocked(delta int, reason string) {
	next := clampInt(e.st.Credit.Score+delta, ScoreFloor, ScoreCeiling)
	e.st.Credit.Score = next
	e.st.Credit.ScoreHistory = append(e.st.Credit.ScoreHistory, next)

	arrow := "📉"
	sign := ""
	if delta > 0 {
		arrow = "📈"
		sign = "+"
	}
	e.creditLogLocked(fmt.Sprintf("%s %s%d pts: %s → %d", arrow, sign, delta, reason, next))

	e.st.Flash = &ScoreFlash{Delta: delta, Reason: reason}
	e.flashGen++
	gen := e.flashGen
	if e.flashTask != nil {
		e.flashTask.Cancel()
	}
	e.flashTask = e.clock.After(e.cfg.FlashTTL, func() { e.expireFlash(gen) })

	e.startScoreAnimLocked()
}

func (e *Engine) expireFlash(gen int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || gen != e.flashGen {
		return
	}
	e.st.Flash = nil
	e.flashTask = nil
}

// =============================================================================
// SCORE ANIMATION
// =============================================================================

// startScoreAnimLocked ensures one stepping schedule is live. The schedule
// steps DisplayScore by one point per tick toward Score and cancels itself
// when the two meet; a target change mid-animation just keeps it running.
func (e *Engine) startScoreAnimLocked() {
	if e.animTask != nil {
		return
	}
	e.animTask = e.clock.Every(e.cfg.ScoreAnimTick, e.stepScoreAnim)
}

func (e *Engine) stepScoreAnim() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	cr := &e.st.Credit
	if cr.DisplayScore == cr.Score {
		if e.animTask != nil {
			e.animTask.Cancel()
			e.animTask = nil
		}
		return
	}
	if cr.DisplayScore < cr.Score {
		cr.DisplayScore++
	} else {
		cr.DisplayScore--
	}
}

// =============================================================================
// CREDIT COMMANDS
// =============================================================================

// Borrow draws on the ingredient credit line: coins, creditUsed and
// supplierDebt all rise by the amount. Utilization above 30% or 70% of
// the limit costs score immediately.
func (e *Engine) Borrow(amount int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrSessionClosed
	}
	if amount <= 0 {
		return ErrInvalidTarget
	}
	if e.st.Credit.CreditUsed+amount > CreditLimit {
		e.notifyLocked("Over credit limit!", SeverityBad)
		return &CapacityError{Resource: "credit", Limit: CreditLimit}
	}

	e.st.Credit.CreditUsed += amount
	e.st.Credit.SupplierDebt += amount
	e.earnLocked(CoinsFromInt(amount))

	util := float64(e.st.Credit.CreditUsed) / float64(CreditLimit) * 100
	switch {
	case util > 70:
		e.adjustScoreLocked(-15, fmt.Sprintf("High utilization (%d%%)", int(math.Round(util))))
	case util > 30:
		e.adjustScoreLocked(-5, fmt.Sprintf("Moderate utilization (%d%%)", int(math.Round(util))))
	}

	e.creditLogLocked(fmt.Sprintf("💳 Borrowed %d coins on credit. Utilization: %d%%", amount, int(math.Round(util))))
	sev := SeverityGood
	if util > 70 {
		sev = SeverityBad
	}
	e.notifyLocked(fmt.Sprintf("💳 Borrowed %d coins. %d%% of limit used.", amount, int(math.Round(util))), sev)

	e.checkAutoMissionsLocked()
	return nil
}

// PaySupplier settles the outstanding bill under one of three policies.
// With no debt outstanding it is a no-op with a friendly notice.
func (e *Engine) PaySupplier(mode PayMode) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrSessionClosed
	}

	bill := e.st.Credit.SupplierDebt
	if bill == 0 {
		e.notifyLocked("No outstanding debt!", SeverityGood)
		return nil
	}

	switch mode {
	case PayFull:
		if e.st.Resources.Coins.LessThanInt(bill) {
			e.notifyLocked("Not enough coins!", SeverityBad)
			return &InsufficientFundsError{Resource: "coins", Need: bill, Have: e.st.Resources.Coins.Floor()}
		}
		e.st.Resources.Coins = e.st.Resources.Coins.SubInt(bill)
		e.st.Credit.CreditUsed = maxInt(0, e.st.Credit.CreditUsed-bill)
		e.st.Credit.SupplierDebt = 0
		e.adjustScoreLocked(20, "Paid supplier in full!")
		e.completeMissionLocked(ActionPayOnTime)
		e.creditLogLocked(fmt.Sprintf("✅ Paid full bill: %d coins", bill))
		e.notifyLocked("✅ Paid in full! +20 credit score.", SeverityGood)

	case PayPartial:
		half := (bill + 1) / 2
		if e.st.Resources.Coins.LessThanInt(half) {
			e.notifyLocked("Not enough coins!", SeverityBad)
			return &InsufficientFundsError{Resource: "coins", Need: half, Have: e.st.Resources.Coins.Floor()}
		}
		e.st.Resources.Coins = e.st.Resources.Coins.SubInt(half)
		e.st.Credit.CreditUsed = maxInt(0, e.st.Credit.CreditUsed-half)
		e.st.Credit.SupplierDebt -= half
		e.adjustScoreLocked(-8, "Partial payment")
		e.creditLogLocked(fmt.Sprintf("⚠️ Partial payment: %d of %d coins", half, bill))
		e.notifyLocked("⚠️ Partial pay. -8 score. Balance rolls over.", SeverityBad)

	case PaySkip:
		// No funds movement. The bill persists indefinitely; there is no
		// aging or write-off policy.
		e.adjustScoreLocked(-35, "Missed payment!")
		e.creditLogLocked(fmt.Sprintf("🚨 Missed payment of %d coins!", bill))
		e.notifyLocked("🚨 Missed payment! -35 credit score!", SeverityBad)

	default:
		return ErrInvalidTarget
	}

	e.checkAutoMissionsLocked()
	return nil
}

// TakeLoan issues the single expansion loan at the rate the current score
// qualifies for. Interest accrues only via the day cycle.
func (e *Engine) TakeLoan(amount int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrSessionClosed
	}
	if amount <= 0 {
		return ErrInvalidTarget
	}
	if e.st.Credit.LoanBalance > 0 {
		e.notifyLocked("Already have an active loan!", SeverityBad)
		return &CapacityError{Resource: "loan", Limit: 1}
	}

	rate := LoanRateFor(e.st.Credit.Score)
	e.st.Credit.LoanBalance = amount
	e.st.Credit.LoanRate = rate
	e.earnLocked(CoinsFromInt(amount))
	e.adjustScoreLocked(-10, "New credit inquiry")

	projected := int(math.Round(float64(amount) * rate))
	e.creditLogLocked(fmt.Sprintf("🏦 Loan: %d coins @ %d%% (%d total interest)", amount, int(math.Round(rate*100)), projected))
	sev := SeverityBad
	if rate < 0.15 {
		sev = SeverityGood
	}
	e.notifyLocked(fmt.Sprintf("🏦 Loan approved @ %d%% interest. Total cost: %d coins.", int(math.Round(rate*100)), projected), sev)

	e.checkAutoMissionsLocked()
	return nil
}

// SaveToEmergencyFund moves coins into the safety cushion for a small
// score reward.
func (e *Engine) SaveToEmergencyFund(amount int) error {
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
	e.st.Credit.EmergencyFund = e.st.Credit.EmergencyFund.AddInt(amount)
	e.adjustScoreLocked(3, "Building emergency fund")
	e.creditLogLocked(fmt.Sprintf("🏦 Added %d to emergency fund", amount))
	e.notifyLocked(fmt.Sprintf("+%d to emergency fund! +3 score.", amount), SeverityGood)

	e.checkAutoMissionsLocked()
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

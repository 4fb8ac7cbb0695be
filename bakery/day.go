/*
day.go - End-of-day cycle

PURPOSE:
  AdvanceDay is the explicit day boundary: it books customer income, tops
  up flour, resets daily mission progress, accrues loan interest, records
  the day's closing resource levels, and rolls a random overnight event.

DESIGN:
  The order matters. Income and flour land before the event so event
  deltas apply to the new day's balances, matching what the activity log
  reports. Interest is rounded per day (annual rate / 365) and can never
  push coins negative.
*/
package bakery

import (
	"fmt"
	"math"
)

// AdvanceDay closes out the current day and opens the next one.
func (e *Engine) AdvanceDay() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrSessionClosed
	}

	income := e.st.Resources.Customers*e.cfg.IncomePerCustomer + e.rng.Intn(e.cfg.IncomeJitter+1)
	e.earnLocked(CoinsFromInt(income))

	e.st.Resources.Flour = clampInt(e.st.Resources.Flour+e.cfg.DailyFlourRefill, 0, e.st.Resources.MaxFlour)

	e.st.Day++
	e.st.BakesToday = 0
	for i := range e.st.Missions {
		e.st.Missions[i].Done = false
		e.st.Missions[i].BakeCount = 0
	}

	e.logLocked(fmt.Sprintf("🌅 Day %d! Earned %d coins from %d customers.", e.st.Day, income, e.st.Resources.Customers))
	e.notifyLocked(fmt.Sprintf("🌅 Day %d! +%d coins from customers.", e.st.Day, income), SeverityGood)

	// Histories chart the morning balance; interest lands after.
	e.st.CoinHistory = appendBounded(e.st.CoinHistory, e.st.Resources.Coins.Round(), e.cfg.HistoryLen)
	e.st.FlourHistory = appendBounded(e.st.FlourHistory, e.st.Resources.Flour, e.cfg.HistoryLen)

	e.accrueLoanInterestLocked()

	e.triggerEventLocked()
	e.checkAutoMissionsLocked()
	return nil
}

// accrueLoanInterestLocked debits one day of loan interest. Coins floor
// at zero; the shortfall is forgiven rather than compounded.
func (e *Engine) accrueLoanInterestLocked() {
	cr := &e.st.Credit
	if cr.LoanBalance <= 0 {
		return
	}
	daily := int(math.Round(float64(cr.LoanBalance) * cr.LoanRate / 365))
	// The -0 line still lands in the credit log while a loan is active.
	e.creditLogLocked(fmt.Sprintf("💸 Daily loan interest: -%d coins", daily))
	if daily <= 0 {
		return
	}
	e.st.Resources.Coins = e.st.Resources.Coins.SubInt(daily).FloorZero()
	cr.TotalInterest = cr.TotalInterest.AddInt(daily)
}

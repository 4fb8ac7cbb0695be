/*
events.go - Overnight events

PURPOSE:
  Each day boundary draws one event from the fixed pool and applies its
  resource deltas with the usual clamps. Insurance filters blockable
  events out of the draw entirely, it does not soften their effect.
*/
package bakery

import "fmt"

func (e *Engine) triggerEventLocked() {
	pool := EventPool()
	if e.st.owns("insurance") {
		filtered := pool[:0:0]
		for _, ev := range pool {
			if !ev.Blockable {
				filtered = append(filtered, ev)
			}
		}
		pool = filtered
	}
	if len(pool) == 0 {
		return
	}
	ev := pool[e.rng.Intn(len(pool))]

	if ev.Flour != 0 {
		e.st.Resources.Flour = clampInt(e.st.Resources.Flour+ev.Flour, 0, e.st.Resources.MaxFlour)
	}
	if ev.Coins > 0 {
		e.earnLocked(CoinsFromInt(ev.Coins))
	} else if ev.Coins < 0 {
		e.st.Resources.Coins = e.st.Resources.Coins.SubInt(-ev.Coins).FloorZero()
	}
	if ev.Customers != 0 {
		e.st.Resources.Customers = maxInt(1, e.st.Resources.Customers+ev.Customers)
	}
	if ev.Happiness != 0 {
		e.st.Resources.Happiness = clampInt(e.st.Resources.Happiness+ev.Happiness, 0, 100)
	}

	evCopy := ev
	e.st.Event = &evCopy
	e.eventGen++
	gen := e.eventGen
	if e.eventTask != nil {
		e.eventTask.Cancel()
	}
	e.eventTask = e.clock.After(e.cfg.EventTTL, func() { e.expireEvent(gen) })

	e.logLocked(fmt.Sprintf("%s %s", ev.Icon, ev.Message))
}

func (e *Engine) expireEvent(gen int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || gen != e.eventGen {
		return
	}
	e.st.Event = nil
	e.eventTask = nil
}

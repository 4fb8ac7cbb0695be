/*
baking.go - Concurrent bake slots

STATE MACHINE (per slot):
  Empty -> Baking(progress 0..100) -> Completed (slot removed)

  Flour is reserved up front at StartBake, not on completion. Each slot
  owns its own tick source; completing a slot cancels exactly that source
  and never touches sibling bakes. Progress is tick-counted (ticksDone of
  ticksTotal) so a bake of N seconds completes after exactly N seconds of
  ticking regardless of float accumulation.
*/
package bakery

import "fmt"

// StartBake begins baking a recipe in a free slot.
//
// Rejections: unknown or locked recipe (silent); ovens full or flour short
// (a "bad" notice is surfaced). On success flour is debited immediately
// and a new slot with a fresh monotonic id starts ticking.
func (e *Engine) StartBake(id RecipeID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrSessionClosed
	}

	recipe := e.st.recipe(id)
	if recipe == nil || recipe.Locked {
		return ErrInvalidTarget
	}

	capacity := 1
	if e.st.owns("oven2") {
		capacity = 2
	}
	if len(e.st.Slots) >= capacity {
		e.notifyLocked("Ovens are full!", SeverityBad)
		return &CapacityError{Resource: "ovens", Limit: capacity}
	}

	if e.st.Resources.Flour < recipe.FlourCost {
		e.notifyLocked("Not enough flour! Buy more in Market.", SeverityBad)
		return &InsufficientFundsError{Resource: "flour", Need: recipe.FlourCost, Have: e.st.Resources.Flour}
	}

	e.st.Resources.Flour -= recipe.FlourCost

	duration := recipe.BaseTime
	if e.st.owns("mixer") {
		duration /= 2
	}
	ticksTotal := int(duration / e.cfg.BakeTick)
	if ticksTotal < 1 {
		ticksTotal = 1
	}

	slotID := e.nextSlotID
	e.nextSlotID++
	e.st.Slots = append(e.st.Slots, BakeSlot{
		ID:         slotID,
		RecipeID:   recipe.ID,
		ticksTotal: ticksTotal,
	})

	e.logLocked(fmt.Sprintf("🥣 Started baking %s...", recipe.Name))
	e.slotTasks[slotID] = e.clock.Every(e.cfg.BakeTick, func() { e.bakeTick(slotID) })
	return nil
}

// bakeTick advances one slot by one tick and completes it at 100.
func (e *Engine) bakeTick(slotID int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	idx := -1
	for i := range e.st.Slots {
		if e.st.Slots[i].ID == slotID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	slot := &e.st.Slots[idx]
	slot.ticksDone++
	slot.Progress = float64(slot.ticksDone) / float64(slot.ticksTotal) * 100
	if slot.Progress > 100 {
		slot.Progress = 100
	}
	if slot.ticksDone < slot.ticksTotal {
		return
	}

	e.completeBakeLocked(idx)
}

// completeBakeLocked cancels the slot's tick source, pays the reward once,
// and removes the slot.
func (e *Engine) completeBakeLocked(idx int) {
	slot := e.st.Slots[idx]
	if t, ok := e.slotTasks[slot.ID]; ok {
		t.Cancel()
		delete(e.slotTasks, slot.ID)
	}

	recipe := e.st.recipe(slot.RecipeID)

	reward := recipe.Reward
	if e.st.owns("delivery") {
		reward += e.cfg.DeliveryBonus
	}
	e.earnLocked(CoinsFromInt(reward))

	e.st.PastryShelf = appendShelf(e.st.PastryShelf, recipe.Icon, e.cfg.ShelfLen)
	e.st.Slots = append(e.st.Slots[:idx], e.st.Slots[idx+1:]...)
	e.st.BakesToday++

	if m := e.st.pendingMission(ActionBake3); m != nil {
		m.BakeCount++
	}

	e.logLocked(fmt.Sprintf("%s %s sold! +%d coins", recipe.Icon, recipe.Name, reward))
	e.notifyLocked(fmt.Sprintf("%s %s → +%d coins!", recipe.Icon, recipe.Name, reward), SeverityGood)

	e.checkAutoMissionsLocked()
}

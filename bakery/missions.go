/*
missions.go - Goal state machine

COMPLETION MODES:
  - Manual: the CompleteMission command (player-confirmed). The impulse
    choice routes "resist" through the same path.
  - Auto: checkAutoMissionsLocked, the explicit post-command hook, fires a
    mission the first time its predicate holds within a day cycle.
    pay_ontime is fired directly by a full supplier payment.

  Completion is idempotent: a second attempt for an already-done action is
  a no-op, and reward side effects apply exactly once per day cycle.
*/
package bakery

import "fmt"

// CompleteMission marks a manual mission done and applies its reward.
// Auto-tracked missions are rejected (the UI never offers them); an
// already-done or unknown action is a silent no-op.
func (e *Engine) CompleteMission(action MissionAction) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrSessionClosed
	}

	m := e.st.pendingMission(action)
	if m == nil || m.Mode != MissionManual {
		return ErrInvalidTarget
	}
	e.completeMissionLocked(action)
	e.checkAutoMissionsLocked()
	return nil
}

// completeMissionLocked is the shared completion path. It is a no-op when
// no pending mission carries the action.
func (e *Engine) completeMissionLocked(action MissionAction) {
	m := e.st.pendingMission(action)
	if m == nil {
		return
	}
	m.Done = true

	e.logLocked(fmt.Sprintf("✅ Mission: %q → %s", m.Text, m.RewardText))
	e.notifyLocked(fmt.Sprintf("🏆 Mission done! %s", m.RewardText), SeverityGood)

	e.applyMissionRewardLocked(action)
}

// applyMissionRewardLocked dispatches the fixed reward per action.
// Exhaustive over MissionAction.
func (e *Engine) applyMissionRewardLocked(action MissionAction) {
	res := &e.st.Resources
	switch action {
	case ActionSave5:
		res.Savings = res.Savings.AddInt(5)
		res.Flour = clampInt(res.Flour+5, 0, res.MaxFlour)
		e.unlockRecipeLocked("muffin")
	case ActionResist:
		res.Flour = clampInt(res.Flour+12, 0, res.MaxFlour)
		res.Happiness = clampInt(res.Happiness+10, 0, 100)
	case ActionCheck:
		e.earnLocked(CoinsFromInt(6))
	case ActionSave20:
		res.Savings = res.Savings.AddInt(20)
		e.unlockRecipeLocked("croissant")
	case ActionBudget:
		res.Customers += 3
		res.Happiness = clampInt(res.Happiness+12, 0, 100)
	case ActionBake3:
		e.earnLocked(CoinsFromInt(20))
	case ActionInvest3:
		e.unlockRecipeLocked("donut")
	case ActionSave50:
		e.unlockRecipeLocked("cake")
	case ActionPayOnTime:
		e.adjustScoreLocked(15, "Paid supplier on time (mission bonus)")
	case ActionLowUtil:
		e.adjustScoreLocked(10, "Kept utilization under 30% (mission bonus)")
	}
}

func (e *Engine) unlockRecipeLocked(id RecipeID) {
	if r := e.st.recipe(id); r != nil {
		r.Locked = false
	}
}

// checkAutoMissionsLocked re-evaluates the automatic-mission predicates
// against current state. Called after every mutating command; each
// predicate can fire at most once per day cycle because completion marks
// the mission done until the next day reset.
func (e *Engine) checkAutoMissionsLocked() {
	if m := e.st.pendingMission(ActionBake3); m != nil && m.BakeCount >= 3 {
		e.completeMissionLocked(ActionBake3)
	}
	if e.st.Resources.Savings.AtLeastInt(50) {
		e.completeMissionLocked(ActionSave50)
	}
	if e.st.SourdoughLevel >= 3 {
		e.completeMissionLocked(ActionInvest3)
	}
	util := float64(e.st.Credit.CreditUsed) / float64(CreditLimit) * 100
	if util > 0 && util <= 30 {
		e.completeMissionLocked(ActionLowUtil)
	}
}

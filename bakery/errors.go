/*
errors.go - Centralized rejection types for the engine

PURPOSE:
  Every command failure is a recoverable, local rejection: the command is a
  no-op and state is untouched. The taxonomy mirrors the three ways a
  command can be refused. Callers that only care about success may ignore
  the returned error; the engine has already surfaced any player-facing
  notice itself.

ERROR CATEGORIES:
  1. InsufficientFunds - coins or flour too low for the requested action
  2. CapacityExceeded  - ovens full, storage full, credit limit, active loan
  3. InvalidTarget     - unknown/locked recipe, owned upgrade, done mission

USAGE:
  if err := eng.StartBake("croissant"); errors.Is(err, bakery.ErrInsufficientFunds) {
      // the engine already emitted the "bad" notice
  }
*/
package bakery

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInsufficientFunds is returned when coins or flour cannot cover the
	// requested action. A "bad" notice is surfaced.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrCapacityExceeded is returned when a bounded resource is full:
	// bake slots, flour storage, the credit limit, or the single loan slot.
	// A "bad" notice is surfaced.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInvalidTarget is returned for actions the UI should not have
	// offered: locked recipes, owned upgrades, done missions. Silent.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrSessionClosed is returned by commands after Close.
	ErrSessionClosed = errors.New("session closed")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InsufficientFundsError reports what was short and by how much.
type InsufficientFundsError struct {
	Resource string // "coins" or "flour"
	Need     int
	Have     int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient %s: need %d, have %d", e.Resource, e.Need, e.Have)
}

func (e *InsufficientFundsError) Unwrap() error { return ErrInsufficientFunds }

// CapacityError reports which bounded resource was full.
type CapacityError struct {
	Resource string // "ovens", "storage", "credit", "loan"
	Limit    int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s at capacity (limit %d)", e.Resource, e.Limit)
}

func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsRejection reports whether err is any of the recoverable command
// rejections, as opposed to a lifecycle error.
func IsRejection(err error) bool {
	return errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrCapacityExceeded) ||
		errors.Is(err, ErrInvalidTarget)
}

package guardrail

import (
	"fmt"

	"github.com/mesh-intelligence/captable/pkg/types"
)

// Validate checks a proposed contribution against the current cap-table
// state. The four checks run in a fixed order and the first failure
// wins, so the same violation fires for the same state regardless of
// how many rules it breaks:
//
//  1. owner stake at or above the owner minimum
//  2. platform stake at or below the platform cap
//  3. proposed ask within the per-contribution bounds
//  4. reserve large enough to fund the ask
//
// Returns nil or one of the Violation kinds. Pure: no side effects, so
// it is safe to call as a dry run before committing.
// Implements: prd002-guardrails R2.
func Validate(state types.CapTableState, proposed types.BasisPoints, cfg types.Guardrails) error {
	if state.Owner < cfg.OwnerMin {
		return &OwnerBelowMinimum{Current: state.Owner, Min: cfg.OwnerMin}
	}
	if state.Platform > cfg.PlatformCap {
		return &PlatformAboveCap{Current: state.Platform, Cap: cfg.PlatformCap}
	}
	if proposed < cfg.ContributionMin || proposed > cfg.ContributionMax {
		return &ContributionOutOfBounds{Value: proposed, Min: cfg.ContributionMin, Max: cfg.ContributionMax}
	}
	if state.Reserve < proposed {
		return &InsufficientReserve{Available: state.Reserve, Requested: proposed}
	}
	return nil
}

// ValidateSplit checks a project's baseline owner/platform/reserve
// split at configuration time. The floor and ceiling are hard business
// rules, not configurable, and the sum check is exact: these are three
// caller-supplied numbers, not an accumulated total.
// Returns nil or a *ConfigError.
// Implements: prd002-guardrails R4.
func ValidateSplit(owner, platform, reserve types.BasisPoints) error {
	if owner < types.OwnerFloor {
		return &ConfigError{Reason: fmt.Sprintf("owner share %s is below the floor %s", owner, types.OwnerFloor)}
	}
	if platform > types.PlatformCeiling {
		return &ConfigError{Reason: fmt.Sprintf("platform share %s is above the ceiling %s", platform, types.PlatformCeiling)}
	}
	if reserve < 0 {
		return &ConfigError{Reason: fmt.Sprintf("reserve share %s is negative", reserve)}
	}
	if total := owner + platform + reserve; total != types.WholeShare {
		return &ConfigError{Reason: fmt.Sprintf("shares sum to %s, not %s", total, types.WholeShare)}
	}
	return nil
}

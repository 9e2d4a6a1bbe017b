package guardrail

import (
	"github.com/mesh-intelligence/captable/pkg/types"
)

// Suggestion formula constants, in percentage points.
const (
	// DefaultBaseRate is the starting percentage before bonuses.
	DefaultBaseRate = 0.5

	// SuggestFloor and SuggestCeiling clamp the final suggestion. They
	// match the default per-contribution bounds, so an unmodified
	// suggestion always passes the bounds check.
	SuggestFloor   = 0.5
	SuggestCeiling = 5.0

	// effortDivisor scales effort into a bonus; effortBonusCap limits
	// how much a very large effort claim can add.
	effortDivisor  = 20.0
	effortBonusCap = 2.0

	// impactMidpoint centers the impact bonus: below-average impact
	// reduces the suggestion, above-average increases it.
	impactMidpoint = 3
	impactStep     = 0.5
)

// Suggest maps (effort, impact) to a proposed equity grant using the
// default base rate. Advisory only: an approver may override the
// proposal, and whatever value is actually submitted is re-validated at
// approval time.
// Implements: prd002-guardrails R5.
func Suggest(effort float64, impact int) (types.BasisPoints, error) {
	return SuggestWithBase(effort, impact, DefaultBaseRate)
}

// SuggestWithBase is Suggest with an explicit base rate in percentage
// points. The result is clamped to [SuggestFloor, SuggestCeiling] and
// rounded to the nearest basis point.
func SuggestWithBase(effort float64, impact int, baseRate float64) (types.BasisPoints, error) {
	if effort < 0 {
		return 0, types.ErrInvalidEffort
	}
	if impact < 1 || impact > 5 {
		return 0, types.ErrInvalidImpact
	}

	effortBonus := effort / effortDivisor
	if effortBonus > effortBonusCap {
		effortBonus = effortBonusCap
	}
	impactBonus := float64(impact-impactMidpoint) * impactStep

	raw := baseRate + effortBonus + impactBonus
	if raw < SuggestFloor {
		raw = SuggestFloor
	}
	if raw > SuggestCeiling {
		raw = SuggestCeiling
	}
	return types.FromPercent(raw), nil
}

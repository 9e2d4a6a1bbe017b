package guardrail

import (
	"fmt"

	"github.com/mesh-intelligence/captable/pkg/types"
)

// Violation is the closed set of guardrail rejections. Each kind
// carries the offending numbers as fields so callers can render precise
// messages; the Error strings here are a default presentation, not the
// contract.
// Implements: prd002-guardrails R3 (structured violations).
type Violation interface {
	error
	violation()
}

// OwnerBelowMinimum reports an owner stake under the project floor.
type OwnerBelowMinimum struct {
	Current types.BasisPoints
	Min     types.BasisPoints
}

func (e *OwnerBelowMinimum) Error() string {
	return fmt.Sprintf("owner equity %s is below the minimum %s", e.Current, e.Min)
}

func (e *OwnerBelowMinimum) violation() {}

// PlatformAboveCap reports a platform stake over the project cap.
type PlatformAboveCap struct {
	Current types.BasisPoints
	Cap     types.BasisPoints
}

func (e *PlatformAboveCap) Error() string {
	return fmt.Sprintf("platform equity %s is above the cap %s", e.Current, e.Cap)
}

func (e *PlatformAboveCap) violation() {}

// ContributionOutOfBounds reports an equity ask outside the configured
// per-contribution range.
type ContributionOutOfBounds struct {
	Value types.BasisPoints
	Min   types.BasisPoints
	Max   types.BasisPoints
}

func (e *ContributionOutOfBounds) Error() string {
	return fmt.Sprintf("contribution %s is outside the allowed range [%s, %s]", e.Value, e.Min, e.Max)
}

func (e *ContributionOutOfBounds) violation() {}

// InsufficientReserve reports a reserve pool too small to fund the ask.
type InsufficientReserve struct {
	Available types.BasisPoints
	Requested types.BasisPoints
}

func (e *InsufficientReserve) Error() string {
	return fmt.Sprintf("reserve %s cannot fund a %s grant", e.Available, e.Requested)
}

func (e *InsufficientReserve) violation() {}

// ConfigError reports a rejected project configuration. The project's
// settings are left unchanged.
// Implements: prd002-guardrails R4.3.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid project configuration: " + e.Reason
}

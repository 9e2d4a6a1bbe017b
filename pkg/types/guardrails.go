package types

// Hard business-rule bounds on project configuration. These are floors
// and ceilings on what a project may be configured to, not defaults.
// Implements: prd002-guardrails R4 (project settings).
const (
	// OwnerFloor is the lowest owner minimum any project may set.
	OwnerFloor BasisPoints = 3500

	// PlatformCeiling is the highest platform cap any project may set.
	PlatformCeiling BasisPoints = 2500
)

// Guardrails is the full set of thresholds a single validation call
// consumes: the project-level policy plus the system-wide bounds on a
// single contribution's equity ask.
// Implements: prd002-guardrails R1.
type Guardrails struct {
	OwnerMin        BasisPoints
	PlatformCap     BasisPoints
	ContributionMin BasisPoints
	ContributionMax BasisPoints
}

// DefaultGuardrails returns the system defaults. The contribution
// bounds deliberately match the suggestion formula's clamp range, so an
// unmodified suggestion always passes the bounds check.
func DefaultGuardrails() Guardrails {
	return Guardrails{
		OwnerMin:        OwnerFloor,
		PlatformCap:     PlatformCeiling,
		ContributionMin: 50,
		ContributionMax: 500,
	}
}

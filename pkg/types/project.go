package types

import "time"

// ProjectPolicy holds the per-project guardrail thresholds set at
// configuration time. Contribution bounds are system-wide defaults and
// live in Guardrails, not here.
type ProjectPolicy struct {
	// OwnerMin is the floor the owner's stake may never fall below.
	OwnerMin BasisPoints

	// PlatformCap is the ceiling the platform's stake may never exceed.
	PlatformCap BasisPoints
}

// Project is a venture whose equity the ledger tracks.
// Implements: prd001-ledger-core R1.
type Project struct {
	ProjectID string
	Policy    ProjectPolicy
	CreatedAt time.Time
	UpdatedAt time.Time
}

package types

import "time"

// Contribution states. A contribution starts proposed and ends approved
// or rejected; both are terminal.
// Implements: prd003-contribution-workflow R1.
const (
	ContributionProposed = "proposed"
	ContributionApproved = "approved"
	ContributionRejected = "rejected"
)

// Contribution is a unit of work submitted for an equity grant.
// Implements: prd003-contribution-workflow R2.
type Contribution struct {
	// ContributionID is a UUID v7, generated on creation.
	ContributionID string

	// ProjectID is the project that funds the grant.
	ProjectID string

	// TaskRef points at the work item this contribution covers.
	TaskRef string

	// ContributorID is the authenticated identity of the contributor.
	ContributorID string

	// Effort is the claimed effort (hours or points).
	Effort float64

	// Impact is an ordinal rating from 1 to 5.
	Impact int

	// Proposed is the equity ask. Defaults to the suggestion formula;
	// the caller may override it before approval.
	Proposed BasisPoints

	// Status is one of the Contribution state constants.
	Status string

	// Final is the locked grant, set exactly once at approval and
	// immutable thereafter. Nil until approved.
	Final *BasisPoints

	// AcceptedAt is the approval timestamp; nil until approved.
	AcceptedAt *time.Time

	// AcceptedBy is the approver identity; nil until approved.
	AcceptedBy *string

	// CreatedAt is the timestamp of the proposal.
	CreatedAt time.Time

	// UpdatedAt is the timestamp of the last status change.
	UpdatedAt time.Time
}

// Finalized reports whether the contribution has reached a terminal state.
func (c *Contribution) Finalized() bool {
	return c.Status == ContributionApproved || c.Status == ContributionRejected
}

// Approve locks the grant and moves the contribution to approved.
// Returns ErrAlreadyFinalized unless the current status is proposed.
// Implements: prd003-contribution-workflow R3.2.
func (c *Contribution) Approve(approverID string, at time.Time) error {
	if c.Status != ContributionProposed {
		return ErrAlreadyFinalized
	}
	final := c.Proposed
	c.Status = ContributionApproved
	c.Final = &final
	c.AcceptedAt = &at
	c.AcceptedBy = &approverID
	c.UpdatedAt = at
	return nil
}

// Reject moves the contribution to rejected with no ledger effect.
// Returns ErrAlreadyFinalized unless the current status is proposed.
// Implements: prd003-contribution-workflow R3.3.
func (c *Contribution) Reject(at time.Time) error {
	if c.Status != ContributionProposed {
		return ErrAlreadyFinalized
	}
	c.Status = ContributionRejected
	c.UpdatedAt = at
	return nil
}

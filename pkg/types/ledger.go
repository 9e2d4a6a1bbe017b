package types

// ApprovalCheck is the guardrail predicate an approval runs inside its
// transaction, against the project, the freshly aggregated state, and
// the contribution under approval. A non-nil return aborts the approval
// with no ledger effect and propagates unchanged to the caller.
type ApprovalCheck func(project *Project, state CapTableState, c *Contribution) error

// Ledger defines the interface for backend-agnostic cap-table storage.
// Callers attach to a backend, operate on projects, entries, and
// contributions, and detach when done.
//
// Every mutating operation is atomic: it either commits completely or
// leaves no trace, so a failed call is always safe to retry. Operations
// on the same project are serialized; operations on different projects
// never block each other.
// Implements: prd001-ledger-core R6.
type Ledger interface {
	// Attach connects the ledger to the backend described by config.
	// Creates the DataDir if it does not exist. Returns
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrLedgerDetached.
	Detach() error

	// CreateProject creates a project with the given policy and appends
	// the three INIT entries establishing the owner/platform/reserve
	// split. The split must sum to exactly WholeShare. Returns
	// ErrProjectExists if the project already exists.
	CreateProject(projectID string, owner, platform, reserve BasisPoints) (*Project, error)

	// GetProject returns a project by ID, or ErrNotFound.
	GetProject(projectID string) (*Project, error)

	// UpdatePolicy replaces an existing project's guardrail policy.
	// Appends nothing to the ledger.
	UpdatePolicy(projectID string, policy ProjectPolicy) (*Project, error)

	// Entries returns all ledger entries for a project in insertion
	// order. An unknown project yields an empty slice, not an error.
	Entries(projectID string) ([]LedgerEntry, error)

	// Aggregate folds the project's entry history into per-class
	// totals. An empty history yields the zero state.
	Aggregate(projectID string) (CapTableState, error)

	// AppendAdjustment appends a batch of offsetting correction entries
	// in one transaction. The batch must net to zero and must not drive
	// any holder class negative.
	AppendAdjustment(projectID string, entries []LedgerEntry) ([]LedgerEntry, error)

	// CreateContribution stores a new proposed contribution, assigning
	// its ID and timestamps.
	CreateContribution(c *Contribution) (*Contribution, error)

	// GetContribution returns a contribution by ID, or ErrNotFound.
	GetContribution(contributionID string) (*Contribution, error)

	// Contributions returns all contributions for a project, oldest first.
	Contributions(projectID string) ([]*Contribution, error)

	// ApproveContribution atomically re-reads the contribution, runs
	// check against the current aggregated state, and on success
	// appends the grant entry pair and finalizes the contribution. Any
	// check failure leaves the contribution proposed and the ledger
	// untouched.
	ApproveContribution(contributionID, approverID string, check ApprovalCheck) (*Contribution, error)

	// RejectContribution finalizes the contribution as rejected with no
	// ledger effect. Returns ErrAlreadyFinalized if it is not proposed.
	RejectContribution(contributionID string) (*Contribution, error)
}

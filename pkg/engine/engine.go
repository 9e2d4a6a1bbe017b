// Package engine drives the contribution-approval workflow over a
// Ledger store: propose, approve, reject, project configuration, and
// the listing surfaces higher layers render from. The engine owns no
// state of its own; everything durable lives behind the Ledger
// interface, and everything rule-shaped lives in package guardrail.
// Implements: prd003-contribution-workflow; docs/ARCHITECTURE § Engine.
package engine

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/captable/pkg/guardrail"
	"github.com/mesh-intelligence/captable/pkg/types"
)

// Engine is the workflow facade. Construct with New; the zero value is
// not usable.
type Engine struct {
	ledger   types.Ledger
	defaults types.Guardrails
	log      zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger. The default is a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithGuardrails overrides the system-default contribution bounds.
// Per-project owner-min and platform-cap always come from the project's
// stored policy, not from here.
func WithGuardrails(g types.Guardrails) Option {
	return func(e *Engine) { e.defaults = g }
}

// New creates an Engine over an attached Ledger.
func New(ledger types.Ledger, opts ...Option) *Engine {
	e := &Engine{
		ledger:   ledger,
		defaults: types.DefaultGuardrails(),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ConfigureProject validates and applies a project's baseline split.
// The first call creates the project and appends the INIT entries; later
// calls update only the policy thresholds, because re-baselining a live
// ledger would break append-only history.
// Returns a *guardrail.ConfigError for a rejected configuration.
func (e *Engine) ConfigureProject(projectID string, owner, platform, reserve types.BasisPoints) (*types.Project, error) {
	if err := guardrail.ValidateSplit(owner, platform, reserve); err != nil {
		return nil, err
	}

	project, err := e.ledger.CreateProject(projectID, owner, platform, reserve)
	if errors.Is(err, types.ErrProjectExists) {
		policy := types.ProjectPolicy{OwnerMin: owner, PlatformCap: platform}
		project, err = e.ledger.UpdatePolicy(projectID, policy)
		if err != nil {
			return nil, err
		}
		e.log.Info().
			Str("project", projectID).
			Stringer("owner_min", policy.OwnerMin).
			Stringer("platform_cap", policy.PlatformCap).
			Msg("project policy updated")
		return project, nil
	}
	if err != nil {
		return nil, err
	}

	e.log.Info().
		Str("project", projectID).
		Stringer("owner", owner).
		Stringer("platform", platform).
		Stringer("reserve", reserve).
		Msg("project configured")
	return project, nil
}

// Propose submits a contribution in the proposed state. When proposed
// is zero or negative the suggestion formula sets the equity ask;
// otherwise the caller's override is stored as-is and re-validated at
// approval time. No ledger mutation happens here.
func (e *Engine) Propose(projectID, contributorID, taskRef string, effort float64, impact int, proposed types.BasisPoints) (*types.Contribution, error) {
	suggestion, err := guardrail.Suggest(effort, impact)
	if err != nil {
		return nil, err
	}
	if proposed <= 0 {
		proposed = suggestion
	}

	c, err := e.ledger.CreateContribution(&types.Contribution{
		ProjectID:     projectID,
		TaskRef:       taskRef,
		ContributorID: contributorID,
		Effort:        effort,
		Impact:        impact,
		Proposed:      proposed,
	})
	if err != nil {
		return nil, err
	}

	e.log.Info().
		Str("project", projectID).
		Str("contribution", c.ContributionID).
		Str("contributor", contributorID).
		Stringer("proposed", c.Proposed).
		Msg("contribution proposed")
	return c, nil
}

// Approve runs the guardrail checks against the current cap-table state
// and, if they pass, atomically appends the grant entry pair and locks
// the contribution. A guardrail.Violation propagates unchanged with the
// contribution left proposed, so it can be approved again after a
// manual correction such as a reserve top-up.
func (e *Engine) Approve(contributionID, approverID string) (*types.Contribution, error) {
	check := func(project *types.Project, state types.CapTableState, c *types.Contribution) error {
		cfg := e.defaults
		cfg.OwnerMin = project.Policy.OwnerMin
		cfg.PlatformCap = project.Policy.PlatformCap
		return guardrail.Validate(state, c.Proposed, cfg)
	}

	c, err := e.ledger.ApproveContribution(contributionID, approverID, check)
	if err != nil {
		e.log.Warn().
			Err(err).
			Str("contribution", contributionID).
			Str("approver", approverID).
			Msg("approval rejected")
		return nil, err
	}

	e.log.Info().
		Str("project", c.ProjectID).
		Str("contribution", c.ContributionID).
		Str("approver", approverID).
		Stringer("final", *c.Final).
		Msg("contribution approved")
	return c, nil
}

// Reject finalizes the contribution as rejected with no ledger effect.
// Rejecting a finalized contribution returns ErrAlreadyFinalized.
func (e *Engine) Reject(contributionID, approverID string) (*types.Contribution, error) {
	c, err := e.ledger.RejectContribution(contributionID)
	if err != nil {
		return nil, err
	}

	e.log.Info().
		Str("project", c.ProjectID).
		Str("contribution", c.ContributionID).
		Str("approver", approverID).
		Msg("contribution rejected")
	return c, nil
}

// State returns the current aggregated cap-table state for a project.
// Outside an approval this is an eventually-consistent snapshot for
// display; the authoritative read happens inside the approval
// transaction.
func (e *Engine) State(projectID string) (types.CapTableState, error) {
	return e.ledger.Aggregate(projectID)
}

// Adjust appends an offsetting entry pair moving amount from one holder
// class to another, e.g. a reserve top-up funded from the owner's
// stake. fromID and toID identify individual holders and are required
// only for the user class.
func (e *Engine) Adjust(projectID string, from, to types.HolderType, fromID, toID string, amount types.BasisPoints) ([]types.LedgerEntry, error) {
	if amount <= 0 {
		return nil, types.ErrUnbalancedEntries
	}

	debit := types.LedgerEntry{Holder: from, Delta: -amount, Source: types.SourceAdjust}
	if fromID != "" {
		debit.HolderID = &fromID
	}
	credit := types.LedgerEntry{Holder: to, Delta: amount, Source: types.SourceAdjust}
	if toID != "" {
		credit.HolderID = &toID
	}

	entries, err := e.ledger.AppendAdjustment(projectID, []types.LedgerEntry{debit, credit})
	if err != nil {
		return nil, err
	}

	e.log.Info().
		Str("project", projectID).
		Str("from", string(from)).
		Str("to", string(to)).
		Stringer("amount", amount).
		Msg("adjustment appended")
	return entries, nil
}

// GetProject returns a project by ID.
func (e *Engine) GetProject(projectID string) (*types.Project, error) {
	return e.ledger.GetProject(projectID)
}

// GetContribution returns a contribution by ID.
func (e *Engine) GetContribution(contributionID string) (*types.Contribution, error) {
	return e.ledger.GetContribution(contributionID)
}

// Contributions returns all contributions for a project, oldest first.
func (e *Engine) Contributions(projectID string) ([]*types.Contribution, error) {
	return e.ledger.Contributions(projectID)
}

// Entries returns the project's full ledger history in insertion order.
func (e *Engine) Entries(projectID string) ([]types.LedgerEntry, error) {
	return e.ledger.Entries(projectID)
}

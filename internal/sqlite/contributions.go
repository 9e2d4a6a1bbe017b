// Contribution persistence and the approval transaction for the SQLite
// backend. ApproveContribution is the one serializable unit the whole
// system hinges on: status check, aggregation, guardrail check, grant
// entries, and finalization commit together or not at all.
// Implements: prd004-sqlite-backend R6; prd003-contribution-workflow R3.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/captable/pkg/types"
)

// CreateContribution stores a new proposed contribution, assigning its
// ID and timestamps. The referenced project must exist.
func (b *Backend) CreateContribution(c *types.Contribution) (*types.Contribution, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkAttached(); err != nil {
		return nil, err
	}
	if c == nil || c.ProjectID == "" {
		return nil, types.ErrInvalidID
	}

	var one int
	err := b.db.QueryRow("SELECT 1 FROM projects WHERE project_id = ?", c.ProjectID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("checking project existence: %w", err)
	}

	now := time.Now().UTC()
	stored := *c
	stored.ContributionID = generateUUID()
	stored.Status = types.ContributionProposed
	stored.Final = nil
	stored.AcceptedAt = nil
	stored.AcceptedBy = nil
	stored.CreatedAt = now
	stored.UpdatedAt = now

	_, err = b.db.Exec(
		`INSERT INTO contributions
		 (contribution_id, project_id, task_ref, contributor_id, effort, impact, proposed_bps, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		stored.ContributionID, stored.ProjectID, stored.TaskRef, stored.ContributorID,
		stored.Effort, stored.Impact, int64(stored.Proposed), stored.Status,
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("persisting contribution: %w", err)
	}
	return &stored, nil
}

// GetContribution returns a contribution by ID.
func (b *Backend) GetContribution(contributionID string) (*types.Contribution, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkAttached(); err != nil {
		return nil, err
	}
	if contributionID == "" {
		return nil, types.ErrInvalidID
	}

	row := b.db.QueryRow(selectContribution+" WHERE contribution_id = ?", contributionID)
	return hydrateContribution(row)
}

// Contributions returns all contributions for a project, oldest first.
func (b *Backend) Contributions(projectID string) ([]*types.Contribution, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkAttached(); err != nil {
		return nil, err
	}
	if projectID == "" {
		return nil, types.ErrInvalidID
	}

	rows, err := b.db.Query(selectContribution+" WHERE project_id = ? ORDER BY created_at, contribution_id", projectID)
	if err != nil {
		return nil, fmt.Errorf("querying contributions: %w", err)
	}
	defer rows.Close()

	var out []*types.Contribution
	for rows.Next() {
		c, err := hydrateContribution(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ApproveContribution runs the whole approval as one serializable unit
// under the project lock:
//
//  1. re-read the contribution; reject terminal states
//  2. aggregate the current cap-table state
//  3. run the caller's guardrail check
//  4. append the +user/CONTRIB and -reserve/ADJUST entry pair
//  5. finalize the contribution
//
// A check failure rolls back with the contribution still proposed, so
// the same contribution is approvable again after a manual correction.
func (b *Backend) ApproveContribution(contributionID, approverID string, check types.ApprovalCheck) (*types.Contribution, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkAttached(); err != nil {
		return nil, err
	}
	if contributionID == "" {
		return nil, types.ErrInvalidID
	}

	// Resolve the project before taking its lock.
	projectID, err := b.contributionProject(contributionID)
	if err != nil {
		return nil, err
	}

	lock := b.projectLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := b.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Re-read under the lock; the peek above may be stale.
	row := tx.QueryRow(selectContribution+" WHERE contribution_id = ?", contributionID)
	c, err := hydrateContribution(row)
	if err != nil {
		return nil, err
	}
	if c.Status != types.ContributionProposed {
		return nil, types.ErrAlreadyFinalized
	}

	project, err := getProjectTx(tx, c.ProjectID)
	if err != nil {
		return nil, err
	}
	state, err := aggregateTx(tx, c.ProjectID)
	if err != nil {
		return nil, err
	}
	if check != nil {
		if err := check(project, state, c); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	grant := []types.LedgerEntry{
		{Holder: types.HolderUser, HolderID: &c.ContributorID, Delta: c.Proposed, Source: types.SourceContrib},
		{Holder: types.HolderReserve, Delta: -c.Proposed, Source: types.SourceAdjust},
	}
	if _, err := appendEntriesTx(tx, c.ProjectID, grant, now); err != nil {
		return nil, err
	}

	if err := c.Approve(approverID, now); err != nil {
		return nil, err
	}
	_, err = tx.Exec(
		"UPDATE contributions SET status = ?, final_bps = ?, accepted_at = ?, accepted_by = ?, updated_at = ? WHERE contribution_id = ?",
		c.Status, int64(*c.Final), now.Format(time.RFC3339Nano), approverID, now.Format(time.RFC3339Nano), contributionID,
	)
	if err != nil {
		return nil, fmt.Errorf("finalizing contribution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing approval: %w", err)
	}
	return c, nil
}

// RejectContribution finalizes the contribution as rejected. No ledger
// entries are written on any path through this method.
func (b *Backend) RejectContribution(contributionID string) (*types.Contribution, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkAttached(); err != nil {
		return nil, err
	}
	if contributionID == "" {
		return nil, types.ErrInvalidID
	}

	projectID, err := b.contributionProject(contributionID)
	if err != nil {
		return nil, err
	}

	lock := b.projectLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := b.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRow(selectContribution+" WHERE contribution_id = ?", contributionID)
	c, err := hydrateContribution(row)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := c.Reject(now); err != nil {
		return nil, err
	}
	_, err = tx.Exec(
		"UPDATE contributions SET status = ?, updated_at = ? WHERE contribution_id = ?",
		c.Status, now.Format(time.RFC3339Nano), contributionID,
	)
	if err != nil {
		return nil, fmt.Errorf("finalizing contribution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing rejection: %w", err)
	}
	return c, nil
}

// contributionProject resolves a contribution's project ID without
// taking any locks; the caller already holds b.mu.
func (b *Backend) contributionProject(contributionID string) (string, error) {
	var projectID string
	err := b.db.QueryRow(
		"SELECT project_id FROM contributions WHERE contribution_id = ?", contributionID,
	).Scan(&projectID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", types.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("resolving contribution project: %w", err)
	}
	return projectID, nil
}

// selectContribution is the shared column list for hydration.
const selectContribution = `SELECT contribution_id, project_id, task_ref, contributor_id, effort, impact, proposed_bps, status, final_bps, accepted_at, accepted_by, created_at, updated_at FROM contributions`

// hydrateContribution converts a contributions row into a
// *types.Contribution.
func hydrateContribution(row rowScanner) (*types.Contribution, error) {
	var (
		c          types.Contribution
		proposed   int64
		finalBps   sql.NullInt64
		acceptedAt sql.NullString
		acceptedBy sql.NullString
		createdAt  string
		updatedAt  string
	)
	err := row.Scan(
		&c.ContributionID, &c.ProjectID, &c.TaskRef, &c.ContributorID,
		&c.Effort, &c.Impact, &proposed, &c.Status,
		&finalBps, &acceptedAt, &acceptedBy, &createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning contribution: %w", err)
	}

	c.Proposed = types.BasisPoints(proposed)
	if finalBps.Valid {
		final := types.BasisPoints(finalBps.Int64)
		c.Final = &final
	}
	if acceptedAt.Valid {
		at, err := time.Parse(time.RFC3339Nano, acceptedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parsing accepted_at: %w", err)
		}
		c.AcceptedAt = &at
	}
	if acceptedBy.Valid {
		c.AcceptedBy = &acceptedBy.String
	}
	if c.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if c.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &c, nil
}

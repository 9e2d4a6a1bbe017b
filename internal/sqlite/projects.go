// Project persistence for the SQLite backend.
// Implements: prd004-sqlite-backend R4 (projects, INIT entries).
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/captable/pkg/types"
)

// CreateProject creates a project row and its three INIT entries in one
// transaction. The split must sum to exactly one whole share; policy
// floors and ceilings are the caller's (engine's) concern.
func (b *Backend) CreateProject(projectID string, owner, platform, reserve types.BasisPoints) (*types.Project, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkAttached(); err != nil {
		return nil, err
	}
	if projectID == "" {
		return nil, types.ErrInvalidID
	}
	if owner+platform+reserve != types.WholeShare {
		return nil, types.ErrUnbalancedEntries
	}

	lock := b.projectLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now().UTC()
	project := &types.Project{
		ProjectID: projectID,
		Policy:    types.ProjectPolicy{OwnerMin: owner, PlatformCap: platform},
		CreatedAt: now,
		UpdatedAt: now,
	}

	tx, err := b.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRow("SELECT 1 FROM projects WHERE project_id = ?", projectID).Scan(&exists)
	if err == nil {
		return nil, types.ErrProjectExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("checking project existence: %w", err)
	}

	_, err = tx.Exec(
		"INSERT INTO projects (project_id, owner_min_bps, platform_cap_bps, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		projectID, int64(owner), int64(platform), now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("persisting project: %w", err)
	}

	split := []types.LedgerEntry{
		{ProjectID: projectID, Holder: types.HolderOwner, Delta: owner, Source: types.SourceInit},
		{ProjectID: projectID, Holder: types.HolderPlatform, Delta: platform, Source: types.SourceInit},
		{ProjectID: projectID, Holder: types.HolderReserve, Delta: reserve, Source: types.SourceInit},
	}
	if _, err := appendEntriesTx(tx, projectID, split, now); err != nil {
		return nil, fmt.Errorf("appending INIT entries: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing project: %w", err)
	}
	return project, nil
}

// GetProject returns a project by ID.
func (b *Backend) GetProject(projectID string) (*types.Project, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkAttached(); err != nil {
		return nil, err
	}
	if projectID == "" {
		return nil, types.ErrInvalidID
	}

	row := b.db.QueryRow(
		"SELECT project_id, owner_min_bps, platform_cap_bps, created_at, updated_at FROM projects WHERE project_id = ?",
		projectID,
	)
	return hydrateProject(row)
}

// UpdatePolicy replaces the project's guardrail policy. The ledger is
// untouched; policy changes never rewrite history.
func (b *Backend) UpdatePolicy(projectID string, policy types.ProjectPolicy) (*types.Project, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkAttached(); err != nil {
		return nil, err
	}
	if projectID == "" {
		return nil, types.ErrInvalidID
	}

	lock := b.projectLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now().UTC()
	res, err := b.db.Exec(
		"UPDATE projects SET owner_min_bps = ?, platform_cap_bps = ?, updated_at = ? WHERE project_id = ?",
		int64(policy.OwnerMin), int64(policy.PlatformCap), now.Format(time.RFC3339Nano), projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating policy: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating policy: %w", err)
	}
	if n == 0 {
		return nil, types.ErrNotFound
	}

	row := b.db.QueryRow(
		"SELECT project_id, owner_min_bps, platform_cap_bps, created_at, updated_at FROM projects WHERE project_id = ?",
		projectID,
	)
	return hydrateProject(row)
}

// getProjectTx loads a project inside a transaction.
func getProjectTx(tx *sql.Tx, projectID string) (*types.Project, error) {
	row := tx.QueryRow(
		"SELECT project_id, owner_min_bps, platform_cap_bps, created_at, updated_at FROM projects WHERE project_id = ?",
		projectID,
	)
	return hydrateProject(row)
}

// rowScanner abstracts *sql.Row and *sql.Rows for hydration helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

// hydrateProject converts a projects row into a *types.Project.
func hydrateProject(row rowScanner) (*types.Project, error) {
	var (
		p                    types.Project
		ownerMin, platMax    int64
		createdAt, updatedAt string
	)
	err := row.Scan(&p.ProjectID, &ownerMin, &platMax, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	p.Policy = types.ProjectPolicy{
		OwnerMin:    types.BasisPoints(ownerMin),
		PlatformCap: types.BasisPoints(platMax),
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}

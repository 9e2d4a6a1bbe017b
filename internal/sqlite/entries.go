// Ledger entry persistence and aggregation for the SQLite backend.
// Entries are append-only: there is no update or delete path anywhere
// in this file, and corrections go through AppendAdjustment.
// Implements: prd004-sqlite-backend R5 (entries, aggregation, adjustments).
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/captable/pkg/types"
)

// Entries returns all ledger entries for a project in insertion order.
func (b *Backend) Entries(projectID string) ([]types.LedgerEntry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkAttached(); err != nil {
		return nil, err
	}
	if projectID == "" {
		return nil, types.ErrInvalidID
	}

	rows, err := b.db.Query(
		"SELECT entry_id, project_id, seq, holder_type, holder_id, delta_bps, source, created_at FROM ledger_entries WHERE project_id = ? ORDER BY seq",
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []types.LedgerEntry
	for rows.Next() {
		e, err := hydrateEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// Aggregate folds the project's entry history into per-class totals.
func (b *Backend) Aggregate(projectID string) (types.CapTableState, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkAttached(); err != nil {
		return types.CapTableState{}, err
	}
	if projectID == "" {
		return types.CapTableState{}, types.ErrInvalidID
	}

	tx, err := b.db.Begin()
	if err != nil {
		return types.CapTableState{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	return aggregateTx(tx, projectID)
}

// AppendAdjustment appends a batch of correction entries in one
// transaction. The batch must net to zero so the sum-to-100% invariant
// survives, and no holder class may end up negative.
func (b *Backend) AppendAdjustment(projectID string, entries []types.LedgerEntry) ([]types.LedgerEntry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkAttached(); err != nil {
		return nil, err
	}
	if projectID == "" {
		return nil, types.ErrInvalidID
	}

	var net types.BasisPoints
	for _, e := range entries {
		if !e.Holder.Valid() {
			return nil, types.ErrUnknownHolderType
		}
		net += e.Delta
	}
	if net != 0 {
		return nil, types.ErrUnbalancedEntries
	}

	lock := b.projectLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := b.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := getProjectTx(tx, projectID); err != nil {
		return nil, err
	}

	state, err := aggregateTx(tx, projectID)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := state.Apply(e); err != nil {
			return nil, err
		}
	}
	if state.Owner < 0 || state.Platform < 0 || state.Reserve < 0 || state.Users < 0 {
		return nil, types.ErrNegativeHolding
	}

	appended, err := appendEntriesTx(tx, projectID, entries, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing adjustment: %w", err)
	}
	return appended, nil
}

// aggregateTx folds all entries for a project inside a transaction.
// An empty history yields the zero state; callers treat that as "no
// INIT has happened" via the Balanced check.
func aggregateTx(tx *sql.Tx, projectID string) (types.CapTableState, error) {
	rows, err := tx.Query(
		"SELECT entry_id, project_id, seq, holder_type, holder_id, delta_bps, source, created_at FROM ledger_entries WHERE project_id = ? ORDER BY seq",
		projectID,
	)
	if err != nil {
		return types.CapTableState{}, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var state types.CapTableState
	for rows.Next() {
		e, err := hydrateEntry(rows)
		if err != nil {
			return types.CapTableState{}, err
		}
		if err := state.Apply(*e); err != nil {
			return types.CapTableState{}, err
		}
	}
	return state, rows.Err()
}

// appendEntriesTx inserts entries with fresh IDs and consecutive
// sequence numbers. The unique (project_id, seq) index turns any
// lost-update race into a constraint failure instead of a fork.
func appendEntriesTx(tx *sql.Tx, projectID string, entries []types.LedgerEntry, now time.Time) ([]types.LedgerEntry, error) {
	seq, err := nextSeqTx(tx, projectID)
	if err != nil {
		return nil, err
	}

	appended := make([]types.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		e.EntryID = generateUUID()
		e.ProjectID = projectID
		e.Seq = seq
		e.CreatedAt = now
		seq++

		var holderID any
		if e.HolderID != nil {
			holderID = *e.HolderID
		}
		_, err := tx.Exec(
			"INSERT INTO ledger_entries (entry_id, project_id, seq, holder_type, holder_id, delta_bps, source, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			e.EntryID, e.ProjectID, e.Seq, string(e.Holder), holderID, int64(e.Delta), e.Source, now.Format(time.RFC3339Nano),
		)
		if err != nil {
			return nil, fmt.Errorf("persisting entry: %w", err)
		}
		appended = append(appended, e)
	}
	return appended, nil
}

// nextSeqTx returns the next per-project sequence number.
func nextSeqTx(tx *sql.Tx, projectID string) (int64, error) {
	var max sql.NullInt64
	err := tx.QueryRow(
		"SELECT MAX(seq) FROM ledger_entries WHERE project_id = ?", projectID,
	).Scan(&max)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("reading sequence: %w", err)
	}
	return max.Int64 + 1, nil
}

// hydrateEntry converts a ledger_entries row into a *types.LedgerEntry.
func hydrateEntry(row rowScanner) (*types.LedgerEntry, error) {
	var (
		e         types.LedgerEntry
		holder    string
		holderID  sql.NullString
		delta     int64
		createdAt string
	)
	err := row.Scan(&e.EntryID, &e.ProjectID, &e.Seq, &holder, &holderID, &delta, &e.Source, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("scanning entry: %w", err)
	}
	e.Holder = types.HolderType(holder)
	if holderID.Valid {
		e.HolderID = &holderID.String
	}
	e.Delta = types.BasisPoints(delta)
	if e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &e, nil
}

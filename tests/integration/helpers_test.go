// Package integration provides shared test helpers for integration tests.
// Implements: test suites for prd001-ledger-core, prd003-contribution-workflow,
// prd004-sqlite-backend.
package integration

import (
	"testing"

	"github.com/mesh-intelligence/captable/pkg/engine"
	"github.com/mesh-intelligence/captable/pkg/sqlite"
	"github.com/mesh-intelligence/captable/pkg/types"
)

// newAttachedLedger creates a SQLite ledger attached to an isolated temp
// directory. Each test case gets its own ledger instance for isolation.
func newAttachedLedger(t *testing.T) (types.Ledger, string) {
	t.Helper()
	dir := t.TempDir()
	ledger := sqlite.NewBackend()
	if err := ledger.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t.Cleanup(func() { _ = ledger.Detach() })
	return ledger, dir
}

// newEngine wires an engine over a fresh attached ledger.
func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	ledger, _ := newAttachedLedger(t)
	return engine.New(ledger)
}

// bps converts a percentage to basis points for terse test literals.
func bps(p float64) types.BasisPoints { return types.FromPercent(p) }

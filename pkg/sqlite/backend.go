// Package sqlite provides the public API for the SQLite captable
// backend. It exposes the factory function while keeping implementation
// details internal.
//
// Example:
//
//	ledger := sqlite.NewBackend()
//	err := ledger.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".captable-db",
//	})
//	defer ledger.Detach()
package sqlite

import (
	"github.com/mesh-intelligence/captable/internal/sqlite"
	"github.com/mesh-intelligence/captable/pkg/types"
)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() types.Ledger {
	return sqlite.NewBackend()
}

// Package sqlite implements the SQLite storage backend for the captable
// ledger. The database file is the source of truth; every mutating
// operation runs inside a single transaction, and operations on the
// same project are additionally serialized by a per-project mutex so
// that two approvals can never race past the same reserve check.
// Implements: prd004-sqlite-backend R1, R2, R6;
//
//	docs/ARCHITECTURE § SQLite Backend.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/captable/pkg/types"
)

// dbFileName is the SQLite database file inside DataDir.
const dbFileName = "captable.db"

// Compile-time interface check: Backend must implement Ledger.
var _ types.Ledger = (*Backend)(nil)

// Backend implements the Ledger interface on SQLite.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB

	// projMu guards projLocks; each project gets one mutex so sibling
	// projects never contend on approvals.
	projMu    sync.Mutex
	projLocks map[string]*sync.Mutex
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{
		projLocks: make(map[string]*sync.Mutex),
	}
}

// Attach opens (or creates) the database under config.DataDir and
// ensures the schema exists. Returns ErrAlreadyAttached if already
// attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return err
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return fmt.Errorf("enabling foreign keys: %w", err)
	}
	// Writers on different projects share the file; let them wait out
	// each other's commits instead of failing with SQLITE_BUSY.
	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		db.Close()
		return fmt.Errorf("setting busy timeout: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database. Idempotent. After Detach, operations
// return ErrLedgerDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	b.projLocks = make(map[string]*sync.Mutex)
	return nil
}

// checkAttached returns ErrLedgerDetached unless the backend is
// attached. Callers must hold b.mu (read or write).
func (b *Backend) checkAttached() error {
	if !b.attached {
		return types.ErrLedgerDetached
	}
	return nil
}

// projectLock returns the mutex serializing mutations for one project.
func (b *Backend) projectLock(projectID string) *sync.Mutex {
	b.projMu.Lock()
	defer b.projMu.Unlock()

	l, ok := b.projLocks[projectID]
	if !ok {
		l = &sync.Mutex{}
		b.projLocks[projectID] = l
	}
	return l
}

// generateUUID generates a new UUID v7 for entity IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}

// Schema DDL for the captable SQLite backend.
// Implements: prd004-sqlite-backend R3 (schema, indexes).
package sqlite

const (
	createProjects = `CREATE TABLE IF NOT EXISTS projects (
    project_id TEXT PRIMARY KEY,
    owner_min_bps INTEGER NOT NULL,
    platform_cap_bps INTEGER NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createLedgerEntries = `CREATE TABLE IF NOT EXISTS ledger_entries (
    entry_id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL,
    seq INTEGER NOT NULL,
    holder_type TEXT NOT NULL,
    holder_id TEXT,
    delta_bps INTEGER NOT NULL,
    source TEXT NOT NULL,
    created_at TEXT NOT NULL,
    FOREIGN KEY (project_id) REFERENCES projects(project_id)
);`

	createContributions = `CREATE TABLE IF NOT EXISTS contributions (
    contribution_id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL,
    task_ref TEXT NOT NULL,
    contributor_id TEXT NOT NULL,
    effort REAL NOT NULL,
    impact INTEGER NOT NULL,
    proposed_bps INTEGER NOT NULL,
    status TEXT NOT NULL,
    final_bps INTEGER,
    accepted_at TEXT,
    accepted_by TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (project_id) REFERENCES projects(project_id)
);`
)

const (
	idxEntriesProjectSeq  = `CREATE UNIQUE INDEX IF NOT EXISTS idx_entries_project_seq ON ledger_entries(project_id, seq);`
	idxEntriesHolder      = `CREATE INDEX IF NOT EXISTS idx_entries_holder ON ledger_entries(project_id, holder_type);`
	idxContributionsProj  = `CREATE INDEX IF NOT EXISTS idx_contributions_project ON contributions(project_id);`
	idxContributionsState = `CREATE INDEX IF NOT EXISTS idx_contributions_status ON contributions(project_id, status);`
)

// schemaDDL lists all CREATE statements in dependency order.
var schemaDDL = []string{
	createProjects,
	createLedgerEntries,
	createContributions,
	idxEntriesProjectSeq,
	idxEntriesHolder,
	idxContributionsProj,
	idxContributionsState,
}

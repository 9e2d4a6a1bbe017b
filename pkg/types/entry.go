package types

import "time"

// Entry source tags. Source is free-text provenance; these are the tags
// the engine itself writes.
const (
	SourceInit    = "INIT"    // project initialization split
	SourceContrib = "CONTRIB" // user grant from an approved contribution
	SourceAdjust  = "ADJUST"  // offsetting correction entry
)

// LedgerEntry is an immutable percentage-ownership adjustment. Entries
// are append-only: corrections are made by appending an offsetting
// entry, never by updating or deleting an existing one.
// Implements: prd001-ledger-core R4 (ledger entries).
type LedgerEntry struct {
	// EntryID is a UUID v7, generated on append.
	EntryID string

	// ProjectID is the project whose cap table this entry adjusts.
	ProjectID string

	// Seq is the per-project insertion sequence, starting at 1.
	Seq int64

	// Holder is the equity class credited (positive Delta) or debited
	// (negative Delta).
	Holder HolderType

	// HolderID identifies the individual holder; nil except for user
	// entries (and optionally owner entries).
	HolderID *string

	// Delta is the signed ownership change. Entries accumulate; this is
	// never a running total.
	Delta BasisPoints

	// Source is a provenance tag (INIT, CONTRIB, ADJUST, or caller-defined).
	Source string

	// CreatedAt is the timestamp of the append.
	CreatedAt time.Time
}

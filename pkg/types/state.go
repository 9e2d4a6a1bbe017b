package types

// CapTableState is the derived per-class ownership total for a project
// at a point in time. It is never stored; it is folded from the entry
// history on demand.
// Implements: prd001-ledger-core R5 (aggregation).
type CapTableState struct {
	Owner    BasisPoints
	Platform BasisPoints
	Reserve  BasisPoints
	Users    BasisPoints
}

// Apply folds one ledger entry into the state. Returns
// ErrUnknownHolderType for an unrecognized holder class rather than
// silently dropping its delta.
func (s *CapTableState) Apply(e LedgerEntry) error {
	switch e.Holder {
	case HolderOwner:
		s.Owner += e.Delta
	case HolderPlatform:
		s.Platform += e.Delta
	case HolderReserve:
		s.Reserve += e.Delta
	case HolderUser:
		s.Users += e.Delta
	default:
		return ErrUnknownHolderType
	}
	return nil
}

// Total is the sum over all holder classes.
func (s CapTableState) Total() BasisPoints {
	return s.Owner + s.Platform + s.Reserve + s.Users
}

// Balanced reports whether the state sums to exactly 100%. Every
// committed mutation preserves this; an all-zero state (no INIT yet)
// is not balanced.
func (s CapTableState) Balanced() bool {
	return s.Total() == WholeShare
}

package types

import "errors"

// Ledger lifecycle errors.
// Implements: prd001-ledger-core R7.1.
var (
	ErrLedgerDetached  = errors.New("ledger is detached")
	ErrAlreadyAttached = errors.New("ledger is already attached")
)

// Entity errors.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrInvalidID     = errors.New("invalid entity ID")
	ErrProjectExists = errors.New("project already exists")
)

// Domain errors.
var (
	// ErrAlreadyFinalized is returned when a terminal contribution is
	// approved or rejected again.
	ErrAlreadyFinalized = errors.New("contribution is already finalized")

	// ErrUnknownHolderType is returned when an entry names a holder
	// class outside the closed set.
	ErrUnknownHolderType = errors.New("unknown holder type")

	// ErrUnbalancedEntries is returned when an adjustment batch does
	// not net to zero and would break the sum-to-100% invariant.
	ErrUnbalancedEntries = errors.New("adjustment entries do not net to zero")

	// ErrNegativeHolding is returned when an adjustment would drive a
	// holder class below zero.
	ErrNegativeHolding = errors.New("adjustment would make a holding negative")

	// ErrInvalidEffort is returned for a negative effort claim.
	ErrInvalidEffort = errors.New("effort must not be negative")

	// ErrInvalidImpact is returned for an impact rating outside 1..5.
	ErrInvalidImpact = errors.New("impact must be between 1 and 5")
)

package types

// HolderType identifies the class of equity holder a ledger entry
// credits or debits. The set is closed: aggregation rejects entries
// with an unknown holder type instead of silently dropping them.
// Implements: prd001-ledger-core R3 (holder classes).
type HolderType string

const (
	HolderOwner    HolderType = "owner"
	HolderPlatform HolderType = "platform"
	HolderReserve  HolderType = "reserve"
	HolderUser     HolderType = "user"
)

// validHolderTypes is the set of recognized holder type values.
var validHolderTypes = map[HolderType]bool{
	HolderOwner:    true,
	HolderPlatform: true,
	HolderReserve:  true,
	HolderUser:     true,
}

// Valid reports whether h is a recognized holder type.
func (h HolderType) Valid() bool {
	return validHolderTypes[h]
}

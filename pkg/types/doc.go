// Package types defines the Ledger interface, entity types, fixed-point
// arithmetic, and standard errors for the captable storage system.
// Implements: prd001-ledger-core (Config, Ledger, entities, error types);
//
//	docs/ARCHITECTURE § Main Interface.
package types

// Package guardrail implements the pure business-rule checks the ledger
// runs before committing any mutation: the four ordered contribution
// checks, project-settings validation, and the equity suggestion
// formula. Nothing in this package has side effects, so every check can
// be run speculatively before a transaction commits.
// Implements: prd002-guardrails; docs/ARCHITECTURE § Guardrails.
package guardrail

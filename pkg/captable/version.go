// Package captable holds module-level metadata.
package captable

// Version is the module version reported by the CLI.
const Version = "0.3.0"

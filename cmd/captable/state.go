// Implements: prd005-captable-cli R6 (read surfaces).
package main

import (
	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state <project-id>",
	Short: "Show the current cap-table state",
	Long: `Aggregate the project's ledger history into per-class totals. This is
a display snapshot; approvals re-aggregate inside their own transaction.`,
	Args: cobra.ExactArgs(1),
	RunE: runState,
}

func runState(cmd *cobra.Command, args []string) error {
	state, err := eng.State(args[0])
	if err != nil {
		return err
	}
	return printState(cmd, args[0], state)
}

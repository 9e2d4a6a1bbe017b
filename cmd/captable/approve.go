// Implements: prd005-captable-cli R5 (approve and reject commands).
package main

import (
	"github.com/spf13/cobra"
)

var approveApprover string

var approveCmd = &cobra.Command{
	Use:   "approve <contribution-id>",
	Short: "Approve a proposed contribution",
	Long: `Approve a contribution. The guardrail checks run against the current
cap-table state; on success the grant and its matching reserve debit are
appended atomically and the contribution is locked. A guardrail
rejection leaves the contribution proposed so it can be approved again
after a correction.`,
	Args: cobra.ExactArgs(1),
	RunE: runApprove,
}

func init() {
	approveCmd.Flags().StringVar(&approveApprover, "approver", "", "approver identity")
	_ = approveCmd.MarkFlagRequired("approver")
}

func runApprove(cmd *cobra.Command, args []string) error {
	c, err := eng.Approve(args[0], approveApprover)
	if err != nil {
		return err
	}
	return printContribution(cmd, c)
}

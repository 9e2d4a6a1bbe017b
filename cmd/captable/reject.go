package main

import (
	"github.com/spf13/cobra"
)

var rejectApprover string

var rejectCmd = &cobra.Command{
	Use:   "reject <contribution-id>",
	Short: "Reject a proposed contribution",
	Long:  "Reject a contribution. The ledger is untouched and the rejection is terminal.",
	Args:  cobra.ExactArgs(1),
	RunE:  runReject,
}

func init() {
	rejectCmd.Flags().StringVar(&rejectApprover, "approver", "", "approver identity")
	_ = rejectCmd.MarkFlagRequired("approver")
}

func runReject(cmd *cobra.Command, args []string) error {
	c, err := eng.Reject(args[0], rejectApprover)
	if err != nil {
		return err
	}
	return printContribution(cmd, c)
}

// Implements: prd005-captable-cli R4 (propose command).
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/captable/pkg/types"
)

var (
	proposeContributor string
	proposeTask        string
	proposeEffort      float64
	proposeImpact      int
	proposePct         float64
)

var proposeCmd = &cobra.Command{
	Use:   "propose <project-id>",
	Short: "Propose a contribution for an equity grant",
	Long: `Submit a contribution. The equity ask defaults to the suggestion
formula over effort and impact; pass --pct to override it. Nothing is
written to the ledger until the contribution is approved.`,
	Args: cobra.ExactArgs(1),
	RunE: runPropose,
}

func init() {
	proposeCmd.Flags().StringVar(&proposeContributor, "contributor", "", "contributor identity")
	proposeCmd.Flags().StringVar(&proposeTask, "task", "", "task reference")
	proposeCmd.Flags().Float64Var(&proposeEffort, "effort", 0, "claimed effort (hours or points)")
	proposeCmd.Flags().IntVar(&proposeImpact, "impact", 3, "impact rating from 1 to 5")
	proposeCmd.Flags().Float64Var(&proposePct, "pct", 0, "override the suggested equity ask, in percent")
	_ = proposeCmd.MarkFlagRequired("contributor")
	_ = proposeCmd.MarkFlagRequired("task")
}

func runPropose(cmd *cobra.Command, args []string) error {
	var override types.BasisPoints
	if proposePct > 0 {
		override = types.FromPercent(proposePct)
	}

	c, err := eng.Propose(args[0], proposeContributor, proposeTask, proposeEffort, proposeImpact, override)
	if err != nil {
		return err
	}
	return printContribution(cmd, c)
}

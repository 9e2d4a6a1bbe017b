package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/captable/pkg/guardrail"
)

var (
	suggestEffort float64
	suggestImpact int
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Show the suggested equity ask for an effort/impact pair",
	Long:  "Run the suggestion formula without touching the ledger.",
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().Float64Var(&suggestEffort, "effort", 0, "claimed effort (hours or points)")
	suggestCmd.Flags().IntVar(&suggestImpact, "impact", 3, "impact rating from 1 to 5")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	pct, err := guardrail.Suggest(suggestEffort, suggestImpact)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(cmd, map[string]any{
			"effort":        suggestEffort,
			"impact":        suggestImpact,
			"suggested_pct": pct.Percent(),
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Suggested: %s\n", pct)
	return nil
}

// Implements: prd005-captable-cli R7 (adjust command).
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/captable/pkg/types"
)

var (
	adjustFrom   string
	adjustTo     string
	adjustFromID string
	adjustToID   string
	adjustPct    float64
)

var adjustCmd = &cobra.Command{
	Use:   "adjust <project-id>",
	Short: "Append an offsetting correction entry pair",
	Long: `Move equity between holder classes by appending an offsetting entry
pair, e.g. a reserve top-up funded from the owner's stake:

  captable adjust my-project --from owner --to reserve --pct 5

Entries are never edited; corrections always append.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdjust,
}

func init() {
	adjustCmd.Flags().StringVar(&adjustFrom, "from", "", "holder class to debit (owner|platform|reserve|user)")
	adjustCmd.Flags().StringVar(&adjustTo, "to", "", "holder class to credit (owner|platform|reserve|user)")
	adjustCmd.Flags().StringVar(&adjustFromID, "from-id", "", "individual holder to debit (user class)")
	adjustCmd.Flags().StringVar(&adjustToID, "to-id", "", "individual holder to credit (user class)")
	adjustCmd.Flags().Float64Var(&adjustPct, "pct", 0, "amount to move, in percent")
	_ = adjustCmd.MarkFlagRequired("from")
	_ = adjustCmd.MarkFlagRequired("to")
	_ = adjustCmd.MarkFlagRequired("pct")
}

func runAdjust(cmd *cobra.Command, args []string) error {
	entries, err := eng.Adjust(
		args[0],
		types.HolderType(adjustFrom),
		types.HolderType(adjustTo),
		adjustFromID,
		adjustToID,
		types.FromPercent(adjustPct),
	)
	if err != nil {
		return err
	}

	if flagJSON {
		out := make([]map[string]any, 0, len(entries))
		for _, e := range entries {
			out = append(out, entryJSON(e))
		}
		return printJSON(cmd, out)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Moved %s from %s to %s (%d entries appended)\n",
		types.FromPercent(adjustPct), adjustFrom, adjustTo, len(entries))
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var entriesCmd = &cobra.Command{
	Use:   "entries <project-id>",
	Short: "List a project's ledger entries",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntries,
}

func runEntries(cmd *cobra.Command, args []string) error {
	entries, err := eng.Entries(args[0])
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

	w := cmd.OutOrStdout()
	for _, e := range entries {
		holder := string(e.Holder)
		if e.HolderID != nil {
			holder = fmt.Sprintf("%s(%s)", holder, *e.HolderID)
		}
		fmt.Fprintf(w, "%4d  %-24s %10s  %s\n", e.Seq, holder, e.Delta, e.Source)
	}
	return nil
}

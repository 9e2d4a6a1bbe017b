package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var contributionsCmd = &cobra.Command{
	Use:   "contributions <project-id>",
	Short: "List a project's contributions",
	Args:  cobra.ExactArgs(1),
	RunE:  runContributions,
}

func runContributions(cmd *cobra.Command, args []string) error {
	contributions, err := eng.Contributions(args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		out := make([]map[string]any, 0, len(contributions))
		for _, c := range contributions {
			out = append(out, contributionJSON(c))
		}
		return printJSON(cmd, out)
	}

	w := cmd.OutOrStdout()
	for _, c := range contributions {
		fmt.Fprintf(w, "%s  %-10s %10s  %s  %s\n",
			c.ContributionID, c.Status, c.Proposed, c.ContributorID, c.TaskRef)
	}
	return nil
}

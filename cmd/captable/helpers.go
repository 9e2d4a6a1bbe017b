// Output helpers shared by the captable subcommands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/captable/pkg/types"
)

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// printState writes a cap-table state in either output mode.
func printState(cmd *cobra.Command, projectID string, state types.CapTableState) error {
	if flagJSON {
		return printJSON(cmd, map[string]any{
			"project_id":   projectID,
			"owner_pct":    state.Owner.Percent(),
			"platform_pct": state.Platform.Percent(),
			"reserve_pct":  state.Reserve.Percent(),
			"user_pct":     state.Users.Percent(),
			"total_pct":    state.Total().Percent(),
		})
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Project:  %s\n", projectID)
	fmt.Fprintf(out, "Owner:    %s\n", state.Owner)
	fmt.Fprintf(out, "Platform: %s\n", state.Platform)
	fmt.Fprintf(out, "Reserve:  %s\n", state.Reserve)
	fmt.Fprintf(out, "Users:    %s\n", state.Users)
	fmt.Fprintf(out, "Total:    %s\n", state.Total())
	return nil
}

// printContribution writes a contribution in either output mode.
func printContribution(cmd *cobra.Command, c *types.Contribution) error {
	if flagJSON {
		return printJSON(cmd, contributionJSON(c))
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Contribution: %s\n", c.ContributionID)
	fmt.Fprintf(out, "Project:      %s\n", c.ProjectID)
	fmt.Fprintf(out, "Task:         %s\n", c.TaskRef)
	fmt.Fprintf(out, "Contributor:  %s\n", c.ContributorID)
	fmt.Fprintf(out, "Proposed:     %s\n", c.Proposed)
	fmt.Fprintf(out, "Status:       %s\n", c.Status)
	if c.Final != nil {
		fmt.Fprintf(out, "Final:        %s\n", *c.Final)
	}
	if c.AcceptedBy != nil {
		fmt.Fprintf(out, "Accepted by:  %s\n", *c.AcceptedBy)
	}
	return nil
}

// contributionJSON is the JSON projection of a contribution.
func contributionJSON(c *types.Contribution) map[string]any {
	m := map[string]any{
		"contribution_id": c.ContributionID,
		"project_id":      c.ProjectID,
		"task_ref":        c.TaskRef,
		"contributor_id":  c.ContributorID,
		"effort":          c.Effort,
		"impact":          c.Impact,
		"proposed_pct":    c.Proposed.Percent(),
		"status":          c.Status,
		"created_at":      c.CreatedAt,
	}
	if c.Final != nil {
		m["final_pct"] = c.Final.Percent()
	}
	if c.AcceptedAt != nil {
		m["accepted_at"] = *c.AcceptedAt
	}
	if c.AcceptedBy != nil {
		m["accepted_by"] = *c.AcceptedBy
	}
	return m
}

// entryJSON is the JSON projection of a ledger entry.
func entryJSON(e types.LedgerEntry) map[string]any {
	m := map[string]any{
		"entry_id":   e.EntryID,
		"project_id": e.ProjectID,
		"seq":        e.Seq,
		"holder":     string(e.Holder),
		"delta_pct":  e.Delta.Percent(),
		"source":     e.Source,
		"created_at": e.CreatedAt,
	}
	if e.HolderID != nil {
		m["holder_id"] = *e.HolderID
	}
	return m
}

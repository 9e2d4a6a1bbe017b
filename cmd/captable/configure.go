// Implements: prd005-captable-cli R3 (configure command).
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/captable/pkg/types"
)

var (
	configureOwner    float64
	configurePlatform float64
	configureReserve  float64
)

var configureCmd = &cobra.Command{
	Use:   "configure <project-id>",
	Short: "Create a project or update its guardrail policy",
	Long: `Configure a project's baseline equity split. The first call creates
the project and writes the INIT ledger entries; later calls update only
the guardrail thresholds. Shares are percentages and must sum to 100.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigure,
}

func init() {
	configureCmd.Flags().Float64Var(&configureOwner, "owner", 0, "owner share in percent (floor 35)")
	configureCmd.Flags().Float64Var(&configurePlatform, "platform", 0, "platform share in percent (ceiling 25)")
	configureCmd.Flags().Float64Var(&configureReserve, "reserve", 0, "reserve share in percent")
	_ = configureCmd.MarkFlagRequired("owner")
	_ = configureCmd.MarkFlagRequired("platform")
	_ = configureCmd.MarkFlagRequired("reserve")
}

func runConfigure(cmd *cobra.Command, args []string) error {
	project, err := eng.ConfigureProject(
		args[0],
		types.FromPercent(configureOwner),
		types.FromPercent(configurePlatform),
		types.FromPercent(configureReserve),
	)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(cmd, map[string]any{
			"project_id":       project.ProjectID,
			"owner_min_pct":    project.Policy.OwnerMin.Percent(),
			"platform_cap_pct": project.Policy.PlatformCap.Percent(),
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Project %s configured (owner min %s, platform cap %s)\n",
		project.ProjectID, project.Policy.OwnerMin, project.Policy.PlatformCap)
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/captable/pkg/captable"
)

const modulePath = "github.com/mesh-intelligence/captable"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the captable version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "captable v%s\nmodule: %s\n", captable.Version, modulePath)
		return nil
	},
}

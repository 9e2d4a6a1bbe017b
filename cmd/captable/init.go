// Implements: prd005-captable-cli R2 (init command).
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/captable/internal/paths"
	"github.com/mesh-intelligence/captable/pkg/sqlite"
	"github.com/mesh-intelligence/captable/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize captable storage",
	Long:  "Create configuration and data directories, then initialize the storage backend.",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	dataDir, err := paths.ResolveDataDir(flagDataDir, configDataDir)
	if err != nil {
		return err
	}

	// Attach then detach to create the data directory and schema.
	backend := sqlite.NewBackend()
	if err := backend.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}); err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	if err := backend.Detach(); err != nil {
		return fmt.Errorf("finalize storage: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Captable initialized in %s\n", dataDir)
	return nil
}

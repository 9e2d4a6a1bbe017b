// Package main provides the captable CLI.
// Implements: prd005-captable-cli R1 (root command, global flags, exit codes);
//
//	docs/ARCHITECTURE § CLI.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/captable/internal/paths"
	"github.com/mesh-intelligence/captable/pkg/captable"
	"github.com/mesh-intelligence/captable/pkg/engine"
	"github.com/mesh-intelligence/captable/pkg/sqlite"
	"github.com/mesh-intelligence/captable/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// ledger and eng are initialized per invocation by initEngine.
var (
	ledger types.Ledger
	eng    *engine.Engine
)

// offlineCommands run without an attached ledger.
var offlineCommands = map[string]bool{
	"version": true,
	"init":    true,
	"suggest": true,
	"help":    true,
}

var rootCmd = &cobra.Command{
	Use:     "captable",
	Short:   "Captable is an equity cap-table ledger and guardrail engine",
	Version: captable.Version,
	Long: `Captable tracks fractional ownership of a venture across holder
classes, enforces guardrail invariants on every mutation, and drives the
contribution-approval workflow that converts proposed work into locked
equity grants funded from a shared reserve.`,
	SilenceUsage:       true,
	PersistentPreRunE:  initEngine,
	PersistentPostRunE: closeLedger,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.captable-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(proposeCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(approveCmd)
	rootCmd.AddCommand(rejectCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(entriesCmd)
	rootCmd.AddCommand(contributionsCmd)
	rootCmd.AddCommand(adjustCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}

// initEngine loads config, attaches the SQLite ledger, and builds the
// engine. Offline commands skip attachment so that "captable version"
// never creates a data directory.
func initEngine(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	configDataDir = cfg.GetString(cfgKeyDataDir)

	if offlineCommands[cmd.Name()] {
		return nil
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir, configDataDir)
	if err != nil {
		return err
	}

	ledger = sqlite.NewBackend()
	if err := ledger.Attach(types.Config{
		Backend: cfg.GetString(cfgKeyBackend),
		DataDir: dataDir,
	}); err != nil {
		return fmt.Errorf("attach ledger: %w", err)
	}

	eng = engine.New(ledger,
		engine.WithLogger(newLogger()),
		engine.WithGuardrails(guardrailsFromConfig(cfg)),
	)
	return nil
}

// closeLedger detaches the ledger if one was attached.
func closeLedger(cmd *cobra.Command, args []string) error {
	if ledger == nil {
		return nil
	}
	return ledger.Detach()
}

// newLogger builds a console logger on stderr. Debug level with
// --verbose, warnings only otherwise; command output itself goes to
// stdout through the print helpers.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

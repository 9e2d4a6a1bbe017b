// Config loading for the captable CLI.
// Implements: prd006-configuration-directories R3 (config.yaml keys).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/captable/pkg/guardrail"
	"github.com/mesh-intelligence/captable/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend         = "backend"
	cfgKeyDataDir         = "data_dir"
	cfgKeyContributionMin = "guardrails.contribution_min_pct"
	cfgKeyContributionMax = "guardrails.contribution_max_pct"

	defaultBackend = "sqlite"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Captable CLI configuration

# Backend selection
backend: sqlite

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# System-wide bounds on a single contribution's equity ask, in percent.
# Per-project owner minimum and platform cap are set via "captable
# configure" and stored with the project.
guardrails:
  contribution_min_pct: 0.5
  contribution_max_pct: 5.0
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyContributionMin, guardrail.SuggestFloor)
	v.SetDefault(cfgKeyContributionMax, guardrail.SuggestCeiling)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// guardrailsFromConfig builds the system-default guardrails with the
// configured contribution bounds. Owner-min and platform-cap come from
// each project's stored policy at approval time.
func guardrailsFromConfig(v *viper.Viper) types.Guardrails {
	g := types.DefaultGuardrails()
	g.ContributionMin = types.FromPercent(v.GetFloat64(cfgKeyContributionMin))
	g.ContributionMax = types.FromPercent(v.GetFloat64(cfgKeyContributionMax))
	return g
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file
// does not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

package cmd

import (
	"github.com/spf13/cobra"
)

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persistent console defaults",
	Long: `Provides commands for managing the nestlog configuration file.

The file holds the console defaults applied to every run: color mode,
timestamps, indentation width, baseline verbosity, and whether output
is forced onto stderr. Root flags override it per run.

Use these commands to:
  - Write a fresh config file with the defaults (config init)
  - Inspect the settings the next run will use (config show)

Examples:
  # Create the config file
  nestlog config init

  # See the active settings
  nestlog config show

  # Machine-readable form
  nestlog config show --json`,
}

// GetConfigCmd returns the ConfigCmd for testing.
func GetConfigCmd() *cobra.Command {
	return ConfigCmd
}

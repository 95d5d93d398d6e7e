package cmd

import (
	"fmt"

	"github.com/nestlog/nestlog/internal/configs"
	"github.com/nestlog/nestlog/internal/ui"

	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
	ConfigCmd.AddCommand(configInitCmd)
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a fresh config file with the default settings",
	Long: `Creates the nestlog configuration file with the default settings.

An existing file is left untouched unless --force is given.

Examples:
  # Create the config file
  nestlog config init

  # Start over from the defaults
  nestlog config init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		existed := configs.Exists()
		if existed && !configInitForce {
			fmt.Println(ui.Error.Sprint("✗") + " Config file already exists at " + ui.Path.Sprint(configs.ConfigPath))
			fmt.Println(ui.Info.Sprint("→") + " Re-run with " + ui.Flag.Sprint("--force") + " to overwrite it")
			return nil
		}

		if err := configs.Save(configs.DefaultSettings()); err != nil {
			return err
		}

		if existed {
			fmt.Println(ui.Warning.Sprint("⚠") + " Replaced the existing config with the defaults")
		}
		fmt.Println(ui.Success.Sprint("✓") + " Config file created at " + ui.Path.Sprint(configs.ConfigPath))
		fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("nestlog config show") + " to inspect it")
		return nil
	},
}

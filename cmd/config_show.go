package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/nestlog/nestlog/internal/configs"
	"github.com/nestlog/nestlog/internal/ui"

	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
	ConfigCmd.AddCommand(configShowCmd)
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Long: `Displays the settings the next run will use: the config file merged
with the built-in defaults. Missing files are not an error; the
defaults are shown instead.

Examples:
  # Show the active settings
  nestlog config show

  # Output in JSON format
  nestlog config show --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := configs.Load()
		if err != nil {
			return err
		}

		if configShowJSON {
			data, err := json.MarshalIndent(settings, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		if configs.Exists() {
			fmt.Println("Configuration from " + ui.Path.Sprint(configs.ConfigPath))
		} else {
			fmt.Println("Configuration from built-in defaults " + ui.Muted.Sprint("no config file"))
		}
		fmt.Println("  color:        " + ui.Highlight.Sprint(settings.Color))
		fmt.Println("  timestamps:   " + ui.Highlight.Sprint(settings.Timestamps))
		fmt.Println("  indent_width: " + ui.Highlight.Sprint(settings.IndentWidth))
		fmt.Println("  verbosity:    " + ui.Highlight.Sprint(settings.Verbosity))
		fmt.Println("  stderr:       " + ui.Highlight.Sprint(settings.Stderr))
		return nil
	},
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/nestlog/nestlog/internal/logging"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var demoBanner bool

func init() {
	demoCmd.Flags().BoolVar(&demoBanner, "banner", true, "print the ASCII banner before the run")
}

// resetDemoState resets the demo command's global state for testing.
func resetDemoState() {
	demoBanner = true
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Showcase severities, nesting, and deprecation output",
	Long: `Runs a short scripted pipeline that exercises the whole logging
surface: all five severities, nested indentation scopes, multi-line
records, a deprecation notice, and a record carrying an associated
error.

The pipeline honors every root flag, so this command is the quickest
way to see what a given flag combination will look like.

Examples:
  # Plain run
  nestlog demo

  # Timestamps at full verbosity
  nestlog -vv --timestamps demo

  # Watch the broken-pipe policy (exits with status 1)
  nestlog demo | head -n 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if demoBanner {
			fmt.Println()
			figure.NewColorFigure("Nestlog", "alligator2", "green", true).Print()
			fmt.Println()
		}

		spinner, cleanup := startSpinner("Warming up the demo pipeline...", verbosity > 0)
		spinner.FinalMSG = color.GreenString("✓") + " Demo pipeline ready"
		cleanup()

		return runDemoPipeline()
	},
}

// runDemoPipeline drives the logger through its paces. Every logging
// call is checked: on a broken stdout the pipeline stops immediately and
// the error reaches main, which turns it into exit status 1.
func runDemoPipeline() error {
	if err := Logger.Infof("Resolving 3 entries"); err != nil {
		return err
	}

	if err := collectEntries(); err != nil {
		return err
	}

	if err := Logger.Warnf("beta 0.9.1 is a pre-release"); err != nil {
		return err
	}
	if err := Logger.Deprecatedf("gamma 2.x drops support for the v1 manifest format"); err != nil {
		return err
	}

	record := logging.NewRecord(logging.LevelError, "failed to verify gamma")
	record.Err = errors.New("checksum mismatch: want 9f2a, got 1c77")
	if err := Logger.Emit(record); err != nil {
		return err
	}

	return Logger.Infof("Done.")
}

// collectEntries logs the nested middle of the demo under one scope,
// with the version block nested one level deeper.
func collectEntries() error {
	defer Logger.Indent().End()

	for _, name := range []string{"alpha", "beta", "gamma"} {
		if err := Logger.Infof("Collecting %s", name); err != nil {
			return err
		}
		if err := Logger.Debugf("cache miss for %s, fetching", name); err != nil {
			return err
		}
	}

	inner := Logger.Indent()
	defer inner.End()
	return Logger.Infof("Resolved versions:\nalpha 1.4.2\nbeta 0.9.1\ngamma 2.0.0")
}

package cmd

import (
	"fmt"

	"github.com/nestlog/nestlog/internal/configs"
	"github.com/nestlog/nestlog/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbosity   int
	quietness   int
	colorMode   string
	timestamps  bool
	forceStderr bool
	logFile     string

	// Logger is the console logger shared by every command. The root
	// PersistentPreRun rebuilds it on each execution from the config
	// file and the root flags.
	Logger *logging.Logger

	// RootCmd is the nestlog root command.
	RootCmd = &cobra.Command{
		Use:   "nestlog",
		Short: "Nestlog - colorized, indentation-aware console logging for pipelines.",
		Long: `Nestlog is a command-line tool for structured console output: severity
prefixes, nested indentation, optional timestamps, and a color policy
that respects pipes.

Output is split across both console streams: routine records go to
stdout, warnings and errors to stderr. When stdout is a broken pipe
(for example under 'nestlog demo | head'), nestlog stops and exits
with status 1; a broken stderr never interrupts a run.

Usage:
  nestlog <command> [flags]

Available Commands:
  demo       Showcase severities, nesting, and deprecation output
  relay      Re-emit lines from stdin through the logging pipeline
  config     Manage persistent console defaults

Run 'nestlog help <command>' for more details on a specific command.
`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Welcome to Nestlog! Run 'nestlog --help' to see available commands.")
		},
	}
)

func init() {
	// Assigned here rather than in the literal above: the closure calls
	// buildSetupOptions, which reads RootCmd's flags, and referencing it
	// from the literal would form an initialization cycle.
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		opts, err := buildSetupOptions()
		if err != nil {
			return err
		}
		Logger, err = logging.Setup(opts)
		return err
	}

	flags := RootCmd.PersistentFlags()
	flags.CountVarP(&verbosity, "verbose", "v", "give more output (repeatable)")
	flags.CountVarP(&quietness, "quiet", "q", "give less output (repeatable)")
	flags.StringVar(&colorMode, "color", "", "when to colorize output: always, auto, or never")
	flags.BoolVar(&timestamps, "timestamps", false, "prepend a timestamp to every log line")
	flags.BoolVar(&forceStderr, "stderr", false, "send all output to stderr")
	flags.StringVar(&logFile, "log", "", "append a timestamped copy of all output to this file")

	RootCmd.AddCommand(demoCmd)
	RootCmd.AddCommand(relayCmd)
	RootCmd.AddCommand(ConfigCmd)
}

// buildSetupOptions merges the config file with the root flags. A flag
// set on the command line wins over the file; -v and -q stack on top of
// the file's baseline verbosity.
func buildSetupOptions() (logging.SetupOptions, error) {
	settings, err := configs.Load()
	if err != nil {
		return logging.SetupOptions{}, err
	}

	opts := logging.SetupOptions{
		Verbosity:   settings.Verbosity + verbosity - quietness,
		Timestamps:  settings.Timestamps,
		IndentWidth: settings.IndentWidth,
		ForceStderr: settings.Stderr,
		LogFile:     logFile,
	}

	name := settings.Color
	if colorMode != "" {
		name = colorMode
	}
	mode, err := logging.ParseColorMode(name)
	if err != nil {
		return logging.SetupOptions{}, err
	}
	opts.ColorMode = mode

	flags := RootCmd.PersistentFlags()
	if flags.Changed("timestamps") {
		opts.Timestamps = timestamps
	}
	if flags.Changed("stderr") {
		opts.ForceStderr = forceStderr
	}

	return opts, nil
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// SetLogger sets the logger for testing.
func SetLogger(l *logging.Logger) {
	Logger = l
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbosity = 0
	quietness = 0
	colorMode = ""
	timestamps = false
	forceStderr = false
	logFile = ""
	resetDemoState()
	resetConfigInitState()
	resetConfigShowState()
	resetCobraFlagState()
}

// resetCobraFlagState clears the changed state of every flag to prevent test pollution.
func resetCobraFlagState() {
	clear := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	RootCmd.PersistentFlags().VisitAll(clear)
	for _, c := range []*cobra.Command{RootCmd, demoCmd, relayCmd, ConfigCmd, configInitCmd, configShowCmd} {
		c.Flags().VisitAll(clear)
	}
}

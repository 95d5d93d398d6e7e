package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nestlog/nestlog/internal/logging"

	"github.com/spf13/cobra"
)

var relayCmd = &cobra.Command{
	Use:   "relay",
	Short: "Re-emit lines from stdin through the logging pipeline",
	Long: `Reads standard input line by line and replays each line as a log
record, classifying severity from the line's own prefix: "ERROR: " and
"WARNING: " lines keep their severity (the prefix is stripped and added
back by the formatter), "DEPRECATION: " lines become warnings, and
everything else is routine output.

Replayed lines pick up the active indentation, timestamps, and color
settings, and are split across stdout and stderr by severity.

Examples:
  # Recolor and split a build log
  make build 2>&1 | nestlog relay

  # Timestamp an existing log file
  nestlog --timestamps relay < build.log

  # Broken stdout stops the relay with status 1
  nestlog relay < build.log | head -n 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return relay(cmd.InOrStdin())
	},
}

// relay replays r through the logger until input is exhausted or a
// record cannot be delivered.
func relay(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		level, line := classifyLine(scanner.Text())
		if err := Logger.Logf(level, "%s", line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// classifyLine maps a line to a severity based on its prefix. Severity
// prefixes are stripped so the formatter can add them back; the
// deprecation marker stays on the line, which the formatter already
// treats as marked.
func classifyLine(line string) (logging.Level, string) {
	switch {
	case strings.HasPrefix(line, logging.DeprecationPrefix):
		return logging.LevelWarning, line
	case strings.HasPrefix(line, "ERROR: "):
		return logging.LevelError, strings.TrimPrefix(line, "ERROR: ")
	case strings.HasPrefix(line, "WARNING: "):
		return logging.LevelWarning, strings.TrimPrefix(line, "WARNING: ")
	default:
		return logging.LevelInfo, line
	}
}

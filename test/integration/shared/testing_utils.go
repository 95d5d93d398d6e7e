// Package shared contains testing utilities shared between integration tests.
// This file provides common functions for redirecting the config location,
// capturing the console streams, and running the real CLI.
package shared

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nestlog/nestlog/cmd"
	"github.com/nestlog/nestlog/internal/configs"
)

// SetupTestConfig points the configs package at a temporary directory so
// tests never touch the real config file, and restores the real location
// when the test ends.
func SetupTestConfig(t *testing.T) {
	t.Helper()
	origDir, origPath := configs.ConfigDir, configs.ConfigPath
	configs.ConfigDir = filepath.Join(t.TempDir(), "nestlog")
	configs.ConfigPath = filepath.Join(configs.ConfigDir, "config.toml")
	t.Cleanup(func() {
		configs.ConfigDir, configs.ConfigPath = origDir, origPath
	})
}

// CaptureStreams captures stdout and stderr separately during fn. The
// two streams are kept apart because the logging handlers route records
// by severity; the handlers bind to the replaced streams since the
// logger is built inside fn by the root command's PersistentPreRun.
func CaptureStreams(fn func() error) (stdout, stderr string, err error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, err := os.Pipe()
	if err != nil {
		return "", "", err
	}
	stderrReader, stderrWriter, err := os.Pipe()
	if err != nil {
		return "", "", err
	}

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, stdoutReader)
		stdoutChan <- buf.String()
	}()
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, stderrReader)
		stderrChan <- buf.String()
	}()

	err = fn()

	// Close writers to signal EOF, then restore the real streams.
	stdoutWriter.Close()
	stderrWriter.Close()
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan, <-stderrChan, err
}

// RunCLI executes the real root command with the given arguments and
// captured console streams. Global command state is reset before and
// after, so tests can run in any order.
func RunCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	return RunCLIWithInput(t, "", args...)
}

// RunCLIWithInput is RunCLI with the given standard input.
func RunCLIWithInput(t *testing.T, input string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd.ResetGlobalState()
	t.Cleanup(cmd.ResetGlobalState)

	root := cmd.GetRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(input))

	return CaptureStreams(root.Execute)
}

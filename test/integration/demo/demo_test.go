package demo_test

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/nestlog/nestlog/cmd"
	"github.com/nestlog/nestlog/internal/logging"
	"github.com/nestlog/nestlog/test/integration/shared"
)

// TestDemoCommand covers the `nestlog demo` pipeline end to end: stream
// routing, indentation, verbosity, timestamps, and the color policy.
func TestDemoCommand(t *testing.T) {
	t.Run("SplitsStreamsBySeverity", testDemoSplitsStreams)
	t.Run("IndentsNestedStages", testDemoIndentsNestedStages)
	t.Run("VerboseShowsDebugRecords", testDemoVerbose)
	t.Run("QuietSuppressesRoutineOutput", testDemoQuiet)
	t.Run("TimestampsOnEveryRecord", testDemoTimestamps)
	t.Run("StderrFlagRoutesEverythingToStderr", testDemoForceStderr)
	t.Run("ColorAlwaysPaintsSevereRecords", testDemoColorAlways)
	t.Run("LogFileReceivesUncoloredCopy", testDemoLogFile)
	t.Run("BannerPrintsByDefault", testDemoBanner)
}

func testDemoSplitsStreams(t *testing.T) {
	shared.SetupTestConfig(t)

	stdout, stderr, err := shared.RunCLI(t, "demo", "--banner=false", "--color", "never")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}

	for _, want := range []string{"Demo pipeline ready", "Resolving 3 entries", "Done."} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
	for _, banned := range []string{"WARNING: ", "ERROR: ", "DEPRECATION: "} {
		if strings.Contains(stdout, banned) {
			t.Errorf("stdout should not carry severe records, got:\n%s", stdout)
		}
	}

	for _, want := range []string{
		"WARNING: beta 0.9.1 is a pre-release",
		"DEPRECATION: gamma 2.x drops support for the v1 manifest format",
		"ERROR: failed to verify gamma\nchecksum mismatch: want 9f2a, got 1c77",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
	if strings.Contains(stderr, "Resolving 3 entries") {
		t.Errorf("stderr should not carry routine records, got:\n%s", stderr)
	}
}

func testDemoIndentsNestedStages(t *testing.T) {
	shared.SetupTestConfig(t)

	stdout, _, err := shared.RunCLI(t, "demo", "--banner=false", "--color", "never")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}

	for _, want := range []string{
		"\n  Collecting alpha\n",
		"\n  Collecting gamma\n",
		"\n    Resolved versions:\n",
		"\n    beta 0.9.1\n",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing indented line %q:\n%s", want, stdout)
		}
	}
	if !strings.Contains(stdout, "\nDone.\n") {
		t.Errorf("closing line should be flush left:\n%s", stdout)
	}
}

func testDemoVerbose(t *testing.T) {
	shared.SetupTestConfig(t)

	stdout, _, err := shared.RunCLI(t, "-v", "demo", "--banner=false", "--color", "never")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	if !strings.Contains(stdout, "cache miss for alpha, fetching") {
		t.Errorf("stdout missing debug records at -v:\n%s", stdout)
	}
}

func testDemoQuiet(t *testing.T) {
	shared.SetupTestConfig(t)

	stdout, stderr, err := shared.RunCLI(t, "-q", "demo", "--banner=false", "--color", "never")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	if strings.Contains(stdout, "Resolving 3 entries") {
		t.Errorf("-q should drop routine records:\n%s", stdout)
	}
	if !strings.Contains(stderr, "WARNING: beta 0.9.1 is a pre-release") {
		t.Errorf("-q should keep warnings:\n%s", stderr)
	}

	_, stderr, err = shared.RunCLI(t, "-qq", "demo", "--banner=false", "--color", "never")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	if strings.Contains(stderr, "WARNING: ") {
		t.Errorf("-qq should drop warnings:\n%s", stderr)
	}
	if !strings.Contains(stderr, "ERROR: failed to verify gamma") {
		t.Errorf("-qq should keep errors:\n%s", stderr)
	}
}

func testDemoTimestamps(t *testing.T) {
	shared.SetupTestConfig(t)

	stdout, stderr, err := shared.RunCLI(t, "--timestamps", "demo", "--banner=false", "--color", "never")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}

	stamp := `\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2},\d{3}`
	if !regexp.MustCompile(`(?m)^` + stamp + ` Resolving 3 entries$`).MatchString(stdout) {
		t.Errorf("stdout missing timestamped line:\n%s", stdout)
	}
	// The timestamp goes in front of the indentation.
	if !regexp.MustCompile(`(?m)^` + stamp + `   Collecting alpha$`).MatchString(stdout) {
		t.Errorf("stdout missing timestamped indented line:\n%s", stdout)
	}
	if !regexp.MustCompile(`(?m)^` + stamp + ` WARNING: beta`).MatchString(stderr) {
		t.Errorf("stderr missing timestamped warning:\n%s", stderr)
	}
}

func testDemoForceStderr(t *testing.T) {
	shared.SetupTestConfig(t)

	stdout, stderr, err := shared.RunCLI(t, "--stderr", "demo", "--banner=false", "--color", "never")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	if strings.Contains(stdout, "Resolving 3 entries") {
		t.Errorf("--stderr should keep records off stdout:\n%s", stdout)
	}
	if !strings.Contains(stderr, "Resolving 3 entries") || !strings.Contains(stderr, "WARNING: ") {
		t.Errorf("--stderr should carry every record:\n%s", stderr)
	}
}

func testDemoColorAlways(t *testing.T) {
	shared.SetupTestConfig(t)

	_, stderr, err := shared.RunCLI(t, "--color", "always", "demo", "--banner=false")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	if !strings.Contains(stderr, "\x1b[33m") {
		t.Errorf("warnings should be painted yellow under --color always:\n%q", stderr)
	}
	if !strings.Contains(stderr, "\x1b[31m") {
		t.Errorf("errors should be painted red under --color always:\n%q", stderr)
	}

	_, stderr, err = shared.RunCLI(t, "--color", "never", "demo", "--banner=false")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	if strings.Contains(stderr, "\x1b[") {
		t.Errorf("no escape codes expected under --color never:\n%q", stderr)
	}
}

func testDemoLogFile(t *testing.T) {
	shared.SetupTestConfig(t)
	logPath := filepath.Join(t.TempDir(), "logs", "run.log")

	_, _, err := shared.RunCLI(t, "--log", logPath, "--color", "always", "demo", "--banner=false")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	content := string(data)

	// The file copy carries every record, timestamped, without color.
	for _, want := range []string{"Resolving 3 entries", "WARNING: beta 0.9.1 is a pre-release", "Done."} {
		if !strings.Contains(content, want) {
			t.Errorf("log file missing %q:\n%s", want, content)
		}
	}
	if strings.Contains(content, "\x1b[") {
		t.Errorf("log file should never carry escape codes:\n%q", content)
	}
	if !regexp.MustCompile(`(?m)^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2},\d{3} `).MatchString(content) {
		t.Errorf("log file lines should be timestamped:\n%s", content)
	}
}

func testDemoBanner(t *testing.T) {
	shared.SetupTestConfig(t)

	withBanner, _, err := shared.RunCLI(t, "demo", "--color", "never")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	withoutBanner, _, err := shared.RunCLI(t, "demo", "--banner=false", "--color", "never")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}

	if strings.Count(withBanner, "\n") <= strings.Count(withoutBanner, "\n") {
		t.Error("the banner should add lines above the pipeline output")
	}
}

// TestDemoBrokenStdoutPipe closes the read end of stdout before the run,
// so the first routine record hits a broken pipe.
func TestDemoBrokenStdoutPipe(t *testing.T) {
	shared.SetupTestConfig(t)
	cmd.ResetGlobalState()
	t.Cleanup(cmd.ResetGlobalState)

	root := cmd.GetRootCmd()
	root.SetArgs([]string{"demo", "--banner=false", "--color", "never"})

	originalStdout := os.Stdout
	originalStderr := os.Stderr

	r, w, pipeErr := os.Pipe()
	if pipeErr != nil {
		t.Fatalf("Failed to create pipe: %v", pipeErr)
	}
	if pipeErr := r.Close(); pipeErr != nil {
		t.Fatalf("Failed to close pipe read end: %v", pipeErr)
	}
	devNull, pipeErr := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if pipeErr != nil {
		t.Fatalf("Failed to open %s: %v", os.DevNull, pipeErr)
	}

	os.Stdout = w
	os.Stderr = devNull
	err := root.Execute()
	os.Stdout = originalStdout
	os.Stderr = originalStderr
	w.Close()
	devNull.Close()

	if !errors.Is(err, logging.ErrBrokenStdout) {
		t.Fatalf("Execute() = %v, want ErrBrokenStdout", err)
	}
}

package logging

import (
	"fmt"
	"os"
	"path/filepath"
)

// SetupOptions configures Setup. The zero value is a usable default:
// Info level, automatic color, no timestamps, standard indent width.
type SetupOptions struct {
	// Verbosity adjusts the minimum level in steps around Info: 1 and
	// above selects Debug, 0 Info, -1 Warning, -2 Error, -3 and below
	// Critical.
	Verbosity int

	// ColorMode controls colorization of the console handlers.
	ColorMode ColorMode

	// Timestamps prepends a UTC timestamp to every console line.
	Timestamps bool

	// IndentWidth overrides the spaces per indentation level. Zero
	// keeps DefaultIndentWidth.
	IndentWidth int

	// ForceStderr routes all console output to stderr.
	ForceStderr bool

	// LogFile appends an uncolored, always-timestamped copy of every
	// record to the named file, regardless of verbosity.
	LogFile string

	// Indenter overrides the indenter shared by all handlers. Nil
	// means DefaultIndenter.
	Indenter *Indenter

	// Sink overrides the diagnostic sink of all handlers.
	Sink DiagnosticSink
}

// LevelForVerbosity maps a -v/-q count to a minimum level.
func LevelForVerbosity(v int) Level {
	switch {
	case v >= 1:
		return LevelDebug
	case v == 0:
		return LevelInfo
	case v == -1:
		return LevelWarning
	case v == -2:
		return LevelError
	default:
		return LevelCritical
	}
}

// Setup builds the standard console logger: routine records on stdout,
// warnings and errors on stderr, all handlers sharing one formatter
// configuration and one indenter. When LogFile is set, the logger
// itself opens up to Debug and the console handlers keep the verbosity
// gate, so the file receives records the console suppresses. The
// returned error is non-nil only when LogFile cannot be opened.
func Setup(opts SetupOptions) (*Logger, error) {
	ind := opts.Indenter
	if ind == nil {
		ind = DefaultIndenter
	}
	consoleMin := LevelForVerbosity(opts.Verbosity)

	consoleFormatter := NewFormatter(
		WithIndenter(ind),
		WithTimestamps(opts.Timestamps),
		WithIndentWidth(opts.IndentWidth),
	)

	common := []HandlerOption{
		WithFormatter(consoleFormatter),
		WithColorMode(opts.ColorMode),
		WithDiagnosticSink(opts.Sink),
	}

	var handlers []*StreamHandler
	if opts.ForceStderr {
		handlers = append(handlers, NewStreamHandler(Stderr,
			handlerOptions(common, WithFilter(AtOrAbove(consoleMin)))...))
	} else {
		stderrMin := consoleMin
		if stderrMin < LevelWarning {
			stderrMin = LevelWarning
		}
		handlers = append(handlers,
			NewStreamHandler(Stdout, handlerOptions(common,
				WithFilter(allOf(AtOrAbove(consoleMin), BelowLevel(LevelWarning))))...),
			NewStreamHandler(Stderr, handlerOptions(common,
				WithFilter(AtOrAbove(stderrMin)))...),
		)
	}

	if opts.LogFile != "" {
		file, err := openLogFile(opts.LogFile)
		if err != nil {
			return nil, err
		}
		fileFormatter := NewFormatter(
			WithIndenter(ind),
			WithTimestamps(true),
			WithIndentWidth(opts.IndentWidth),
		)
		handlers = append(handlers, NewStreamHandler(Stderr,
			WithWriter(file),
			WithFormatter(fileFormatter),
			WithColorMode(ColorNever),
			WithDiagnosticSink(opts.Sink),
		))
	}

	minLevel := consoleMin
	if opts.LogFile != "" {
		minLevel = LevelDebug
	}
	logger := New(minLevel, handlers...)
	logger.indenter = ind
	return logger, nil
}

// handlerOptions copies the shared options and appends extras, so the
// shared slice is never aliased between handlers.
func handlerOptions(common []HandlerOption, extra ...HandlerOption) []HandlerOption {
	opts := make([]HandlerOption, 0, len(common)+len(extra))
	opts = append(opts, common...)
	opts = append(opts, extra...)
	return opts
}

// allOf combines filters; a record must pass every one.
func allOf(filters ...func(*Record) bool) func(*Record) bool {
	return func(r *Record) bool {
		for _, accept := range filters {
			if !accept(r) {
				return false
			}
		}
		return true
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// Package logging implements the console output machinery behind every
// Nestlog command: severity-leveled records, process-wide indentation,
// optional colorization and timestamps, and a deliberate policy for
// writes that fail mid-run.
//
// # Records and levels
//
// A Record carries a printf-style message, a severity Level, its creation
// time, and optionally an associated error. Warnings render with a
// "WARNING: " prefix and errors with "ERROR: "; Critical deliberately
// shares the "ERROR: " prefix so operators see one vocabulary. Messages
// that already start with the deprecation marker are never prefixed
// again.
//
// # Indentation
//
// Indentation is a process-wide depth shared across goroutines. Opening
// a scope indents everything logged until the scope ends:
//
//	log.Infof("installing collected packages")
//	scope := log.Indent()
//	defer scope.End()
//	log.Infof("downloading wheel")
//
// # Console setup
//
// Setup builds the standard two-handler console logger: routine records
// on stdout, warnings and errors on stderr, both sharing one formatter
// configuration and one indenter:
//
//	log, err := logging.Setup(logging.SetupOptions{Verbosity: 1})
//
// # Broken pipes
//
// When stdout disappears mid-run, for example in `nestlog relay | head`,
// the handler returns an error wrapping ErrBrokenStdout and callers are
// expected to stop promptly. A broken stderr is tolerated: the record is
// dropped and the fault reported through the DiagnosticSink. No write is
// ever retried.
package logging

package logging

import "errors"

// Stream errors indicate failures delivering log output to a console
// stream.
var (
	// ErrBrokenStdout indicates the stdout pipe closed while a record was
	// being written or flushed. Callers should stop logging to stdout and
	// exit promptly.
	ErrBrokenStdout = errors.New("pipe to stdout was broken")
)

// Parse errors indicate configuration values that could not be
// interpreted.
var (
	// ErrInvalidLevel indicates an unrecognized severity level name.
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrInvalidColorMode indicates an unrecognized color mode name.
	ErrInvalidColorMode = errors.New("invalid color mode")
)

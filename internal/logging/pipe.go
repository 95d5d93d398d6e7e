//go:build !windows

package logging

import (
	"errors"
	"syscall"
)

// isBrokenPipe reports whether err came from writing to a pipe whose
// read end has closed.
func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}

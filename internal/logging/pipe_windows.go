//go:build windows

package logging

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

// isBrokenPipe reports whether err came from writing to a pipe whose
// read end has closed. Windows surfaces this in several shapes depending
// on how the console handle went away.
func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.EINVAL) ||
		errors.Is(err, windows.ERROR_BROKEN_PIPE) ||
		errors.Is(err, windows.ERROR_NO_DATA)
}

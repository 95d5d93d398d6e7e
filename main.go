package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nestlog/nestlog/cmd"
	"github.com/nestlog/nestlog/internal/logging"
)

func main() {
	// Claim SIGPIPE so a broken stdout surfaces as a write error
	// instead of killing the process before it can report exit status.
	signal.Notify(make(chan os.Signal, 1), syscall.SIGPIPE)

	if err := cmd.RootCmd.Execute(); err != nil {
		if errors.Is(err, logging.ErrBrokenStdout) {
			fmt.Fprintln(os.Stderr, "ERROR: Pipe to stdout was broken")
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "ERROR: "+err.Error())
		os.Exit(1)
	}
}

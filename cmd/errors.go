package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitRuntime = 1
	ExitUsage   = 2
)

// ErrInterrupted is returned when the scan is cancelled by a signal.
var ErrInterrupted = errors.New("operation cancelled by user")

// usageError marks invalid arguments detected before the scan starts.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// runtimeError marks a failure while reading the log.
type runtimeError struct{ err error }

func (e runtimeError) Error() string { return e.err.Error() }
func (e runtimeError) Unwrap() error { return e.err }

// exitCode classifies err. Errors coming from Cobra itself (unknown flags,
// missing required flags, stray arguments) are usage errors.
func exitCode(err error) int {
	var rt runtimeError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInterrupted):
		return ExitUsage
	case errors.As(err, &rt):
		return ExitRuntime
	default:
		return ExitUsage
	}
}

// report prints err to stderr and returns the matching exit code.
func report(stderr io.Writer, cmd *cobra.Command, err error) int {
	code := exitCode(err)
	switch {
	case code == ExitOK:
	case errors.Is(err, ErrInterrupted):
		fmt.Fprintln(stderr, "\nOperation cancelled by user")
	case code == ExitRuntime:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
	}
	return code
}

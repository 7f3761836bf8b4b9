package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// ExitDefault - Exit code for a failed run, including an input file that can not be opened
	ExitDefault = 1 + iota
	// ExitUsage - Exit code for invalid flags, arguments or a missing input file name
	ExitUsage
	// ExitStdErr - Exit code when an error could not be written to standard error
	ExitStdErr
)

// exitError - Carries the exit code a failed command ends the process with.
// A reported error has already been explained to the user and is not printed again.
type exitError struct {
	code     int
	err      error
	reported bool
}

func (E *exitError) Error() string {
	if E.err == nil {
		return fmt.Sprintf("exit status %d", E.code)
	}
	return E.err.Error()
}

func (E *exitError) Unwrap() error {
	return E.err
}

// withExitCode - Returns err wrapped so the process ends with code, nil if err is nil
func withExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// reportedExit - Returns an error ending the process with code without printing err
func reportedExit(err error, code int) error {
	return &exitError{code: code, err: err, reported: true}
}

// ExitCode - Returns the process exit code for an error returned from Run, 0 for nil
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	return ExitDefault
}

// exitOnErr - Prints err to errOut unless already reported and exits with the code it carries
func exitOnErr(err error, errOut io.Writer) {
	if err == nil {
		return
	}

	var ee *exitError
	if !errors.As(err, &ee) || !ee.reported {
		if _, printErr := fmt.Fprintln(errOut, err); printErr != nil {
			os.Exit(ExitStdErr)
		}
	}

	os.Exit(ExitCode(err))
}

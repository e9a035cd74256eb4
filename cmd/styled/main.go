package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	exitCode := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

// run is the main entry point for the CLI, separated for testing
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitCode(err)
	}
	return ExitCodeSuccess
}

// cliError carries the exit code of a failed command
type cliError struct {
	code  int
	msg   string
	cause error
}

func (e *cliError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return fmt.Sprintf(FmtErrorWithCause, e.msg, e.cause)
}

func (e *cliError) Unwrap() error {
	return e.cause
}

func newCLIError(code int, msg string, cause error) error {
	return &cliError{code: code, msg: msg, cause: cause}
}

// exitCode maps an error to a process exit code. Errors raised by cobra
// itself (unknown commands, bad flags) are usage errors.
func exitCode(err error) int {
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	return ExitCodeUsageError
}

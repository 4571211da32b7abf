package cmderr

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ExitErr specific error for ExitOnErr function that passes the exit code and error caused.
type ExitErr struct {
	Code  int
	Cause error
	// Quiet disables error printing, only exit code is reported.
	Quiet bool
}

func (x ExitErr) Error() string { return x.Cause.Error() }

func (x ExitErr) Unwrap() error { return x.Cause }

// ExitOnErr writes error to os.Stderr and calls os.Exit with passed exit code or by default 1.
// Does nothing if err is nil.
func ExitOnErr(err error) {
	if err != nil {
		os.Exit(report(os.Stderr, err))
	}
}

// report writes err to w unless it is quiet and returns exit code for it.
func report(w io.Writer, err error) int {
	var e ExitErr
	if !errors.As(err, &e) {
		e.Code = 1
	}
	if !e.Quiet {
		fmt.Fprintln(w, "Error:", err)
	}
	return e.Code
}

// Command measure converts values between units of measurement.
//
// Usage:
//
//	measure convert VALUE FROM TO [flags]
//	measure units
//	measure constants
//
// Global flags:
//
//	-c, --config string   Path to config file
//	    --debug           Enable debug logging
//
// The exit status is 2 for invalid arguments or --set flags,
// and 1 for any other error.
package main

import (
	"errors"
	"os"
)

// ExitError is an error that should cause the program to exit with the given code.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// inputError marks err as caused by the arguments of a command.
func inputError(err error) error {
	return &ExitError{Err: err, Code: 2}
}

func main() {
	if c, err := newRootCmd().ExecuteC(); err != nil {
		c.PrintErrln("Error:", err)
		var exit *ExitError
		if errors.As(err, &exit) {
			os.Exit(exit.Code)
		}
		os.Exit(1)
	}
}

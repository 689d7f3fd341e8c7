package core

import (
	"errors"
	"fmt"
	"io/fs"
)

// Exit codes returned by dd.
const (
	ExitOK       = 0
	ExitRuntime  = 1
	ExitUsage    = 2
	ExitDecode   = 3
	ExitNotFound = 4
	ExitNotEmpty = 6
)

// CLIError carries a user-visible message and exit code. An empty message
// exits silently.
type CLIError struct {
	Code int
	Msg  string
	Err  error
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *CLIError) Unwrap() error { return e.Err }

// WrapError creates a CLIError with an underlying error.
func WrapError(code int, msg string, err error) *CLIError {
	return &CLIError{Code: code, Msg: msg, Err: err}
}

// ErrorForPath maps a filesystem error on path to a CLIError.
func ErrorForPath(path string, err error) *CLIError {
	if errors.Is(err, fs.ErrNotExist) {
		return WrapError(ExitNotFound, path, fs.ErrNotExist)
	}
	return WrapError(ExitRuntime, path, err)
}

// ExitCode returns the CLI exit code from error.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return ExitRuntime
}

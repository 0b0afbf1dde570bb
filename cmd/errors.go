package cmd

import (
	"errors"
	"fmt"

	"subsample/constants"
)

// UsageError marks a mistake in how the tool was invoked, as opposed to a
// failure while sampling
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func usageErrorf(format string, args ...interface{}) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by the root command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return constants.ExitSuccess
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return constants.ExitUsage
	}
	return constants.ExitFailure
}

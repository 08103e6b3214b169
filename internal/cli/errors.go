package cli

import "fmt"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageError reports a command-line mistake with exit code 2.
func usageError(format string, args ...any) *ExitError {
	return &ExitError{
		Code:    2,
		Message: fmt.Sprintf(format, args...) + "\nRun 'remapc --help' for usage.",
	}
}

package errors

import (
	"fmt"

	crdberrors "github.com/cockroachdb/errors"
)

// Exit codes returned by the mcplint binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related failure: an invalid manifest,
	// a missing or malformed input file, or bad flag usage.
	ExitUser = 1

	// ExitSystem indicates a system-related failure (I/O, permissions).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrValidationFailed signals that the manifest failed validation.
	// It carries no message of its own; the reporter has already printed
	// the diagnostics by the time this error propagates.
	ErrValidationFailed = crdberrors.New("validation failed")
)

// New, Newf and Wrap re-export the cockroachdb/errors constructors so
// callers only need one errors import.
func New(msg string) error { return crdberrors.New(msg) }

func Newf(format string, args ...any) error { return crdberrors.Newf(format, args...) }

func Wrap(err error, msg string) error { return crdberrors.Wrap(err, msg) }

// ExitError wraps an error with an exit code and optional suggestion.
// It implements the error interface and supports unwrapping.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable hint for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// Error returns the message of the underlying error.
// If the underlying error is nil, it returns a generic message with the code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

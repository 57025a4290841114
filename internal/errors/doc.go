// Package errors provides error handling conventions for the mcplint CLI.
//
// It defines sentinel errors for common failure conditions, an ExitError
// type for exit-code handling, and the exit code constants the binary
// reports to the operating system.
//
// # Exit Codes
//
//   - ExitSuccess (0): manifest is valid (warnings allowed)
//   - ExitUser (1): invalid manifest, missing/malformed input, bad usage
//   - ExitSystem (2): I/O or permission failure
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. main unwraps it via [errors.As] to pick the process exit
// status:
//
//	var exitErr *mcperrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors

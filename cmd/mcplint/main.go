// Package main is the entry point for the mcplint CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mcp-tools/mcplint/cmd/mcplint/commands"
	mcperrors "github.com/mcp-tools/mcplint/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	// Validation failures have already been reported to the user.
	if !errors.Is(err, mcperrors.ErrValidationFailed) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}

	var exitErr *mcperrors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}
	os.Exit(mcperrors.ExitUser)
}

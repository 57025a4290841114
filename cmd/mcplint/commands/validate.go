package commands

import (
	"io"
	"log/slog"
	"os"

	crdberrors "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/mcp-tools/mcplint/internal/config"
	mcperrors "github.com/mcp-tools/mcplint/internal/errors"
	"github.com/mcp-tools/mcplint/internal/manifest"
	"github.com/mcp-tools/mcplint/internal/manifest/report"
	"github.com/mcp-tools/mcplint/internal/manifest/validator"
)

// validateJSON holds the value of the --json flag.
var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"output results as JSON")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a server.json manifest",
	Long: `Validate a server.json deployment manifest.

With no argument, the configured manifest filename (server.json by
default) is read from the current directory.

Exit codes:
  0 - Manifest is valid (warnings OK)
  1 - Manifest is invalid, missing, or malformed

Examples:
  # Validate ./server.json
  mcplint validate

  # Validate a specific file
  mcplint validate deploy/server.json

  # JSON output for CI/CD
  mcplint validate --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := manifestPath(args)
		return runValidate(path, os.Stdout)
	},
}

// manifestPath resolves the manifest path from the argument list,
// falling back to the configured filename.
func manifestPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg != nil && cfg.Manifest != "" {
		return cfg.Manifest
	}
	return config.DefaultManifest
}

func runValidate(path string, w io.Writer) error {
	reporter := report.New(w, outputFormat())

	m, err := manifest.Load(path)
	if err != nil {
		return reportLoadFailure(reporter, path, err)
	}

	res := validator.Validate(m)
	slog.Debug("validation complete",
		"path", path,
		"errors", len(res.Errors()),
		"warnings", len(res.Warnings()))

	if err := reporter.Report(path, m, res); err != nil {
		return mcperrors.NewSystemError(err, "check that stdout is writable")
	}

	if res.HasErrors() {
		return mcperrors.NewExitError(mcperrors.ErrValidationFailed, mcperrors.ExitUser)
	}
	return nil
}

// outputFormat picks the report format: the --json flag wins, then the
// configured default.
func outputFormat() report.Format {
	if validateJSON {
		return report.FormatJSON
	}
	if cfg != nil && cfg.Output.Format == string(report.FormatJSON) {
		return report.FormatJSON
	}
	return report.FormatText
}

// reportLoadFailure prints a load-time failure and converts it to the
// process exit status. The two expected kinds (missing file, malformed
// content) are user errors; anything else is a system error.
func reportLoadFailure(reporter *report.Reporter, path string, err error) error {
	var display error
	var parseErr *manifest.ParseError

	switch {
	case crdberrors.Is(err, manifest.ErrNotFound):
		display = crdberrors.Newf("%s not found", path)
	case crdberrors.Is(err, manifest.ErrNotObject):
		display = crdberrors.Newf("%s must contain a JSON object", path)
	case crdberrors.As(err, &parseErr):
		display = crdberrors.Newf("invalid JSON in %s: %v", path, parseErr.Err)
	default:
		return mcperrors.NewSystemError(err, "check file permissions")
	}

	slog.Debug("manifest load failed", "path", path, "error", err)

	if reportErr := reporter.ReportLoadFailure(path, display); reportErr != nil {
		return mcperrors.NewSystemError(reportErr, "check that stdout is writable")
	}
	return mcperrors.NewExitError(mcperrors.ErrValidationFailed, mcperrors.ExitUser)
}

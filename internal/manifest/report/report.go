// Package report renders validation results for display.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	"github.com/mcp-tools/mcplint/internal/lint"
	"github.com/mcp-tools/mcplint/internal/manifest"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// maxDescription caps the description shown in the summary block.
const maxDescription = 60

// notSpecified is shown for absent recommended scalar fields.
const notSpecified = "Not specified"

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// New creates a Reporter writing to out in the given format.
func New(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report renders the full validation outcome for a manifest: the error
// and warning blocks, the status line, the configuration summary, and
// platform support for mcpb packages.
func (r *Reporter) Report(file string, m *manifest.Manifest, res *lint.Result) error {
	if r.format == FormatJSON {
		return r.reportJSON(file, m, res)
	}
	return r.reportText(file, m, res)
}

// ReportLoadFailure renders a fatal load-time failure (missing file,
// malformed JSON, non-object root). Validation never ran, so there is
// no summary to show.
func (r *Reporter) ReportLoadFailure(file string, loadErr error) error {
	if r.format == FormatJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(jsonReport{
			Valid:      false,
			Path:       file,
			ParseError: loadErr.Error(),
		}), "encoding JSON report")
	}

	fmt.Fprintf(r.out, "%s Error: %s\n", color.RedString("✗"), loadErr.Error())
	return nil
}

// jsonReport is the machine-readable output structure.
type jsonReport struct {
	Valid      bool         `json:"valid"`
	Path       string       `json:"path"`
	Errors     []string     `json:"errors,omitempty"`
	Warnings   []string     `json:"warnings,omitempty"`
	ParseError string       `json:"parse_error,omitempty"`
	Summary    *jsonSummary `json:"summary,omitempty"`
}

// jsonSummary mirrors the text summary block.
type jsonSummary struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	License     string   `json:"license"`
	Homepage    string   `json:"homepage"`
	Packages    int      `json:"packages"`
	Remotes     int      `json:"remotes"`
	Platforms   []string `json:"platforms,omitempty"`
}

func (r *Reporter) reportJSON(file string, m *manifest.Manifest, res *lint.Result) error {
	out := jsonReport{
		Valid:    !res.HasErrors(),
		Path:     file,
		Errors:   lint.Messages(res.Errors()),
		Warnings: lint.Messages(res.Warnings()),
		Summary: &jsonSummary{
			Name:        deref(m.Name),
			Version:     deref(m.Version),
			Description: truncate(deref(m.Description), maxDescription),
			License:     orDefault(m.License, notSpecified),
			Homepage:    orDefault(m.Homepage, notSpecified),
			Packages:    len(m.Packages),
			Remotes:     len(m.Remotes),
			Platforms:   platformPairs(m),
		},
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(out), "encoding JSON report")
}

func (r *Reporter) reportText(file string, m *manifest.Manifest, res *lint.Result) error {
	fmt.Fprintf(r.out, "Validating %s...\n\n", file)

	if errs := res.Errors(); len(errs) > 0 {
		fmt.Fprintln(r.out, color.RedString("ERRORS:"))
		for _, issue := range errs {
			fmt.Fprintf(r.out, "  • %s\n", issue.Message)
		}
		fmt.Fprintln(r.out)
	}

	if warnings := res.Warnings(); len(warnings) > 0 {
		fmt.Fprintln(r.out, color.YellowString("WARNINGS:"))
		for _, issue := range warnings {
			fmt.Fprintf(r.out, "  • %s\n", issue.Message)
		}
		fmt.Fprintln(r.out)
	}

	switch {
	case res.HasErrors():
		fmt.Fprintf(r.out, "%s %s has validation errors\n", color.RedString("✗"), file)
	case res.HasWarnings():
		fmt.Fprintf(r.out, "%s %s is valid (with warnings above)\n", color.GreenString("✓"), file)
	default:
		fmt.Fprintf(r.out, "%s %s looks good\n", color.GreenString("✓"), file)
	}

	r.printSummary(m)
	r.printPlatforms(m)

	return nil
}

// printSummary prints the configuration summary block. It is printed
// unconditionally, including for invalid manifests.
func (r *Reporter) printSummary(m *manifest.Manifest) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Configuration Summary:")
	fmt.Fprintf(r.out, "  Name:        %s\n", deref(m.Name))
	fmt.Fprintf(r.out, "  Version:     %s\n", deref(m.Version))
	fmt.Fprintf(r.out, "  Description: %s\n", truncate(deref(m.Description), maxDescription))
	fmt.Fprintf(r.out, "  License:     %s\n", orDefault(m.License, notSpecified))
	fmt.Fprintf(r.out, "  Homepage:    %s\n", orDefault(m.Homepage, notSpecified))
	fmt.Fprintf(r.out, "  Packages:    %d\n", len(m.Packages))
	fmt.Fprintf(r.out, "  Remotes:     %d\n", len(m.Remotes))
}

// printPlatforms prints one platform-support block per mcpb package that
// declares platforms.
func (r *Reporter) printPlatforms(m *manifest.Manifest) {
	for _, pkg := range m.Packages {
		if pkg.Type != manifest.TypeMCPB || len(pkg.Platforms) == 0 {
			continue
		}
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "  Platform Support (%d platforms):\n", len(pkg.Platforms))
		for _, p := range pkg.Platforms {
			fmt.Fprintf(r.out, "    • %s/%s\n", orDefault(p.OS, "unknown"), orDefault(p.Arch, "unknown"))
		}
	}
}

// platformPairs flattens the mcpb platform entries to "os/arch" strings.
func platformPairs(m *manifest.Manifest) []string {
	var pairs []string
	for _, pkg := range m.Packages {
		if pkg.Type != manifest.TypeMCPB {
			continue
		}
		for _, p := range pkg.Platforms {
			pairs = append(pairs, orDefault(p.OS, "unknown")+"/"+orDefault(p.Arch, "unknown"))
		}
	}
	return pairs
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDefault(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

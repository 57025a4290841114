// Package logging configures structured logging for the mcplint CLI.
//
// It builds on log/slog with a TTY-optimized text handler (colorized when
// the writer supports it), a JSON handler option for machine consumption,
// and a MultiHandler used when --log-file is set.
//
// Diagnostics about the manifest itself never go through this package;
// those are the reporter's job. Logging covers the tool's own operation:
// which file was read, how long validation took, what the tool decided.
package logging

package config

import (
	"errors"
	"slices"
	"strings"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidFormat indicates an unrecognized output format.
	ErrInvalidFormat = errors.New("invalid output format")

	// ErrInvalidManifest indicates the manifest filename is malformed.
	ErrInvalidManifest = errors.New("invalid manifest filename")
)

// validFormats is the set of recognized output formats.
var validFormats = []string{"text", "json"}

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if cfg.Manifest == "" || strings.ContainsRune(cfg.Manifest, '\x00') {
		errs = append(errs, &FieldError{
			Field: "manifest",
			Value: cfg.Manifest,
			Err:   ErrInvalidManifest,
		})
	}

	if !slices.Contains(validFormats, cfg.Output.Format) {
		errs = append(errs, &FieldError{
			Field: "output.format",
			Value: cfg.Output.Format,
			Err:   ErrInvalidFormat,
		})
	}

	return errs
}

// FieldError represents a validation error for a specific config field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

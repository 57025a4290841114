// Package lint provides the shared diagnostic types for manifest validation.
package lint

import (
	"strings"
)

// Severity represents the impact of a diagnostic.
type Severity int

const (
	// SeverityError indicates a rule violation that makes the manifest invalid.
	SeverityError Severity = iota
	// SeverityWarning indicates a deviation from a recommendation; the
	// manifest is still usable.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Issue represents a single diagnostic produced by a validation rule.
type Issue struct {
	// Severity indicates the impact of the issue.
	Severity Severity
	// Rule is a stable identifier for the rule that produced the issue,
	// e.g. "required-field" or "remote-transport-unknown".
	Rule string
	// Field is the path of the offending field, e.g. "packages[0].type".
	// Empty for document-level issues.
	Field string
	// Message is the rendered, human-readable diagnostic.
	Message string
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	if i.Rule != "" {
		sb.WriteString(" [")
		sb.WriteString(i.Rule)
		sb.WriteString("]")
	}
	sb.WriteString(": ")
	sb.WriteString(i.Message)
	return sb.String()
}

// Result aggregates diagnostics in rule evaluation order.
type Result struct {
	Issues []Issue
}

// AddError appends an error-severity issue to the result.
func (r *Result) AddError(rule, field, message string) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityError,
		Rule:     rule,
		Field:    field,
		Message:  message,
	})
}

// AddWarning appends a warning-severity issue to the result.
func (r *Result) AddWarning(rule, field, message string) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityWarning,
		Rule:     rule,
		Field:    field,
		Message:  message,
	})
}

// HasErrors returns true if any issue has SeverityError.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings returns true if any issue has SeverityWarning.
func (r *Result) HasWarnings() bool {
	if r == nil {
		return false
	}
	for _, i := range r.Issues {
		if i.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// Errors returns all error-severity issues in emission order.
func (r *Result) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns all warning-severity issues in emission order.
func (r *Result) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

func (r *Result) filter(s Severity) []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			res = append(res, i)
		}
	}
	return res
}

// Messages extracts the rendered messages from a slice of issues.
func Messages(issues []Issue) []string {
	if len(issues) == 0 {
		return nil
	}
	msgs := make([]string, len(issues))
	for i, issue := range issues {
		msgs[i] = issue.Message
	}
	return msgs
}

package lint

import (
	"reflect"
	"testing"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityError, "error"},
		{SeverityWarning, "warning"},
		{Severity(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.s.String(); got != tt.want {
				t.Errorf("Severity.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIssue_Error(t *testing.T) {
	tests := []struct {
		name string
		i    Issue
		want string
	}{
		{
			name: "error with rule",
			i: Issue{
				Severity: SeverityError,
				Rule:     "required-field",
				Field:    "name",
				Message:  "Missing required field: name",
			},
			want: "error [required-field]: Missing required field: name",
		},
		{
			name: "warning without rule",
			i: Issue{
				Severity: SeverityWarning,
				Message:  "Recommended field missing: license",
			},
			want: "warning: Recommended field missing: license",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.i.Error(); got != tt.want {
				t.Errorf("Issue.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResult_OrderPreserved(t *testing.T) {
	r := &Result{}
	r.AddError("rule-a", "a", "first error")
	r.AddWarning("rule-b", "b", "first warning")
	r.AddError("rule-c", "c", "second error")
	r.AddWarning("rule-d", "d", "second warning")

	wantErrors := []string{"first error", "second error"}
	if got := Messages(r.Errors()); !reflect.DeepEqual(got, wantErrors) {
		t.Errorf("Errors() = %v, want %v", got, wantErrors)
	}

	wantWarnings := []string{"first warning", "second warning"}
	if got := Messages(r.Warnings()); !reflect.DeepEqual(got, wantWarnings) {
		t.Errorf("Warnings() = %v, want %v", got, wantWarnings)
	}
}

func TestResult_Helpers(t *testing.T) {
	r := &Result{}

	if r.HasErrors() {
		t.Error("expected no errors")
	}
	if r.HasWarnings() {
		t.Error("expected no warnings")
	}

	r.AddError("rule", "f1", "m1")
	if !r.HasErrors() {
		t.Error("expected errors")
	}
	if len(r.Errors()) != 1 {
		t.Errorf("expected 1 error, got %d", len(r.Errors()))
	}

	r.AddWarning("rule", "f2", "m2")
	if !r.HasWarnings() {
		t.Error("expected warnings")
	}
	if len(r.Warnings()) != 1 {
		t.Errorf("expected 1 warning, got %d", len(r.Warnings()))
	}

	if len(r.Issues) != 2 {
		t.Errorf("expected 2 issues, got %d", len(r.Issues))
	}
}

func TestResult_NilSafety(t *testing.T) {
	var r *Result
	if r.HasErrors() {
		t.Error("expected no errors for nil result")
	}
	if r.HasWarnings() {
		t.Error("expected no warnings for nil result")
	}
	if r.Errors() != nil {
		t.Error("expected nil Errors() for nil result")
	}
	if r.Warnings() != nil {
		t.Error("expected nil Warnings() for nil result")
	}
}

func TestMessages_Empty(t *testing.T) {
	if Messages(nil) != nil {
		t.Error("expected nil for empty input")
	}
}

package errors

import (
	stderrors "errors"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(New("manifest invalid"), ExitUser),
			want: "manifest invalid",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitSystem),
			want: "exit code 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	err := NewExitError(ErrValidationFailed, ExitUser)

	if !stderrors.Is(err, ErrValidationFailed) {
		t.Error("errors.Is should find the wrapped sentinel")
	}

	var exitErr *ExitError
	if !stderrors.As(err, &exitErr) {
		t.Fatal("errors.As should extract ExitError")
	}
	if exitErr.Code != ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, ExitUser)
	}
}

func TestNewUserError(t *testing.T) {
	err := NewUserError(New("bad flag"), "run with --help")

	if err.Code != ExitUser {
		t.Errorf("Code = %d, want %d", err.Code, ExitUser)
	}
	if err.Suggestion != "run with --help" {
		t.Errorf("Suggestion = %q", err.Suggestion)
	}
}

func TestNewSystemError(t *testing.T) {
	err := NewSystemError(New("disk on fire"), "check permissions")

	if err.Code != ExitSystem {
		t.Errorf("Code = %d, want %d", err.Code, ExitSystem)
	}
}

func TestWrap_PreservesChain(t *testing.T) {
	base := New("base")
	wrapped := Wrap(base, "context")

	if !stderrors.Is(wrapped, base) {
		t.Error("wrapped error should match its base")
	}
	if wrapped.Error() != "context: base" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
}

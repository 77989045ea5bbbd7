package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	err := New(ErrCodeInvalidParameter, "max distance must be at least 1, got %d", 0)
	want := "INVALID_PARAMETER: max distance must be at least 1, got 0"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestError_ErrorWithCause(t *testing.T) {
	cause := fmt.Errorf("no such file")
	err := Wrap(ErrCodeInvalidInput, cause, "failed to read shape.svg")
	want := "INVALID_INPUT: failed to read shape.svg: no such file"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("decode failed")
	err := Wrap(ErrCodeInvalidInput, cause, "bad input")
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is() should find the wrapped cause")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeInvalidParameter, "bad"), ErrCodeInvalidParameter, true},
		{"different code", New(ErrCodeInvalidParameter, "bad"), ErrCodeInvalidInput, false},
		{"wrapped error", fmt.Errorf("context: %w", New(ErrCodeInternal, "boom")), ErrCodeInternal, true},
		{"plain error", fmt.Errorf("plain"), ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeUnsupported, "nope")); got != ErrCodeUnsupported {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeUnsupported)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "missing source shape")); got != "missing source shape" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(fmt.Errorf("plain failure")); got != "plain failure" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestValidateMaxDist(t *testing.T) {
	if err := ValidateMaxDist(8); err != nil {
		t.Errorf("ValidateMaxDist(8) = %v, want nil", err)
	}
	for _, d := range []int{0, -1} {
		err := ValidateMaxDist(d)
		if !Is(err, ErrCodeInvalidParameter) {
			t.Errorf("ValidateMaxDist(%d) = %v, want INVALID_PARAMETER", d, err)
		}
	}
}

func TestValidateSourceSize(t *testing.T) {
	if err := ValidateSourceSize(3000); err != nil {
		t.Errorf("ValidateSourceSize(3000) = %v, want nil", err)
	}
	if err := ValidateSourceSize(0); !Is(err, ErrCodeInvalidParameter) {
		t.Errorf("ValidateSourceSize(0) = %v, want INVALID_PARAMETER", err)
	}
}

func TestValidateTargetSize(t *testing.T) {
	if err := ValidateTargetSize(0); err != nil {
		t.Errorf("ValidateTargetSize(0) = %v, want nil (zero means default)", err)
	}
	if err := ValidateTargetSize(-5); !Is(err, ErrCodeInvalidParameter) {
		t.Errorf("ValidateTargetSize(-5) = %v, want INVALID_PARAMETER", err)
	}
}

func TestValidateThreads(t *testing.T) {
	if err := ValidateThreads(0); err != nil {
		t.Errorf("ValidateThreads(0) = %v, want nil (zero means auto)", err)
	}
	if err := ValidateThreads(-1); !Is(err, ErrCodeInvalidParameter) {
		t.Errorf("ValidateThreads(-1) = %v, want INVALID_PARAMETER", err)
	}
}

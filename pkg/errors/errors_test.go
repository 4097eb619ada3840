package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNewFormatsMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad value: %d", 42)
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidInput)
	}
	if err.Message != "bad value: 42" {
		t.Errorf("Message = %q", err.Message)
	}
	want := "INVALID_INPUT: bad value: 42"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeInternal, cause, "saving chart")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error does not match cause via errors.Is")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap() did not return cause")
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := New(ErrCodeNonConvergence, "hit iteration cap")
	if !Is(err, ErrCodeNonConvergence) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeInvalidInput) {
		t.Error("Is() = true for mismatched code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is() = true for non-structured error")
	}
}

func TestIsMatchesThroughWrapping(t *testing.T) {
	inner := New(ErrCodeInvalidData, "column missing")
	outer := fmt.Errorf("loading csv: %w", inner)
	if !Is(outer, ErrCodeInvalidData) {
		t.Error("Is() did not unwrap fmt-wrapped error")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNotFound, "x")); got != ErrCodeNotFound {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidSpec, "missing series")); got != "missing series" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage = %q", got)
	}
}

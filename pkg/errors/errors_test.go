package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "resource not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "resource not found" {
		t.Errorf("expected message 'resource not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeUnsatisfiableCover, "cover failed", cause)

	if err.Code != ErrCodeUnsatisfiableCover {
		t.Errorf("expected code %s, got %s", ErrCodeUnsatisfiableCover, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("missing field")
	ctx := map[string]any{
		"file": "ingredients.csv",
		"row":  42,
	}

	err := WrapWithContext(ErrCodeMalformedInput, "ingredient row invalid", cause, ctx)

	if err.Code != ErrCodeMalformedInput {
		t.Errorf("expected code %s, got %s", ErrCodeMalformedInput, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["file"] != "ingredients.csv" {
		t.Errorf("expected file to be ingredients.csv")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
		{
			name:     "unsatisfiable cover",
			err:      New(ErrCodeUnsatisfiableCover, "no set cover possible"),
			expected: "[UNSATISFIABLE_COVER] no set cover possible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(ErrCodeMalformedInput, "bad row")); got != ErrCodeMalformedInput {
		t.Errorf("expected %s, got %s", ErrCodeMalformedInput, got)
	}

	wrapped := Wrap(ErrCodeUnsatisfiableCover, "cover", errors.New("inner"))
	if got := CodeOf(wrapped); got != ErrCodeUnsatisfiableCover {
		t.Errorf("expected %s, got %s", ErrCodeUnsatisfiableCover, got)
	}

	if got := CodeOf(errors.New("plain")); got != ErrCodeInternal {
		t.Errorf("expected %s for plain error, got %s", ErrCodeInternal, got)
	}
}

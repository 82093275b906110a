package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	single := NewValidationError("name", "required")
	if got := single.Error(); got != "validation: name — required" {
		t.Errorf("single error = %q", got)
	}

	multi := NewValidationErrors([]FieldError{
		{Field: "name", Message: "required"},
		{Field: "type", Message: "required"},
	})
	if got := multi.Error(); got != "validation: 2 errors" {
		t.Errorf("multi error = %q", got)
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	t.Parallel()

	err := NewValidationError("text", "required")
	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationError should unwrap to ErrValidation")
	}

	wrapped := fmt.Errorf("create word: %w", err)
	if !errors.Is(wrapped, ErrValidation) {
		t.Error("wrapped ValidationError should still match ErrValidation")
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrNotFound, ErrAlreadyExists, ErrValidation, ErrLastMeaning}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v should not match %v", a, b)
			}
		}
	}
}

package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestUserError(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", ErrDuplicateDesignation)
	err := NewUserError("failed to load thread catalog", wrapped)

	want := "failed to load thread catalog: wrap: duplicate designation"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrDuplicateDesignation) {
		t.Error("UserError should unwrap to the underlying sentinel")
	}
}

func TestUserErrorWithoutCause(t *testing.T) {
	err := NewUserError("something went wrong", nil)
	if err.Error() != "something went wrong" {
		t.Errorf("Error() = %q", err.Error())
	}
}

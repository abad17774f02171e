// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Catalog errors.
	ErrEmptyCatalog         = errors.New("empty catalog")
	ErrDuplicateDesignation = errors.New("duplicate designation")
	ErrInvalidThread        = errors.New("invalid thread")
	ErrUnknownStandard      = errors.New("unknown thread standard")

	// Pairing errors.
	ErrEqualPitch = errors.New("threads have equal pitch")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

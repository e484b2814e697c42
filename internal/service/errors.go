package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when caller input is malformed, e.g. an unrecognized video URL.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a resource already exists.
	ErrConflict = errors.New("already exists")
	// ErrExternalService is returned when the transcript source or the generative service fails.
	ErrExternalService = errors.New("external service error")
)

// ValidationError represents a validation error with a field name.
// Message is safe to show to API callers.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// ExternalCause returns the message of the error underlying an ErrExternalService failure.
// It returns the full message when err does not wrap ErrExternalService.
func ExternalCause(err error) string {
	if err == nil {
		return ""
	}
	if !errors.Is(err, ErrExternalService) {
		return err.Error()
	}
	prefix := ErrExternalService.Error() + ": "
	msg := err.Error()
	for len(msg) >= len(prefix) && msg[:len(prefix)] == prefix {
		msg = msg[len(prefix):]
	}
	return msg
}

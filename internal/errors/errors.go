// Package errors provides the error kinds shared by every layer.
//
// Domain packages build their sentinels by wrapping one of these kinds, and
// the HTTP layer maps kinds to status codes without importing the domain.
package errors

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate key name).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTooLarge is an ErrInvalidInput for inputs over a configured size limit.
	ErrTooLarge = fmt.Errorf("too large: %w", ErrInvalidInput)

	// ErrUnsupportedMedia is an ErrInvalidInput for content that is not the
	// expected media type.
	ErrUnsupportedMedia = fmt.Errorf("unsupported media: %w", ErrInvalidInput)
)

// kinds is ordered from most to least specific.
var kinds = []error{ErrTooLarge, ErrUnsupportedMedia, ErrInvalidInput, ErrNotFound, ErrConflict}

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// KindOf returns the most specific error kind found in err's tree, or nil
// when err carries none of them.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

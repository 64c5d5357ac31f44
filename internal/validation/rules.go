// Package validation holds the jellydator/validation rules shared by request DTOs.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/stegotext/internal/errors"
	"github.com/allisson/stegotext/internal/stego/domain"
)

// keyNamePattern keeps stored key names usable as a single URL path segment.
var keyNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._\-]*$`)

// String rules skip empty values; pair them with validation.Required where needed.
var (
	// KeyName accepts names that start with a letter or digit followed by
	// letters, digits, '.', '_' or '-'.
	KeyName = validation.NewStringRuleWithError(
		keyNamePattern.MatchString,
		validation.NewError(
			"validation_key_name_format",
			"must start with a letter or digit and contain only letters, digits, '.', '_' or '-'",
		),
	)

	// HexKey accepts a dynamic key of any length made of hex digits.
	HexKey = validation.NewStringRuleWithError(
		func(s string) bool {
			_, err := domain.ParseKey(s)
			return err == nil
		},
		validation.NewError("validation_hex_key", "must contain only hexadecimal characters"),
	)

	NotBlank = validation.NewStringRuleWithError(
		func(s string) bool { return strings.TrimSpace(s) != "" },
		validation.NewError("validation_not_blank", "must not be blank"),
	)
)

// WrapValidationError turns a validation failure into an ErrInvalidInput so
// the HTTP layer answers 422.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

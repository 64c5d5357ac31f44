package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/stegotext/internal/errors"
)

func assertRule(t *testing.T, rule validation.Rule, valid, invalid []string) {
	t.Helper()
	for _, v := range valid {
		assert.NoError(t, rule.Validate(v), "expected %q to pass", v)
	}
	for _, v := range invalid {
		assert.Error(t, rule.Validate(v), "expected %q to fail", v)
	}
}

func TestKeyName(t *testing.T) {
	assertRule(t, KeyName,
		[]string{"", "newsletter", "team-a_2026.q3", "0day"},
		[]string{"-newsletter", ".hidden", "team/newsletter", "news letter", "naïve"},
	)
}

func TestHexKey(t *testing.T) {
	assertRule(t, HexKey,
		[]string{"", "0123456789abcdef", "ABC"},
		[]string{"abcg", "12 34", "0x12"},
	)

	t.Run("Error_NotAString", func(t *testing.T) {
		assert.Error(t, HexKey.Validate(42))
	})
}

func TestNotBlank(t *testing.T) {
	assertRule(t, NotBlank,
		[]string{"", "key", " padded "},
		[]string{"   ", "\t\t", " \t\n "},
	)
}

func TestWrapValidationError(t *testing.T) {
	t.Run("Success_Nil", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("Success_WrapsAsInvalidInput", func(t *testing.T) {
		type request struct{ Name string }
		req := request{Name: "-bad"}
		err := validation.ValidateStruct(&req, validation.Field(&req.Name, KeyName))
		require.Error(t, err)

		wrapped := WrapValidationError(err)

		assert.ErrorIs(t, wrapped, apperrors.ErrInvalidInput)
		assert.Contains(t, wrapped.Error(), "Name: must start with a letter or digit")
	})
}

package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeRequest_Validate(t *testing.T) {
	t.Run("Success_PlainEncode", func(t *testing.T) {
		req := EncodeRequest{Secret: "Hi", Cover: "cover"}
		assert.NoError(t, req.Validate())
	})

	t.Run("Success_EmptySecret", func(t *testing.T) {
		req := EncodeRequest{Cover: "cover"}
		assert.NoError(t, req.Validate())
	})

	t.Run("Success_InlineKey", func(t *testing.T) {
		req := EncodeRequest{Secret: "Hi", Cover: "cover", KeySelector: KeySelector{DynamicKey: "ab"}}
		assert.NoError(t, req.Validate())
	})

	t.Run("Success_KeyName", func(t *testing.T) {
		req := EncodeRequest{Secret: "Hi", Cover: "cover", KeySelector: KeySelector{KeyName: "newsletter"}}
		assert.NoError(t, req.Validate())
	})

	t.Run("Error_MissingCover", func(t *testing.T) {
		req := EncodeRequest{Secret: "Hi"}
		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cover")
	})

	t.Run("Error_NonHexKey", func(t *testing.T) {
		req := EncodeRequest{Secret: "Hi", Cover: "cover", KeySelector: KeySelector{DynamicKey: "xyz"}}
		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "dynamic_key")
	})

	t.Run("Error_BothKeys", func(t *testing.T) {
		req := EncodeRequest{
			Secret:      "Hi",
			Cover:       "cover",
			KeySelector: KeySelector{DynamicKey: "ab", KeyName: "newsletter"},
		}
		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "mutually exclusive")
	})
}

func TestDecodeAndInspectRequest_Validate(t *testing.T) {
	assert.NoError(t, (&DecodeRequest{Stego: "text"}).Validate())
	assert.Error(t, (&DecodeRequest{}).Validate())
	assert.Error(t, (&DecodeRequest{Stego: "text", KeySelector: KeySelector{KeyName: "bad/name"}}).Validate())

	assert.NoError(t, (&InspectRequest{Stego: "text"}).Validate())
	assert.Error(t, (&InspectRequest{}).Validate())
}

func TestCreateKeyRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		keyName   string
		shouldErr bool
	}{
		{name: "valid", keyName: "newsletter-2026", shouldErr: false},
		{name: "empty", keyName: "", shouldErr: true},
		{name: "blank", keyName: "   ", shouldErr: true},
		{name: "too long", keyName: strings.Repeat("a", 256), shouldErr: true},
		{name: "slash", keyName: "a/b", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&CreateKeyRequest{Name: tt.keyName}).Validate()
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

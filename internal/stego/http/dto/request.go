// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"errors"

	validation "github.com/jellydator/validation"

	"github.com/allisson/stegotext/internal/stego/domain"
	customValidation "github.com/allisson/stegotext/internal/validation"
)

var errKeyConflict = errors.New("dynamic_key and key_name are mutually exclusive")

// KeySelector picks the dynamic key for a request: an inline hex key, the name
// of a stored key, or neither for plaintext embedding.
type KeySelector struct {
	DynamicKey string `json:"dynamic_key,omitempty"`
	KeyName    string `json:"key_name,omitempty"`
}

func (k *KeySelector) fields() []*validation.FieldRules {
	return []*validation.FieldRules{
		validation.Field(&k.DynamicKey,
			customValidation.HexKey,
			validation.When(k.KeyName != "", validation.Empty.Error(errKeyConflict.Error())),
		),
		validation.Field(&k.KeyName,
			validation.Length(1, domain.MaxKeyNameLength),
			customValidation.KeyName,
		),
	}
}

// EncodeRequest contains the parameters for hiding a secret in a cover text.
type EncodeRequest struct {
	Secret string `json:"secret"`
	Cover  string `json:"cover"`
	KeySelector
}

// Validate checks if the encode request is valid. An empty secret is allowed.
func (r *EncodeRequest) Validate() error {
	rules := append([]*validation.FieldRules{
		validation.Field(&r.Cover, validation.Required),
	}, r.fields()...)
	return validation.ValidateStruct(r, rules...)
}

// DecodeRequest contains the parameters for recovering a secret.
type DecodeRequest struct {
	Stego string `json:"stego"`
	KeySelector
}

// Validate checks if the decode request is valid.
func (r *DecodeRequest) Validate() error {
	rules := append([]*validation.FieldRules{
		validation.Field(&r.Stego, validation.Required),
	}, r.fields()...)
	return validation.ValidateStruct(r, rules...)
}

// InspectRequest contains the text to inspect.
type InspectRequest struct {
	Stego string `json:"stego"`
}

// Validate checks if the inspect request is valid.
func (r *InspectRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Stego, validation.Required),
	)
}

// CreateKeyRequest contains the parameters for registering a new stored key.
type CreateKeyRequest struct {
	Name string `json:"name"`
}

// Validate checks if the create key request is valid.
func (r *CreateKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, domain.MaxKeyNameLength),
			customValidation.KeyName,
		),
	)
}

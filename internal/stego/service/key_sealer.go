package service

import (
	"context"
	"fmt"

	"github.com/allisson/stegotext/internal/stego/domain"
)

// keySealer implements KeySealer. With a nil keeper, keys are stored as their
// hex representation and marked unsealed.
type keySealer struct {
	keeper KMSKeeper
}

// NewKeySealer creates a KeySealer. Pass a nil keeper to store keys unsealed.
func NewKeySealer(keeper KMSKeeper) KeySealer {
	return &keySealer{keeper: keeper}
}

// Seal encrypts the hex form of key with the keeper when one is configured.
func (s *keySealer) Seal(ctx context.Context, key domain.Key) ([]byte, bool, error) {
	if err := key.Validate(); err != nil {
		return nil, false, err
	}

	plaintext := []byte(key.String())
	if s.keeper == nil {
		return plaintext, false, nil
	}
	defer domain.Zero(plaintext)

	sealed, err := s.keeper.Encrypt(ctx, plaintext)
	if err != nil {
		return nil, false, fmt.Errorf("failed to seal key: %w", err)
	}
	return sealed, true, nil
}

// Unseal decrypts sealed material and parses the recovered hex key.
// Material that was sealed by a keeper cannot be opened without one.
func (s *keySealer) Unseal(ctx context.Context, sealed []byte, isSealed bool) (domain.Key, error) {
	if !isSealed {
		return domain.ParseKey(string(sealed))
	}
	if s.keeper == nil {
		return domain.Key{}, fmt.Errorf("key material is sealed but no KMS keeper is configured")
	}

	plaintext, err := s.keeper.Decrypt(ctx, sealed)
	if err != nil {
		return domain.Key{}, fmt.Errorf("failed to unseal key: %w", err)
	}
	defer domain.Zero(plaintext)

	return domain.ParseKey(string(plaintext))
}

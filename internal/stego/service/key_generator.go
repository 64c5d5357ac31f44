package service

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/allisson/stegotext/internal/stego/domain"
)

const (
	// keyDerivationContext prefixes every salt so derived keys are bound to
	// this use. Bump the version whenever the derivation changes.
	keyDerivationContext = "stegotext-dynamic-key-v2:"
	// pbkdf2Iterations is the PBKDF2-SHA256 work factor for passphrase keys.
	pbkdf2Iterations = 600_000
)

type keyGenerator struct {
	random io.Reader
}

// NewKeyGenerator creates a KeyGenerator backed by crypto/rand.
func NewKeyGenerator() KeyGenerator {
	return &keyGenerator{random: rand.Reader}
}

// NewKeyGeneratorWithReader creates a KeyGenerator reading from r.
// Tests use it to make generation deterministic.
func NewKeyGeneratorWithReader(r io.Reader) KeyGenerator {
	return &keyGenerator{random: r}
}

// Generate reads size random bytes and expands them into 2*size nibbles.
func (g *keyGenerator) Generate(size int) (domain.Key, error) {
	if size <= 0 {
		return domain.Key{}, fmt.Errorf("%w: key size must be positive, got %d", domain.ErrInvalidKey, size)
	}

	buf := make([]byte, size)
	defer domain.Zero(buf)

	if _, err := io.ReadFull(g.random, buf); err != nil {
		return domain.Key{}, fmt.Errorf("failed to read random key bytes: %w", err)
	}

	return domain.NewKeyFromBytes(buf)
}

// Derive stretches a passphrase into size key bytes with PBKDF2-SHA256.
// The same passphrase and salt always produce the same key, so two parties can
// agree on a key without exchanging a key file.
func (g *keyGenerator) Derive(passphrase, salt []byte, size int) (domain.Key, error) {
	if len(passphrase) == 0 {
		return domain.Key{}, fmt.Errorf("%w: passphrase is empty", domain.ErrEmptyInput)
	}
	if size <= 0 {
		return domain.Key{}, fmt.Errorf("%w: key size must be positive, got %d", domain.ErrInvalidKey, size)
	}

	fullSalt := append([]byte(keyDerivationContext), salt...)
	buf := pbkdf2.Key(passphrase, fullSalt, pbkdf2Iterations, size, sha256.New)
	defer domain.Zero(buf)

	return domain.NewKeyFromBytes(buf)
}

// Package service implements the zero-width steganography core: the bit codec,
// the keyed cipher, the embedder and extractor, plus key generation and sealing.
//
// Every codec, cipher, embedder, extractor and inspector operation is a pure
// function of its inputs and is safe for concurrent use.
package service

import (
	"context"

	"github.com/allisson/stegotext/internal/stego/domain"
)

// BitCodec converts text to bits and bits to marker glyphs.
type BitCodec interface {
	// TextToBits expands the UTF-8 bytes of text into bits, most significant bit first.
	TextToBits(text string) domain.Bits

	// BitsToText groups bits into bytes and decodes them as UTF-8.
	// Returns ErrMalformedBitLength when len(bits) is not a multiple of 8 and
	// ErrInvalidEncoding when the bytes are not valid UTF-8.
	BitsToText(bits domain.Bits) (string, error)

	// Marker returns the glyph for a bit: 1 → U+200D, 0 → U+200C.
	Marker(bit uint8) rune

	// BitOf is the inverse of Marker. ok is false for any other rune.
	BitOf(r rune) (bit uint8, ok bool)
}

// KeyedCipher is a deterministic, key-driven, reversible text transform.
// It is an obfuscation layer, not a secure cipher.
type KeyedCipher interface {
	// Encrypt applies the nibble substitution and then the keyed transposition.
	Encrypt(text string, key domain.Key) (string, error)

	// Decrypt applies the inverse transposition and then the substitution again.
	Decrypt(cipherText string, key domain.Key) (string, error)
}

// Embedder interleaves payload bits into a cover text.
type Embedder interface {
	Embed(cover string, bits domain.Bits) string
}

// Extractor recovers payload bits from a stego text.
type Extractor interface {
	Extract(stego string) domain.Bits
}

// Inspector reports on the marker glyphs present in a text without a key.
type Inspector interface {
	Inspect(stego string) domain.InspectionReport

	// SingleByteXOR reads the marker payload as bytes, XORs it with every key
	// from 0 to 255 and returns the top candidates, best score first.
	// top <= 0 returns all 256.
	SingleByteXOR(stego string, top int) []domain.XORCandidate
}

// KeyGenerator creates dynamic keys.
type KeyGenerator interface {
	// Generate returns a key built from size bytes of CSPRNG output.
	Generate(size int) (domain.Key, error)

	// Derive returns a key of size bytes derived from a passphrase with PBKDF2-SHA256.
	Derive(passphrase, salt []byte, size int) (domain.Key, error)
}

// KMSKeeper is the subset of *secrets.Keeper used to seal stored keys.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// KMSService opens KMS keepers from key URIs.
type KMSService interface {
	OpenKeeper(ctx context.Context, keyURI string) (KMSKeeper, error)
}

// KeySealer protects stored key material at rest.
type KeySealer interface {
	// Seal returns the stored form of key and whether a KMS keeper produced it.
	Seal(ctx context.Context, key domain.Key) (sealed []byte, isSealed bool, err error)

	// Unseal reverses Seal.
	Unseal(ctx context.Context, sealed []byte, isSealed bool) (domain.Key, error)
}

// Package usecase implements business logic orchestration for zero-width
// steganography.
//
// # Key Components
//
// The package includes:
//   - StegoUseCase: Encode, Decode and Inspect over the core services
//   - KeyUseCase: Server-side registry of named dynamic keys
//   - Metrics decorators for both use cases
//
// # Pipeline
//
//	secret → KeyedCipher.Encrypt → BitCodec.TextToBits → Embedder.Embed(cover) → stego
//	stego → Extractor.Extract → BitCodec.BitsToText → KeyedCipher.Decrypt → secret
//
// # Business Rules
//
//   - An empty cover or stego text is rejected with ErrEmptyInput
//   - An empty secret returns the cover unchanged; that identity only holds
//     for covers without U+200C/U+200D, since those are stripped first
//   - Marker glyphs already present in the cover are stripped before embedding
//   - A secret larger than the configured limit is rejected with ErrPayloadTooLarge
//   - Payload bits that do not fit are appended after the cover and logged as overflow
//
// # Usage Example
//
//	stegoUC := usecase.NewStegoUseCase(codec, cipher, embedder, extractor, inspector, 1<<20, logger)
//
//	out, err := stegoUC.Encode(ctx, &domain.EncodeInput{Secret: "meet at noon", Cover: cover, Key: &key})
//	secret, err := stegoUC.Decode(ctx, &domain.DecodeInput{Stego: out.Stego, Key: &key})
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/allisson/stegotext/internal/stego/domain"
	"github.com/allisson/stegotext/internal/stego/service"
)

// stegoUseCase implements StegoUseCase.
type stegoUseCase struct {
	codec          service.BitCodec
	cipher         service.KeyedCipher
	embedder       service.Embedder
	extractor      service.Extractor
	inspector      service.Inspector
	maxSecretBytes int
	logger         *slog.Logger
}

// Encode hides input.Secret inside input.Cover.
//
// Returns:
//   - The stego text with bit and overflow counts
//   - ErrEmptyInput if the cover holds no visible codepoint
//   - ErrInvalidEncoding if the secret or the cover is not valid UTF-8
//   - ErrPayloadTooLarge if the secret exceeds the configured limit
//   - ErrInvalidKey if a key is given but empty
func (s *stegoUseCase) Encode(ctx context.Context, input *domain.EncodeInput) (*domain.EncodeOutput, error) {
	if !utf8.ValidString(input.Secret) || !utf8.ValidString(input.Cover) {
		return nil, fmt.Errorf("%w: secret and cover must be valid utf-8", domain.ErrInvalidEncoding)
	}
	if s.maxSecretBytes > 0 && len(input.Secret) > s.maxSecretBytes {
		return nil, fmt.Errorf("%w: secret is %d bytes, limit is %d",
			domain.ErrPayloadTooLarge, len(input.Secret), s.maxSecretBytes)
	}

	cover, stripped := s.stripMarkers(input.Cover)
	if cover == "" {
		return nil, fmt.Errorf("%w: cover text is empty", domain.ErrEmptyInput)
	}
	if stripped > 0 {
		s.logger.WarnContext(ctx, "removed marker glyphs from cover text",
			slog.Int("stripped_markers", stripped))
	}

	output := &domain.EncodeOutput{Stego: cover, StrippedMarkers: stripped}
	if input.Secret == "" {
		return output, nil
	}

	payload := input.Secret
	if input.Key != nil {
		encrypted, err := s.cipher.Encrypt(payload, *input.Key)
		if err != nil {
			return nil, err
		}
		payload = encrypted
	}

	bits := s.codec.TextToBits(payload)
	output.Stego = s.embedder.Embed(cover, bits)
	output.BitCount = bits.Len()

	if overflow := bits.Len() - utf8.RuneCountInString(cover); overflow > 0 {
		output.Overflow = overflow
		s.logger.WarnContext(ctx, "payload overflowed cover text",
			slog.Int("bit_count", bits.Len()),
			slog.Int("cover_length", bits.Len()-overflow),
			slog.Int("trailing_markers", overflow))
	}

	return output, nil
}

// Decode recovers the secret hidden in input.Stego.
//
// A stego text without markers decodes to an empty secret.
func (s *stegoUseCase) Decode(ctx context.Context, input *domain.DecodeInput) (string, error) {
	if input.Stego == "" {
		return "", fmt.Errorf("%w: stego text is empty", domain.ErrEmptyInput)
	}
	if !utf8.ValidString(input.Stego) {
		return "", fmt.Errorf("%w: stego text is not valid utf-8", domain.ErrInvalidEncoding)
	}

	bits := s.extractor.Extract(input.Stego)
	payload, err := s.codec.BitsToText(bits)
	if err != nil {
		return "", err
	}
	if payload == "" || input.Key == nil {
		return payload, nil
	}

	return s.cipher.Decrypt(payload, *input.Key)
}

// Inspect reports on the marker glyphs in stego.
func (s *stegoUseCase) Inspect(ctx context.Context, stego string) (*domain.InspectionReport, error) {
	if stego == "" {
		return nil, fmt.Errorf("%w: stego text is empty", domain.ErrEmptyInput)
	}
	if !utf8.ValidString(stego) {
		return nil, fmt.Errorf("%w: stego text is not valid utf-8", domain.ErrInvalidEncoding)
	}

	report := s.inspector.Inspect(stego)
	return &report, nil
}

// BruteForceXOR runs the single-byte XOR attack against the payload in stego.
func (s *stegoUseCase) BruteForceXOR(ctx context.Context, stego string, top int) ([]domain.XORCandidate, error) {
	if stego == "" {
		return nil, fmt.Errorf("%w: stego text is empty", domain.ErrEmptyInput)
	}
	if !utf8.ValidString(stego) {
		return nil, fmt.Errorf("%w: stego text is not valid utf-8", domain.ErrInvalidEncoding)
	}

	return s.inspector.SingleByteXOR(stego, top), nil
}

// stripMarkers removes marker glyphs from cover and returns how many it removed.
func (s *stegoUseCase) stripMarkers(cover string) (string, int) {
	removed := 0
	clean := strings.Map(func(r rune) rune {
		if _, ok := s.codec.BitOf(r); ok {
			removed++
			return -1
		}
		return r
	}, cover)
	return clean, removed
}

// NewStegoUseCase creates a new StegoUseCase. A maxSecretBytes of zero or less
// disables the size limit.
func NewStegoUseCase(
	codec service.BitCodec,
	cipher service.KeyedCipher,
	embedder service.Embedder,
	extractor service.Extractor,
	inspector service.Inspector,
	maxSecretBytes int,
	logger *slog.Logger,
) StegoUseCase {
	return &stegoUseCase{
		codec:          codec,
		cipher:         cipher,
		embedder:       embedder,
		extractor:      extractor,
		inspector:      inspector,
		maxSecretBytes: maxSecretBytes,
		logger:         logger,
	}
}

package service

import (
	"fmt"
	"unicode/utf8"

	"github.com/allisson/stegotext/internal/stego/domain"
)

// bitCodec implements BitCodec using UTF-8 byte expansion.
//
// Every UTF-8 byte of the text becomes eight bits, so the full Unicode range
// round-trips. A codepoint outside ASCII expands to 16, 24 or 32 bits.
type bitCodec struct{}

// NewBitCodec creates a new BitCodec.
func NewBitCodec() BitCodec {
	return &bitCodec{}
}

// TextToBits expands each byte of text into 8 bits, most significant bit first.
func (c *bitCodec) TextToBits(text string) domain.Bits {
	bits := make(domain.Bits, 0, len(text)*domain.BitsPerByte)
	for i := 0; i < len(text); i++ {
		b := text[i]
		for shift := domain.BitsPerByte - 1; shift >= 0; shift-- {
			bits = append(bits, (b>>uint(shift))&1)
		}
	}
	return bits
}

// BitsToText packs bits into bytes and decodes the bytes as UTF-8.
func (c *bitCodec) BitsToText(bits domain.Bits) (string, error) {
	if !bits.ByteAligned() {
		return "", fmt.Errorf("%w: %d bits is not a multiple of %d",
			domain.ErrMalformedBitLength, len(bits), domain.BitsPerByte)
	}

	buf := make([]byte, len(bits)/domain.BitsPerByte)
	for i := range buf {
		var v byte
		for _, bit := range bits[i*domain.BitsPerByte : (i+1)*domain.BitsPerByte] {
			v <<= 1
			if bit != 0 {
				v |= 1
			}
		}
		buf[i] = v
	}

	if !utf8.Valid(buf) {
		return "", fmt.Errorf("%w: recovered payload is not valid utf-8", domain.ErrInvalidEncoding)
	}

	return string(buf), nil
}

// Marker maps a bit to its zero-width glyph.
func (c *bitCodec) Marker(bit uint8) rune {
	if bit != 0 {
		return domain.MarkerOne
	}
	return domain.MarkerZero
}

// BitOf maps a zero-width glyph back to its bit.
func (c *bitCodec) BitOf(r rune) (uint8, bool) {
	switch r {
	case domain.MarkerOne:
		return 1, true
	case domain.MarkerZero:
		return 0, true
	default:
		return 0, false
	}
}

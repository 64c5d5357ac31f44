package service

import (
	"github.com/allisson/stegotext/internal/stego/domain"
)

// extractor implements Extractor. It reads every marker glyph in scan order and
// skips everything else, so it does not care how many cover codepoints sit
// between markers.
type extractor struct {
	codec BitCodec
}

// NewExtractor creates a new Extractor that reads glyphs with codec.
func NewExtractor(codec BitCodec) Extractor {
	return &extractor{codec: codec}
}

// Extract returns the embedded bits. A text without markers yields an empty
// sequence.
func (x *extractor) Extract(stego string) domain.Bits {
	bits := make(domain.Bits, 0)
	for _, r := range stego {
		if bit, ok := x.codec.BitOf(r); ok {
			bits = append(bits, bit)
		}
	}
	return bits
}

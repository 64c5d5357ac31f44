package service

import (
	"strings"

	"github.com/allisson/stegotext/internal/stego/domain"
)

// embedder implements Embedder by placing one marker glyph after each cover
// codepoint while bits remain.
//
// When the cover runs out first, the remaining markers are appended as one
// contiguous run at the end of the output. That run is visible to anyone who
// looks for zero-width glyphs; the Inspector reports it as TrailingMarkers.
type embedder struct {
	codec BitCodec
}

// NewEmbedder creates a new Embedder that renders bits with codec.
func NewEmbedder(codec BitCodec) Embedder {
	return &embedder{codec: codec}
}

// Embed returns cover with bits interleaved. The output holds exactly
// RuneCount(cover) + len(bits) codepoints.
func (e *embedder) Embed(cover string, bits domain.Bits) string {
	var sb strings.Builder
	// Each marker takes 3 bytes in UTF-8.
	sb.Grow(len(cover) + len(bits)*3)

	next := 0
	for _, r := range cover {
		sb.WriteRune(r)
		if next < len(bits) {
			sb.WriteRune(e.codec.Marker(bits[next]))
			next++
		}
	}

	for ; next < len(bits); next++ {
		sb.WriteRune(e.codec.Marker(bits[next]))
	}

	return sb.String()
}

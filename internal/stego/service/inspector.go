package service

import (
	"cmp"
	"slices"

	"github.com/allisson/stegotext/internal/stego/domain"
)

type inspector struct {
	codec BitCodec
}

// NewInspector creates a new Inspector.
func NewInspector(codec BitCodec) Inspector {
	return &inspector{codec: codec}
}

// Inspect counts marker glyphs and measures the run of markers after the last
// cover codepoint. The embedder always puts one marker right after the last
// cover codepoint when bits remain, so only markers past that one count as
// trailing. With no cover codepoints at all, every marker is trailing.
func (in *inspector) Inspect(stego string) domain.InspectionReport {
	var report domain.InspectionReport
	sinceCover := 0

	for _, r := range stego {
		bit, ok := in.codec.BitOf(r)
		if !ok {
			report.CoverLength++
			sinceCover = 0
			continue
		}

		report.MarkerCount++
		if bit == 1 {
			report.OneCount++
		} else {
			report.ZeroCount++
		}
		sinceCover++
	}

	report.TrailingMarkers = sinceCover
	if report.CoverLength > 0 && sinceCover > 0 {
		report.TrailingMarkers = sinceCover - 1
	}
	report.ByteAligned = report.MarkerCount%domain.BitsPerByte == 0

	return report
}

const xorKeySpace = 256

func (in *inspector) SingleByteXOR(stego string, top int) []domain.XORCandidate {
	var bits domain.Bits
	for _, r := range stego {
		if bit, ok := in.codec.BitOf(r); ok {
			bits = append(bits, bit)
		}
	}
	payload := bits.Bytes()

	candidates := make([]domain.XORCandidate, 0, xorKeySpace)
	buf := make([]byte, len(payload))
	for k := 0; k < xorKeySpace; k++ {
		key := uint8(k)
		for i, b := range payload {
			buf[i] = b ^ key
		}
		candidates = append(candidates, domain.XORCandidate{
			Key:   key,
			Text:  string(buf),
			Score: wordByteRatio(buf),
		})
	}

	// Stable so equal scores stay in key order.
	slices.SortStableFunc(candidates, func(a, b domain.XORCandidate) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if top > 0 && top < len(candidates) {
		candidates = candidates[:top]
	}
	return candidates
}

// wordByteRatio returns the fraction of ASCII letters, digits and spaces in b.
func wordByteRatio(b []byte) float64 {
	if len(b) == 0 {
		return 0
	}
	n := 0
	for _, c := range b {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == ' ':
			n++
		}
	}
	return float64(n) / float64(len(b))
}

package domain

import (
	"fmt"
	"strings"
)

// Bits is an ordered bit sequence. Each element holds 0 or 1.
//
// Payload bytes are expanded most-significant bit first, so the text "Hi"
// becomes 0100100001101001.
type Bits []uint8

// ParseBits builds a Bits value from a string of '0' and '1' characters.
func ParseBits(s string) (Bits, error) {
	bits := make(Bits, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bits = append(bits, 0)
		case '1':
			bits = append(bits, 1)
		default:
			return nil, fmt.Errorf("invalid bit character %q at position %d", s[i], i)
		}
	}
	return bits, nil
}

// Len returns the number of bits.
func (b Bits) Len() int {
	return len(b)
}

// ByteAligned reports whether the sequence can be grouped into whole bytes.
func (b Bits) ByteAligned() bool {
	return len(b)%BitsPerByte == 0
}

// Bytes packs the bits into bytes, most significant bit first. A trailing
// partial byte is dropped.
func (b Bits) Bytes() []byte {
	out := make([]byte, len(b)/BitsPerByte)
	for i := range out {
		for _, bit := range b[i*BitsPerByte : (i+1)*BitsPerByte] {
			out[i] = out[i]<<1 | bit&1
		}
	}
	return out
}

// String renders the bits as a string of '0' and '1' characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		if bit == 0 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
	}
	return sb.String()
}

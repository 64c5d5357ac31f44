// Package domain defines the core steganography domain models.
package domain

const (
	// MarkerOne is the zero-width joiner (U+200D). It encodes a 1 bit.
	MarkerOne = '\u200d'

	// MarkerZero is the zero-width non-joiner (U+200C). It encodes a 0 bit.
	MarkerZero = '\u200c'

	// BitsPerByte is the width of one expanded payload byte.
	BitsPerByte = 8

	// DefaultKeySize is the number of random bytes in a generated dynamic key.
	// 16 bytes render as 32 hex nibbles.
	DefaultKeySize = 16

	// MaxKeyNameLength is the maximum allowed length for stored key names.
	// This limit aligns with database schema constraints (VARCHAR(255)).
	MaxKeyNameLength = 255
)

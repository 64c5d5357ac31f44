package domain

import (
	"fmt"
	"strings"
)

const hexDigits = "0123456789abcdef"

// Key is a dynamic key: a non-empty sequence of 4-bit nibbles used cyclically
// by the keyed cipher.
//
// A key is written as a string of hex characters, one character per nibble. The
// number of nibbles does not need to be even. Keys are immutable once created;
// the same key must be used to encrypt and decrypt a payload.
type Key struct {
	nibbles []uint8
}

// ParseKey builds a Key from its hex representation.
//
// Upper and lower case digits are accepted. Returns ErrInvalidKey if the string
// is empty or contains a character outside 0-9a-fA-F.
//
// Example:
//
//	key, err := domain.ParseKey("ab")
//	// key.Len() == 2, key.Nibble(0) == 10, key.Nibble(1) == 11
func ParseKey(s string) (Key, error) {
	if s == "" {
		return Key{}, fmt.Errorf("%w: key is empty", ErrInvalidKey)
	}

	nibbles := make([]uint8, 0, len(s))
	for i := 0; i < len(s); i++ {
		v, ok := nibbleValue(s[i])
		if !ok {
			return Key{}, fmt.Errorf("%w: invalid hex character at position %d", ErrInvalidKey, i)
		}
		nibbles = append(nibbles, v)
	}

	return Key{nibbles: nibbles}, nil
}

// NewKeyFromBytes expands raw key bytes into nibbles, high nibble first.
// The result renders exactly like hex.EncodeToString(b).
func NewKeyFromBytes(b []byte) (Key, error) {
	if len(b) == 0 {
		return Key{}, fmt.Errorf("%w: key is empty", ErrInvalidKey)
	}

	nibbles := make([]uint8, 0, len(b)*2)
	for _, v := range b {
		nibbles = append(nibbles, v>>4, v&0x0f)
	}

	return Key{nibbles: nibbles}, nil
}

// Len returns the number of nibbles in the key.
func (k Key) Len() int {
	return len(k.nibbles)
}

// IsZero reports whether the key holds no nibbles.
func (k Key) IsZero() bool {
	return len(k.nibbles) == 0
}

// Nibble returns the nibble used at text position i. The key repeats cyclically.
// It panics on a zero key; callers validate with Validate first.
func (k Key) Nibble(i int) uint8 {
	return k.nibbles[i%len(k.nibbles)]
}

// Validate returns ErrInvalidKey for a zero key.
func (k Key) Validate() error {
	if k.IsZero() {
		return fmt.Errorf("%w: key is empty", ErrInvalidKey)
	}
	return nil
}

// Equal reports whether both keys hold the same nibbles.
func (k Key) Equal(other Key) bool {
	if len(k.nibbles) != len(other.nibbles) {
		return false
	}
	for i := range k.nibbles {
		if k.nibbles[i] != other.nibbles[i] {
			return false
		}
	}
	return true
}

// String renders the key as lowercase hex, one character per nibble.
func (k Key) String() string {
	var sb strings.Builder
	sb.Grow(len(k.nibbles))
	for _, n := range k.nibbles {
		sb.WriteByte(hexDigits[n])
	}
	return sb.String()
}

// nibbleValue decodes one hex character.
func nibbleValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

package service

import (
	"fmt"
	"unicode/utf8"

	"github.com/allisson/stegotext/internal/stego/domain"
)

// Multipliers for the swap schedule hash. Any odd 64-bit constants work; the
// schedule only has to be reproducible from the key and the position.
const (
	swapPositionMix = 0x9e3779b97f4a7c15
	swapNibbleMix   = 0xbf58476d1ce4e5b9
)

// keyedCipher implements KeyedCipher over codepoints.
//
// Substitution XORs codepoint i with nibble key[i mod len(key)]. XOR only
// touches the low four bits, and every UTF-8 length class and the surrogate
// block start on a multiple of 16, so a valid scalar value always maps to a
// valid scalar value with the same UTF-8 width.
//
// Transposition is a keyed swap schedule: for i from n-1 down to 1, position i
// is swapped with position j(i) in [0, i], where j depends only on i and the
// key nibble for i. Replaying the same swaps from i = 1 upwards undoes it.
type keyedCipher struct{}

// NewKeyedCipher creates a new KeyedCipher.
func NewKeyedCipher() KeyedCipher {
	return &keyedCipher{}
}

// Encrypt substitutes then transposes. An empty text returns an empty result
// without consulting the key.
func (c *keyedCipher) Encrypt(text string, key domain.Key) (string, error) {
	runes, err := c.prepare(text, key)
	if err != nil || runes == nil {
		return "", err
	}

	substitute(runes, key)
	transpose(runes, key)

	return string(runes), nil
}

// Decrypt undoes the transposition then substitutes again (XOR is self-inverse).
func (c *keyedCipher) Decrypt(cipherText string, key domain.Key) (string, error) {
	runes, err := c.prepare(cipherText, key)
	if err != nil || runes == nil {
		return "", err
	}

	untranspose(runes, key)
	substitute(runes, key)

	return string(runes), nil
}

// prepare validates the inputs and returns the codepoints of text.
// It returns nil runes and no error for an empty text.
func (c *keyedCipher) prepare(text string, key domain.Key) ([]rune, error) {
	if text == "" {
		return nil, nil
	}
	if err := key.Validate(); err != nil {
		return nil, err
	}
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: text is not valid utf-8", domain.ErrInvalidEncoding)
	}
	return []rune(text), nil
}

// substitute XORs every codepoint with its key nibble in place.
func substitute(runes []rune, key domain.Key) {
	for i := range runes {
		runes[i] ^= rune(key.Nibble(i))
	}
}

// transpose applies the keyed swap schedule in place.
func transpose(runes []rune, key domain.Key) {
	for i := len(runes) - 1; i > 0; i-- {
		j := swapIndex(i, key.Nibble(i))
		runes[i], runes[j] = runes[j], runes[i]
	}
}

// untranspose replays the swap schedule in reverse order.
func untranspose(runes []rune, key domain.Key) {
	for i := 1; i < len(runes); i++ {
		j := swapIndex(i, key.Nibble(i))
		runes[i], runes[j] = runes[j], runes[i]
	}
}

// swapIndex returns the partner position in [0, i] for position i.
func swapIndex(i int, nibble uint8) int {
	h := uint64(i)*swapPositionMix ^ (uint64(nibble)+1)*swapNibbleMix
	h ^= h >> 31
	return int(h % uint64(i+1))
}

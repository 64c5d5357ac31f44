package domain

// EncodeInput holds the data needed to hide a secret inside a cover text.
// A nil Key embeds the secret without the keyed cipher.
type EncodeInput struct {
	Secret string
	Cover  string
	Key    *Key
}

// EncodeOutput is the result of an encode operation.
//
// Overflow counts the bits that did not fit after a cover codepoint and were
// appended as a contiguous run at the end of Stego.
type EncodeOutput struct {
	Stego    string
	BitCount int
	Overflow int
	// StrippedMarkers counts marker glyphs removed from the cover before
	// embedding. They would otherwise be read back as payload bits.
	StrippedMarkers int
}

// DecodeInput holds the data needed to recover a secret from a stego text.
// A nil Key returns the embedded payload as-is.
type DecodeInput struct {
	Stego string
	Key   *Key
}

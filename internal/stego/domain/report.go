package domain

// InspectionReport describes the zero-width markers found in a text.
//
// It needs no key: it only counts glyphs. A non-zero TrailingMarkers value
// means the payload overflowed its cover and the tail of the hidden message
// sits in one contiguous run of invisible glyphs after the last visible
// character, which is easy to spot.
type InspectionReport struct {
	// MarkerCount is the total number of marker glyphs found.
	MarkerCount int `json:"marker_count"`
	// OneCount is the number of U+200D markers.
	OneCount int `json:"one_count"`
	// ZeroCount is the number of U+200C markers.
	ZeroCount int `json:"zero_count"`
	// CoverLength is the number of non-marker codepoints.
	CoverLength int `json:"cover_length"`
	// TrailingMarkers is the number of markers after the last cover codepoint
	// beyond the one marker the embedder places after it.
	TrailingMarkers int `json:"trailing_markers"`
	// ByteAligned reports whether MarkerCount is a multiple of 8.
	ByteAligned bool `json:"byte_aligned"`
}

// HasPayload reports whether any marker glyph was found.
func (r InspectionReport) HasPayload() bool {
	return r.MarkerCount > 0
}

// XORCandidate is the recovered payload read back under one single-byte XOR key.
//
// Score is the fraction of bytes that are ASCII letters, digits or spaces. A
// candidate scoring near 1 under a non-zero key shows that a weak XOR cipher
// leaks the message to anyone who can see the markers.
type XORCandidate struct {
	Key   uint8   `json:"key"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

package domain

import (
	"github.com/allisson/stegotext/internal/errors"
)

// Steganography error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors so the
// HTTP layer can map them to status codes without knowing about steganography.
var (
	// ErrInvalidKey indicates the dynamic key is empty or contains a character
	// outside 0-9a-fA-F.
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrInvalidKey = errors.Wrap(errors.ErrInvalidInput, "invalid key")

	// ErrMalformedBitLength indicates a bit sequence whose length is not a
	// multiple of 8 was handed to the bit codec.
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrMalformedBitLength = errors.Wrap(errors.ErrInvalidInput, "malformed bit length")

	// ErrEmptyInput indicates a cover or stego text was empty where content is required.
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrEmptyInput = errors.Wrap(errors.ErrInvalidInput, "empty input")

	// ErrInvalidEncoding indicates a text or a recovered payload is not valid UTF-8.
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrInvalidEncoding = errors.Wrap(errors.ErrInvalidInput, "invalid utf-8 encoding")

	// ErrPayloadTooLarge indicates the secret exceeds the configured size limit.
	//
	// HTTP Status: 413 Request Entity Too Large
	ErrPayloadTooLarge = errors.Wrap(errors.ErrTooLarge, "payload too large")

	// ErrInvalidKeyFile indicates a key file is not a JSON object carrying a
	// non-empty dynamic_key field.
	ErrInvalidKeyFile = errors.Wrap(errors.ErrInvalidInput, "invalid key file")

	// ErrUnsupportedMediaType indicates a text artifact is not plain text.
	//
	// HTTP Status: 415 Unsupported Media Type
	ErrUnsupportedMediaType = errors.Wrap(errors.ErrUnsupportedMedia, "unsupported media type")

	// ErrInvalidKeyName indicates a stored key name is empty or longer than
	// MaxKeyNameLength.
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrInvalidKeyName = errors.Wrap(errors.ErrInvalidInput, "invalid key name")

	// ErrKeyNotFound indicates no stored key exists with the requested name.
	//
	// HTTP Status: 404 Not Found
	ErrKeyNotFound = errors.Wrap(errors.ErrNotFound, "key not found")

	// ErrKeyAlreadyExists indicates a stored key with the same name already exists.
	//
	// HTTP Status: 409 Conflict
	ErrKeyAlreadyExists = errors.Wrap(errors.ErrConflict, "key already exists")
)

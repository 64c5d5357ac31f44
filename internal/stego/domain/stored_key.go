package domain

import (
	"time"

	"github.com/google/uuid"
)

// StoredKey is a dynamic key registered on the server under a unique name.
//
// The key material is kept sealed: when a KMS keeper is configured, SealedKey
// holds the keeper ciphertext of the hex key and Sealed is true. Without a
// keeper, SealedKey holds the hex key bytes as-is and Sealed is false.
//
// Fields:
//   - ID: Unique identifier (UUIDv7)
//   - Name: Human-readable unique name (e.g., "newsletter-2026")
//   - SealedKey: Sealed key material
//   - Sealed: Whether SealedKey was produced by a KMS keeper
//   - CreatedAt: Creation timestamp (UTC)
type StoredKey struct {
	ID        uuid.UUID
	Name      string
	SealedKey []byte
	Sealed    bool
	CreatedAt time.Time
}

// KeyFile is the JSON document persisted next to a stego artifact so it can be
// decoded later.
type KeyFile struct {
	DynamicKey string `json:"dynamic_key"`
}

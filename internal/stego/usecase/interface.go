package usecase

import (
	"context"

	"github.com/allisson/stegotext/internal/stego/domain"
)

// KeyRepository defines the interface for stored key persistence.
type KeyRepository interface {
	Create(ctx context.Context, key *domain.StoredKey) error
	GetByName(ctx context.Context, name string) (*domain.StoredKey, error)
	List(ctx context.Context, offset, limit int) ([]*domain.StoredKey, error)
	DeleteByName(ctx context.Context, name string) error
}

// StegoUseCase defines the interface for hiding and recovering secrets.
type StegoUseCase interface {
	// Encode encrypts the secret when a key is given and embeds it in the cover.
	Encode(ctx context.Context, input *domain.EncodeInput) (*domain.EncodeOutput, error)

	// Decode extracts the payload and decrypts it when a key is given.
	Decode(ctx context.Context, input *domain.DecodeInput) (string, error)

	// Inspect reports on the marker glyphs in stego without a key.
	Inspect(ctx context.Context, stego string) (*domain.InspectionReport, error)

	// BruteForceXOR tries every single-byte XOR key on the recovered payload
	// and returns the top candidates, best first.
	BruteForceXOR(ctx context.Context, stego string, top int) ([]domain.XORCandidate, error)
}

// KeyUseCase defines the interface for the server-side key registry.
type KeyUseCase interface {
	// Create generates a new dynamic key and stores it sealed under name.
	// The plaintext key is returned once so the caller can hand it out.
	Create(ctx context.Context, name string) (*domain.StoredKey, domain.Key, error)

	// Get loads and unseals the key stored under name.
	Get(ctx context.Context, name string) (domain.Key, error)

	// List returns stored keys ordered by name. Key material stays sealed.
	List(ctx context.Context, offset, limit int) ([]*domain.StoredKey, error)

	// Delete removes the key stored under name.
	Delete(ctx context.Context, name string) error
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/allisson/stegotext/internal/stego/domain"
	"github.com/allisson/stegotext/internal/storage"
)

// ArtifactStore is the subset of *storage.ArtifactStore used for key files.
type ArtifactStore interface {
	ReadBytes(ctx context.Context, name string) ([]byte, error)
	WriteBytes(ctx context.Context, name string, data []byte, contentType string) error
}

// KeyFileRepository persists dynamic keys as JSON key files:
//
//	{"dynamic_key": "3f9a..."}
type KeyFileRepository struct {
	store ArtifactStore
}

// Load reads and parses the key file stored under name.
func (r *KeyFileRepository) Load(ctx context.Context, name string) (domain.Key, error) {
	data, err := r.store.ReadBytes(ctx, name)
	if err != nil {
		return domain.Key{}, err
	}

	var keyFile domain.KeyFile
	if err := json.Unmarshal(data, &keyFile); err != nil {
		return domain.Key{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidKeyFile, name, err)
	}

	hexKey := strings.TrimSpace(keyFile.DynamicKey)
	if hexKey == "" {
		return domain.Key{}, fmt.Errorf("%w: %s: dynamic_key is missing", domain.ErrInvalidKeyFile, name)
	}

	key, err := domain.ParseKey(hexKey)
	if err != nil {
		return domain.Key{}, fmt.Errorf("%w: %s: %w", domain.ErrInvalidKeyFile, name, err)
	}
	return key, nil
}

// Save writes key as a key file under name, replacing any existing file.
func (r *KeyFileRepository) Save(ctx context.Context, name string, key domain.Key) error {
	if err := key.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(domain.KeyFile{DynamicKey: key.String()}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode key file: %w", err)
	}
	data = append(data, '\n')

	return r.store.WriteBytes(ctx, name, data, storage.JSONContentType)
}

// NewKeyFileRepository creates a new KeyFileRepository over store.
func NewKeyFileRepository(store ArtifactStore) *KeyFileRepository {
	return &KeyFileRepository{store: store}
}

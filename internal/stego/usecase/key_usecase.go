package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/stegotext/internal/database"
	apperrors "github.com/allisson/stegotext/internal/errors"
	"github.com/allisson/stegotext/internal/stego/domain"
	"github.com/allisson/stegotext/internal/stego/service"
)

// keyUseCase implements KeyUseCase.
//
// Key material is sealed by the KeySealer before it reaches the repository and
// unsealed on the way out, so the repository never handles a plaintext key
// unless no KMS keeper is configured.
type keyUseCase struct {
	txManager database.TxManager
	keyRepo   KeyRepository
	generator service.KeyGenerator
	sealer    service.KeySealer
	keySize   int
}

// Create generates, seals and stores a new dynamic key under name.
//
// The existence check and the insert run in one transaction. The repository
// also maps unique constraint violations to ErrKeyAlreadyExists, which covers
// a concurrent insert between the two steps.
func (k *keyUseCase) Create(ctx context.Context, name string) (*domain.StoredKey, domain.Key, error) {
	name = strings.TrimSpace(name)
	if err := validateKeyName(name); err != nil {
		return nil, domain.Key{}, err
	}

	var (
		storedKey *domain.StoredKey
		key       domain.Key
	)

	err := k.txManager.WithTx(ctx, func(ctx context.Context) error {
		existing, err := k.keyRepo.GetByName(ctx, name)
		if err != nil && !apperrors.Is(err, domain.ErrKeyNotFound) {
			return err
		}
		if existing != nil {
			return domain.ErrKeyAlreadyExists
		}

		key, err = k.generator.Generate(k.keySize)
		if err != nil {
			return err
		}

		sealed, isSealed, err := k.sealer.Seal(ctx, key)
		if err != nil {
			return err
		}

		storedKey = &domain.StoredKey{
			ID:        uuid.Must(uuid.NewV7()),
			Name:      name,
			SealedKey: sealed,
			Sealed:    isSealed,
			CreatedAt: time.Now().UTC(),
		}
		return k.keyRepo.Create(ctx, storedKey)
	})
	if err != nil {
		return nil, domain.Key{}, err
	}

	return storedKey, key, nil
}

// Get loads the key stored under name and unseals it.
func (k *keyUseCase) Get(ctx context.Context, name string) (domain.Key, error) {
	storedKey, err := k.keyRepo.GetByName(ctx, name)
	if err != nil {
		return domain.Key{}, err
	}

	key, err := k.sealer.Unseal(ctx, storedKey.SealedKey, storedKey.Sealed)
	if err != nil {
		return domain.Key{}, fmt.Errorf("failed to open key %q: %w", name, err)
	}
	return key, nil
}

// List returns stored keys ordered by name with pagination.
func (k *keyUseCase) List(ctx context.Context, offset, limit int) ([]*domain.StoredKey, error) {
	return k.keyRepo.List(ctx, offset, limit)
}

// Delete removes the key stored under name. Returns ErrKeyNotFound if no such key exists.
func (k *keyUseCase) Delete(ctx context.Context, name string) error {
	return k.keyRepo.DeleteByName(ctx, name)
}

func validateKeyName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", domain.ErrInvalidKeyName)
	}
	if len(name) > domain.MaxKeyNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", domain.ErrInvalidKeyName, domain.MaxKeyNameLength)
	}
	return nil
}

// NewKeyUseCase creates a new KeyUseCase. keySize is the number of random
// bytes per generated key.
func NewKeyUseCase(
	txManager database.TxManager,
	keyRepo KeyRepository,
	generator service.KeyGenerator,
	sealer service.KeySealer,
	keySize int,
) KeyUseCase {
	if keySize <= 0 {
		keySize = domain.DefaultKeySize
	}
	return &keyUseCase{
		txManager: txManager,
		keyRepo:   keyRepo,
		generator: generator,
		sealer:    sealer,
		keySize:   keySize,
	}
}

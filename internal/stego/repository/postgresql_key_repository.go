// Package repository implements persistence for dynamic keys.
//
// Two kinds of storage are provided:
//   - KeyFileRepository: JSON key files in the artifact bucket, used by the CLI
//   - PostgreSQL and MySQL repositories: the server-side key registry in the
//     stego_keys table, used by the HTTP API
//
// # Database Support
//
// Each SQL repository has two implementations:
//   - PostgreSQL: Uses native UUID type and BYTEA for sealed key material
//   - MySQL: Uses BINARY(16) for UUIDs and BLOB for sealed key material
//
// # Transaction Support
//
// All SQL repositories support transaction-aware operations via database.GetTx().
// When called within a transaction context, repositories automatically use the
// transaction connection.
//
// # Usage Example
//
//	keyRepo := repository.NewPostgreSQLKeyRepository(db)
//
//	txManager := database.NewTxManager(db)
//	err := txManager.WithTx(ctx, func(txCtx context.Context) error {
//	    return keyRepo.Create(txCtx, storedKey)
//	})
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/allisson/stegotext/internal/database"
	apperrors "github.com/allisson/stegotext/internal/errors"
	"github.com/allisson/stegotext/internal/stego/domain"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// PostgreSQLKeyRepository implements stored key persistence for PostgreSQL databases.
//
// Database schema requirements:
//   - id: UUID PRIMARY KEY
//   - name: VARCHAR(255) UNIQUE
//   - sealed_key: BYTEA
//   - sealed: BOOLEAN
//   - created_at: TIMESTAMP WITH TIME ZONE
type PostgreSQLKeyRepository struct {
	db *sql.DB
}

// Create inserts a new stored key. Returns ErrKeyAlreadyExists when the name is taken.
func (p *PostgreSQLKeyRepository) Create(ctx context.Context, key *domain.StoredKey) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO stego_keys (id, name, sealed_key, sealed, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(ctx, query, key.ID, key.Name, key.SealedKey, key.Sealed, key.CreatedAt)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrKeyAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create stego key")
	}
	return nil
}

// GetByName retrieves a stored key by name. Returns ErrKeyNotFound if no row matches.
func (p *PostgreSQLKeyRepository) GetByName(ctx context.Context, name string) (*domain.StoredKey, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, sealed_key, sealed, created_at FROM stego_keys WHERE name = $1`

	var key domain.StoredKey
	err := querier.QueryRowContext(ctx, query, name).Scan(
		&key.ID,
		&key.Name,
		&key.SealedKey,
		&key.Sealed,
		&key.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get stego key by name")
	}

	return &key, nil
}

// List retrieves stored keys ordered by name with pagination.
func (p *PostgreSQLKeyRepository) List(ctx context.Context, offset, limit int) ([]*domain.StoredKey, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, sealed_key, sealed, created_at FROM stego_keys
			  ORDER BY name ASC LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list stego keys")
	}
	defer func() {
		_ = rows.Close()
	}()

	keys := make([]*domain.StoredKey, 0)
	for rows.Next() {
		var key domain.StoredKey
		if err := rows.Scan(&key.ID, &key.Name, &key.SealedKey, &key.Sealed, &key.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan stego key")
		}
		keys = append(keys, &key)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate stego keys")
	}

	return keys, nil
}

// DeleteByName removes a stored key. Returns ErrKeyNotFound if no row matches.
func (p *PostgreSQLKeyRepository) DeleteByName(ctx context.Context, name string) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM stego_keys WHERE name = $1`, name)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete stego key")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return domain.ErrKeyNotFound
	}
	return nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgUniqueViolation
	}
	return false
}

// NewPostgreSQLKeyRepository creates a new PostgreSQL stored key repository.
func NewPostgreSQLKeyRepository(db *sql.DB) *PostgreSQLKeyRepository {
	return &PostgreSQLKeyRepository{db: db}
}

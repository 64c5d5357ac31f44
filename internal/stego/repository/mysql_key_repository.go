package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/allisson/stegotext/internal/database"
	apperrors "github.com/allisson/stegotext/internal/errors"
	"github.com/allisson/stegotext/internal/stego/domain"
)

// mysqlDuplicateEntry is the MySQL error number for ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// MySQLKeyRepository implements stored key persistence for MySQL databases.
//
// Database schema requirements:
//   - id: BINARY(16) PRIMARY KEY
//   - name: VARCHAR(255) UNIQUE
//   - sealed_key: BLOB
//   - sealed: BOOLEAN
//   - created_at: DATETIME(6)
type MySQLKeyRepository struct {
	db *sql.DB
}

// Create inserts a new stored key. Returns ErrKeyAlreadyExists when the name is taken.
func (m *MySQLKeyRepository) Create(ctx context.Context, key *domain.StoredKey) error {
	querier := database.GetTx(ctx, m.db)

	id, err := key.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal stego key id")
	}

	query := `INSERT INTO stego_keys (id, name, sealed_key, sealed, created_at) VALUES (?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query, id, key.Name, key.SealedKey, key.Sealed, key.CreatedAt)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrKeyAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create stego key")
	}
	return nil
}

// GetByName retrieves a stored key by name. Returns ErrKeyNotFound if no row matches.
func (m *MySQLKeyRepository) GetByName(ctx context.Context, name string) (*domain.StoredKey, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, sealed_key, sealed, created_at FROM stego_keys WHERE name = ?`

	var (
		key domain.StoredKey
		id  []byte
	)
	err := querier.QueryRowContext(ctx, query, name).Scan(&id, &key.Name, &key.SealedKey, &key.Sealed, &key.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get stego key by name")
	}

	if key.ID, err = unmarshalID(id); err != nil {
		return nil, err
	}
	return &key, nil
}

// List retrieves stored keys ordered by name with pagination.
func (m *MySQLKeyRepository) List(ctx context.Context, offset, limit int) ([]*domain.StoredKey, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, sealed_key, sealed, created_at FROM stego_keys
			  ORDER BY name ASC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list stego keys")
	}
	defer func() {
		_ = rows.Close()
	}()

	keys := make([]*domain.StoredKey, 0)
	for rows.Next() {
		var (
			key domain.StoredKey
			id  []byte
		)
		if err := rows.Scan(&id, &key.Name, &key.SealedKey, &key.Sealed, &key.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan stego key")
		}
		if key.ID, err = unmarshalID(id); err != nil {
			return nil, err
		}
		keys = append(keys, &key)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate stego keys")
	}

	return keys, nil
}

// DeleteByName removes a stored key. Returns ErrKeyNotFound if no row matches.
func (m *MySQLKeyRepository) DeleteByName(ctx context.Context, name string) error {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM stego_keys WHERE name = ?`, name)
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

func unmarshalID(b []byte) (uuid.UUID, error) {
	var id uuid.UUID
	if err := id.UnmarshalBinary(b); err != nil {
		return uuid.Nil, apperrors.Wrap(err, "failed to unmarshal stego key id")
	}
	return id, nil
}

// isMySQLUniqueViolation checks if the error is a MySQL duplicate entry error.
func isMySQLUniqueViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	return false
}

// NewMySQLKeyRepository creates a new MySQL stored key repository.
func NewMySQLKeyRepository(db *sql.DB) *MySQLKeyRepository {
	return &MySQLKeyRepository{db: db}
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/stegotext/internal/database"
	"github.com/allisson/stegotext/internal/stego/domain"
)

func newSQLMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, mock
}

func createTestStoredKey() *domain.StoredKey {
	return &domain.StoredKey{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      "newsletter",
		SealedKey: []byte("sealed-key"),
		Sealed:    true,
		CreatedAt: time.Now().UTC(),
	}
}

var storedKeyColumns = []string{"id", "name", "sealed_key", "sealed", "created_at"}

func TestPostgreSQLKeyRepository_Create(t *testing.T) {
	ctx := context.Background()
	insert := regexp.QuoteMeta(`INSERT INTO stego_keys (id, name, sealed_key, sealed, created_at)`)

	t.Run("Success_Create", func(t *testing.T) {
		db, mock := newSQLMock(t)
		repo := NewPostgreSQLKeyRepository(db)
		key := createTestStoredKey()

		mock.ExpectExec(insert).
			WithArgs(key.ID, key.Name, key.SealedKey, key.Sealed, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Create(ctx, key))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_CreateInsideTransaction", func(t *testing.T) {
		db, mock := newSQLMock(t)
		repo := NewPostgreSQLKeyRepository(db)
		key := createTestStoredKey()

		mock.ExpectBegin()
		mock.ExpectExec(insert).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := database.NewTxManager(db).WithTx(ctx, func(ctx context.Context) error {
			return repo.Create(ctx, key)
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_UniqueViolation", func(t *testing.T) {
		db, mock := newSQLMock(t)
		repo := NewPostgreSQLKeyRepository(db)

		mock.ExpectExec(insert).WillReturnError(&pq.Error{Code: pgUniqueViolation})

		err := repo.Create(ctx, createTestStoredKey())
		assert.ErrorIs(t, err, domain.ErrKeyAlreadyExists)
	})

	t.Run("Error_Database", func(t *testing.T) {
		db, mock := newSQLMock(t)
		repo := NewPostgreSQLKeyRepository(db)

		mock.ExpectExec(insert).WillReturnError(errors.New("connection refused"))

		err := repo.Create(ctx, createTestStoredKey())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create stego key")
	})
}

func TestPostgreSQLKeyRepository_GetByName(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, name, sealed_key, sealed, created_at FROM stego_keys WHERE name = $1`)

	t.Run("Success_Found", func(t *testing.T) {
		db, mock := newSQLMock(t)
		repo := NewPostgreSQLKeyRepository(db)
		key := createTestStoredKey()

		mock.ExpectQuery(query).
			WithArgs("newsletter").
			WillReturnRows(sqlmock.NewRows(storedKeyColumns).
				AddRow(key.ID.String(), key.Name, key.SealedKey, key.Sealed, key.CreatedAt))

		got, err := repo.GetByName(ctx, "newsletter")
		require.NoError(t, err)
		assert.Equal(t, key.ID, got.ID)
		assert.Equal(t, key.Name, got.Name)
		assert.Equal(t, key.SealedKey, got.SealedKey)
		assert.True(t, got.Sealed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := newSQLMock(t)
		repo := NewPostgreSQLKeyRepository(db)

		mock.ExpectQuery(query).WithArgs("missing").WillReturnError(sql.ErrNoRows)

		got, err := repo.GetByName(ctx, "missing")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})
}

func TestPostgreSQLKeyRepository_List(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, name, sealed_key, sealed, created_at FROM stego_keys`)

	t.Run("Success_List", func(t *testing.T) {
		db, mock := newSQLMock(t)
		repo := NewPostgreSQLKeyRepository(db)
		first, second := createTestStoredKey(), createTestStoredKey()
		second.Name = "zeta"

		mock.ExpectQuery(query).
			WithArgs(10, 0).
			WillReturnRows(sqlmock.NewRows(storedKeyColumns).
				AddRow(first.ID.String(), first.Name, first.SealedKey, first.Sealed, first.CreatedAt).
				AddRow(second.ID.String(), second.Name, second.SealedKey, second.Sealed, second.CreatedAt))

		keys, err := repo.List(ctx, 0, 10)
		require.NoError(t, err)
		require.Len(t, keys, 2)
		assert.Equal(t, "zeta", keys[1].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_Empty", func(t *testing.T) {
		db, mock := newSQLMock(t)
		repo := NewPostgreSQLKeyRepository(db)

		mock.ExpectQuery(query).WithArgs(10, 20).WillReturnRows(sqlmock.NewRows(storedKeyColumns))

		keys, err := repo.List(ctx, 20, 10)
		require.NoError(t, err)
		assert.NotNil(t, keys)
		assert.Empty(t, keys)
	})
}

func TestPostgreSQLKeyRepository_DeleteByName(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`DELETE FROM stego_keys WHERE name = $1`)

	t.Run("Success_Delete", func(t *testing.T) {
		db, mock := newSQLMock(t)
		repo := NewPostgreSQLKeyRepository(db)

		mock.ExpectExec(query).WithArgs("newsletter").WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteByName(ctx, "newsletter"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := newSQLMock(t)
		repo := NewPostgreSQLKeyRepository(db)

		mock.ExpectExec(query).WithArgs("missing").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteByName(ctx, "missing"), domain.ErrKeyNotFound)
	})
}

package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	apperrors "github.com/allisson/stegotext/internal/errors"
)

func newMemStore(t *testing.T) *ArtifactStore {
	t.Helper()
	store := NewArtifactStore(memblob.OpenBucket(nil))
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func TestArtifactStore_Text(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RoundTrip", func(t *testing.T) {
		store := newMemStore(t)
		text := "cover text with ünïcødé and a hidden \u200d\u200c payload"

		require.NoError(t, store.WriteText(ctx, "steg.txt", text))

		got, err := store.ReadText(ctx, "steg.txt")
		require.NoError(t, err)
		assert.Equal(t, text, got)
	})

	t.Run("Success_EmptyArtifact", func(t *testing.T) {
		store := newMemStore(t)
		require.NoError(t, store.WriteText(ctx, "empty.txt", ""))

		got, err := store.ReadText(ctx, "empty.txt")
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("Success_HTMLIsText", func(t *testing.T) {
		store := newMemStore(t)
		require.NoError(t, store.WriteBytes(ctx, "page.html", []byte("<html><body>hi</body></html>"), "text/html"))

		got, err := store.ReadText(ctx, "page.html")
		require.NoError(t, err)
		assert.Contains(t, got, "hi")
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		store := newMemStore(t)

		_, err := store.ReadText(ctx, "missing.txt")
		assert.ErrorIs(t, err, ErrArtifactNotFound)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("Error_BinaryContent", func(t *testing.T) {
		store := newMemStore(t)
		png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d}
		require.NoError(t, store.WriteBytes(ctx, "image.png", png, "image/png"))

		_, err := store.ReadText(ctx, "image.png")
		assert.ErrorIs(t, err, ErrNotPlainText)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("Error_WriteInvalidUTF8", func(t *testing.T) {
		store := newMemStore(t)

		err := store.WriteText(ctx, "bad.txt", "bad \xff")
		assert.ErrorIs(t, err, ErrNotUTF8)
	})
}

func TestArtifactStore_Exists(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(t)

	ok, err := store.Exists(ctx, "key.json")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.WriteBytes(ctx, "key.json", []byte(`{"dynamic_key":"ab"}`), JSONContentType))

	ok, err = store.Exists(ctx, "key.json")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_LocalDirectory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "artifacts")

		store, err := Open(ctx, dir)
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, store.Close())
		}()

		require.NoError(t, store.WriteText(ctx, "cover.txt", "plain cover"))

		data, err := os.ReadFile(filepath.Join(dir, "cover.txt"))
		require.NoError(t, err)
		assert.Equal(t, "plain cover", string(data))

		_, err = os.Stat(filepath.Join(dir, "cover.txt.attrs"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("Success_MemURL", func(t *testing.T) {
		store, err := Open(ctx, "mem://")
		require.NoError(t, err)
		assert.NoError(t, store.Close())
	})

	t.Run("Error_UnknownScheme", func(t *testing.T) {
		_, err := Open(ctx, "nope://bucket")
		assert.Error(t, err)
	})
}

func TestValidateText(t *testing.T) {
	assert.NoError(t, ValidateText(nil))
	assert.NoError(t, ValidateText([]byte("hello")))
	assert.NoError(t, ValidateText([]byte(`{"dynamic_key":"ab"}`)))
	assert.Error(t, ValidateText([]byte{0x00, 0x01, 0x02, 0xff, 0xfe}))
}

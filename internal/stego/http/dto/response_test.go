package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/stegotext/internal/stego/domain"
)

func TestMapCreatedKeyToResponse(t *testing.T) {
	storedKey := &domain.StoredKey{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      "newsletter",
		SealedKey: []byte("sealed"),
		Sealed:    true,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	key, err := domain.ParseKey("abcd")
	require.NoError(t, err)

	data, err := json.Marshal(MapCreatedKeyToResponse(storedKey, key))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": "`+storedKey.ID.String()+`",
		"name": "newsletter",
		"sealed": true,
		"created_at": "2026-01-02T03:04:05Z",
		"dynamic_key": "abcd"
	}`, string(data))
}

func TestMapStoredKeysToListResponse(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		data, err := json.Marshal(MapStoredKeysToListResponse(nil))
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":[]}`, string(data))
	})

	t.Run("NoKeyMaterial", func(t *testing.T) {
		keys := []*domain.StoredKey{{ID: uuid.Must(uuid.NewV7()), Name: "a", SealedKey: []byte("secret-bytes")}}

		data, err := json.Marshal(MapStoredKeysToListResponse(keys))
		require.NoError(t, err)
		assert.NotContains(t, string(data), "secret-bytes")
		assert.NotContains(t, string(data), "dynamic_key")
	})
}

func TestMapInspectionReportToResponse(t *testing.T) {
	report := &domain.InspectionReport{MarkerCount: 16, OneCount: 6, ZeroCount: 10, CoverLength: 10, TrailingMarkers: 6, ByteAligned: true}

	data, err := json.Marshal(MapInspectionReportToResponse(report))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"marker_count": 16,
		"one_count": 6,
		"zero_count": 10,
		"cover_length": 10,
		"trailing_markers": 6,
		"byte_aligned": true,
		"has_payload": true
	}`, string(data))
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/stegotext/internal/stego/domain"
)

func TestParseBits(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		bits, err := domain.ParseBits("0100100001101001")

		require.NoError(t, err)
		assert.Equal(t, 16, bits.Len())
		assert.True(t, bits.ByteAligned())
		assert.Equal(t, "0100100001101001", bits.String())
	})

	t.Run("Success_Empty", func(t *testing.T) {
		bits, err := domain.ParseBits("")

		require.NoError(t, err)
		assert.Equal(t, 0, bits.Len())
		assert.True(t, bits.ByteAligned())
	})

	t.Run("Error_InvalidCharacter", func(t *testing.T) {
		_, err := domain.ParseBits("0102")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "position 3")
	})
}

func TestBits_ByteAligned(t *testing.T) {
	assert.False(t, domain.Bits{1, 0, 1}.ByteAligned())
	assert.True(t, domain.Bits{0, 0, 0, 0, 0, 0, 0, 1}.ByteAligned())
}

func TestInspectionReport_HasPayload(t *testing.T) {
	assert.False(t, domain.InspectionReport{}.HasPayload())
	assert.True(t, domain.InspectionReport{MarkerCount: 1}.HasPayload())
}

func TestBits_Bytes(t *testing.T) {
	bits, err := domain.ParseBits("0100100001101001")
	require.NoError(t, err)
	assert.Equal(t, []byte("Hi"), bits.Bytes())

	partial, err := domain.ParseBits("01001000011")
	require.NoError(t, err)
	assert.Equal(t, []byte("H"), partial.Bytes())
	assert.Empty(t, domain.Bits(nil).Bytes())
}

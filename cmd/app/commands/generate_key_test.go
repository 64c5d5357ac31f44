package commands

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/stegotext/internal/stego/domain"
	stegoService "github.com/allisson/stegotext/internal/stego/service"
	"github.com/allisson/stegotext/internal/stego/service/mocks"
)

func TestRunGenerateKey(t *testing.T) {
	t.Run("success-random-to-file", func(t *testing.T) {
		env := newTestEnv(t)

		err := RunGenerateKey(env.ctx, stegoService.NewKeyGenerator(), env.keyFiles, env.logger, env.out,
			"key.json", 16, "", "")
		require.NoError(t, err)
		assert.Contains(t, env.out.String(), "Key file written to key.json")

		key, err := env.keyFiles.Load(env.ctx, "key.json")
		require.NoError(t, err)
		assert.Equal(t, 32, key.Len())
	})

	t.Run("success-random-to-stdout", func(t *testing.T) {
		env := newTestEnv(t)

		err := RunGenerateKey(env.ctx, stegoService.NewKeyGenerator(), env.keyFiles, env.logger, env.out,
			"", 4, "", "")
		require.NoError(t, err)

		printed := strings.TrimSpace(env.out.String())
		assert.Len(t, printed, 8)
		_, err = domain.ParseKey(printed)
		assert.NoError(t, err)
	})

	t.Run("success-derived-is-deterministic", func(t *testing.T) {
		env := newTestEnv(t)
		generator := stegoService.NewKeyGenerator()

		require.NoError(t, RunGenerateKey(env.ctx, generator, env.keyFiles, env.logger, env.out,
			"a.json", 16, "correct horse", "salt"))
		require.NoError(t, RunGenerateKey(env.ctx, generator, env.keyFiles, env.logger, env.out,
			"b.json", 16, "correct horse", "salt"))

		a, err := env.keyFiles.Load(env.ctx, "a.json")
		require.NoError(t, err)
		b, err := env.keyFiles.Load(env.ctx, "b.json")
		require.NoError(t, err)
		assert.Equal(t, a.String(), b.String())
	})

	t.Run("salt-without-passphrase", func(t *testing.T) {
		env := newTestEnv(t)

		err := RunGenerateKey(env.ctx, stegoService.NewKeyGenerator(), env.keyFiles, env.logger, env.out,
			"key.json", 16, "", "salt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--salt requires --passphrase")
	})

	t.Run("generator-error", func(t *testing.T) {
		env := newTestEnv(t)
		generator := mocks.NewMockKeyGenerator(t)
		generator.EXPECT().Generate(16).Return(domain.Key{}, errors.New("entropy exhausted")).Once()

		err := RunGenerateKey(env.ctx, generator, env.keyFiles, env.logger, env.out, "key.json", 16, "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to generate key")
	})
}

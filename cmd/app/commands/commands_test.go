package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/allisson/stegotext/internal/stego/repository"
	stegoService "github.com/allisson/stegotext/internal/stego/service"
	stegoUseCase "github.com/allisson/stegotext/internal/stego/usecase"
	"github.com/allisson/stegotext/internal/storage"
)

// testEnv bundles an in-memory artifact bucket with the real stego pipeline.
type testEnv struct {
	ctx      context.Context
	logger   *slog.Logger
	store    *storage.ArtifactStore
	keyFiles *repository.KeyFileRepository
	useCase  stegoUseCase.StegoUseCase
	out      *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := storage.Open(ctx, "mem://")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	codec := stegoService.NewBitCodec()
	useCase := stegoUseCase.NewStegoUseCase(
		codec,
		stegoService.NewKeyedCipher(),
		stegoService.NewEmbedder(codec),
		stegoService.NewExtractor(codec),
		stegoService.NewInspector(codec),
		1024,
		logger,
	)

	return &testEnv{
		ctx:      ctx,
		logger:   logger,
		store:    store,
		keyFiles: repository.NewKeyFileRepository(store),
		useCase:  useCase,
		out:      &bytes.Buffer{},
	}
}

func (e *testEnv) writeText(t *testing.T, name, text string) {
	t.Helper()
	require.NoError(t, e.store.WriteText(e.ctx, name, text))
}

func (e *testEnv) readText(t *testing.T, name string) string {
	t.Helper()
	text, err := e.store.ReadText(e.ctx, name)
	require.NoError(t, err)
	return text
}

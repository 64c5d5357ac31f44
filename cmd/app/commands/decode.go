package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/allisson/stegotext/internal/stego/domain"
	stegoUseCase "github.com/allisson/stegotext/internal/stego/usecase"
)

// RunDecode recovers the hidden secret from the stego artifact at inPath and
// prints it to writer.
func RunDecode(
	ctx context.Context,
	useCase stegoUseCase.StegoUseCase,
	texts TextStore,
	keyFiles KeyFileStore,
	logger *slog.Logger,
	writer io.Writer,
	inPath string,
	keyPath string,
	plain bool,
) error {
	if err := validateKeyOptions(keyPath, plain); err != nil {
		return err
	}

	var (
		stego string
		key   *domain.Key
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stego, err = texts.ReadText(gctx, inPath)
		if err != nil {
			return fmt.Errorf("failed to read stego text %s: %w", inPath, err)
		}
		return nil
	})
	if !plain {
		g.Go(func() error {
			k, err := keyFiles.Load(gctx, keyPath)
			if err != nil {
				return fmt.Errorf("failed to load key file %s: %w", keyPath, err)
			}
			key = &k
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	secret, err := useCase.Decode(ctx, &domain.DecodeInput{Stego: stego, Key: key})
	if err != nil {
		return fmt.Errorf("failed to decode: %w", err)
	}

	logger.Debug("secret recovered", slog.Int("bytes", len(secret)))

	_, err = io.WriteString(writer, secret)
	return err
}

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

// EncodeOptions names the artifacts used by RunEncode.
type EncodeOptions struct {
	SecretPath string
	CoverPath  string
	KeyPath    string
	OutPath    string
	Plain      bool
}

// RunEncode hides the secret artifact inside the cover artifact.
//
// The secret, cover and key file are loaded concurrently. The stego text is
// written to OutPath, or to writer when OutPath is empty.
func RunEncode(
	ctx context.Context,
	useCase stegoUseCase.StegoUseCase,
	texts TextStore,
	keyFiles KeyFileStore,
	logger *slog.Logger,
	writer io.Writer,
	opts EncodeOptions,
) error {
	if err := validateKeyOptions(opts.KeyPath, opts.Plain); err != nil {
		return err
	}

	var (
		secret, cover string
		key           *domain.Key
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		secret, err = texts.ReadText(gctx, opts.SecretPath)
		if err != nil {
			return fmt.Errorf("failed to read secret %s: %w", opts.SecretPath, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cover, err = texts.ReadText(gctx, opts.CoverPath)
		if err != nil {
			return fmt.Errorf("failed to read cover %s: %w", opts.CoverPath, err)
		}
		return nil
	})
	if !opts.Plain {
		g.Go(func() error {
			k, err := keyFiles.Load(gctx, opts.KeyPath)
			if err != nil {
				return fmt.Errorf("failed to load key file %s: %w", opts.KeyPath, err)
			}
			key = &k
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	output, err := useCase.Encode(ctx, &domain.EncodeInput{
		Secret: secret,
		Cover:  cover,
		Key:    key,
	})
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}

	logger.Info("secret embedded",
		slog.Int("bit_count", output.BitCount),
		slog.Int("overflow", output.Overflow),
		slog.Int("stripped_markers", output.StrippedMarkers),
		slog.Bool("plain", opts.Plain),
	)

	if opts.OutPath == "" {
		_, err := io.WriteString(writer, output.Stego)
		return err
	}

	if err := texts.WriteText(ctx, opts.OutPath, output.Stego); err != nil {
		return fmt.Errorf("failed to write stego text %s: %w", opts.OutPath, err)
	}

	_, err = fmt.Fprintf(writer, "Embedded %d bits into %s (overflow: %d)\n", output.BitCount, opts.OutPath, output.Overflow)
	return err
}

// validateKeyOptions requires exactly one of a key file or --plain.
func validateKeyOptions(keyPath string, plain bool) error {
	switch {
	case keyPath == "" && !plain:
		return fmt.Errorf("--key is required unless --plain is set")
	case keyPath != "" && plain:
		return fmt.Errorf("--key and --plain are mutually exclusive")
	default:
		return nil
	}
}

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/stegotext/internal/stego/domain"
	stegoService "github.com/allisson/stegotext/internal/stego/service"
)

// RunGenerateKey creates a dynamic key and writes it as a key file.
//
// With a passphrase the key is derived with PBKDF2-SHA256 from the passphrase and
// salt, so the same inputs always give the same key. Without one the key is
// drawn from crypto/rand. When out is empty the hex key is printed instead.
func RunGenerateKey(
	ctx context.Context,
	generator stegoService.KeyGenerator,
	keyFiles KeyFileStore,
	logger *slog.Logger,
	writer io.Writer,
	out string,
	size int,
	passphrase string,
	salt string,
) error {
	if passphrase == "" && salt != "" {
		return fmt.Errorf("--salt requires --passphrase")
	}

	var (
		key  domain.Key
		mode string
		err  error
	)
	if passphrase != "" {
		mode = "derived"
		key, err = generator.Derive([]byte(passphrase), []byte(salt), size)
	} else {
		mode = "random"
		key, err = generator.Generate(size)
	}
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	if out == "" {
		_, err := fmt.Fprintln(writer, key.String())
		return err
	}

	if err := keyFiles.Save(ctx, out, key); err != nil {
		return fmt.Errorf("failed to save key file: %w", err)
	}

	logger.Info("dynamic key generated",
		slog.String("out", out),
		slog.String("mode", mode),
		slog.Int("nibbles", key.Len()),
	)

	_, err = fmt.Fprintf(writer, "Key file written to %s\n", out)
	return err
}

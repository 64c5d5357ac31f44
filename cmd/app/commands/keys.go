package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/allisson/stegotext/internal/httputil"
	stegoUseCase "github.com/allisson/stegotext/internal/stego/usecase"
)

type createdKeyOutput struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	DynamicKey string    `json:"dynamic_key"`
	Sealed     bool      `json:"sealed"`
	CreatedAt  time.Time `json:"created_at"`
}

type keyOutput struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Sealed    bool      `json:"sealed"`
	CreatedAt time.Time `json:"created_at"`
}

// RunCreateKey registers a new dynamic key on the server under name and prints
// it once. Requirements: database must be migrated.
func RunCreateKey(
	ctx context.Context,
	useCase stegoUseCase.KeyUseCase,
	logger *slog.Logger,
	writer io.Writer,
	name string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	storedKey, key, err := useCase.Create(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to create key: %w", err)
	}

	logger.Info("key created",
		slog.String("id", storedKey.ID.String()),
		slog.String("name", storedKey.Name),
		slog.Bool("sealed", storedKey.Sealed),
	)

	if format == formatJSON {
		return writeJSON(writer, createdKeyOutput{
			ID:         storedKey.ID.String(),
			Name:       storedKey.Name,
			DynamicKey: key.String(),
			Sealed:     storedKey.Sealed,
			CreatedAt:  storedKey.CreatedAt,
		})
	}

	_, err = fmt.Fprintf(writer,
		"ID:          %s\nName:        %s\nDynamic key: %s\nSealed:      %t\n\n"+
			"# Store the dynamic key now; it is not shown again.\n",
		storedKey.ID, storedKey.Name, key.String(), storedKey.Sealed,
	)
	return err
}

// RunListKeys prints stored keys ordered by name. Key material is never printed.
func RunListKeys(
	ctx context.Context,
	useCase stegoUseCase.KeyUseCase,
	writer io.Writer,
	offset int,
	limit int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if offset < 0 {
		return fmt.Errorf("invalid offset: must be a non-negative integer")
	}
	if err := httputil.ValidateLimit(limit); err != nil {
		return err
	}

	keys, err := useCase.List(ctx, offset, limit)
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}

	if format == formatJSON {
		out := make([]keyOutput, 0, len(keys))
		for _, k := range keys {
			out = append(out, keyOutput{ID: k.ID.String(), Name: k.Name, Sealed: k.Sealed, CreatedAt: k.CreatedAt})
		}
		return writeJSON(writer, out)
	}

	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tID\tSEALED\tCREATED AT")
	for _, k := range keys {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", k.Name, k.ID, k.Sealed, k.CreatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

// RunDeleteKey removes the stored key registered under name.
func RunDeleteKey(
	ctx context.Context,
	useCase stegoUseCase.KeyUseCase,
	logger *slog.Logger,
	writer io.Writer,
	name string,
) error {
	if err := useCase.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}

	logger.Info("key deleted", slog.String("name", name))

	_, err := fmt.Fprintf(writer, "Key %s deleted\n", name)
	return err
}

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/stegotext/internal/stego/domain"
	stegoUseCase "github.com/allisson/stegotext/internal/stego/usecase"
)

// inspectOutput is the JSON form of an inspect run.
type inspectOutput struct {
	*domain.InspectionReport
	XORCandidates []domain.XORCandidate `json:"xor_candidates,omitempty"`
}

// RunInspect reports on the marker glyphs in the artifact at inPath. It needs no key.
//
// A positive bruteforceTop also runs the single-byte XOR attack on the
// recovered payload and lists that many best candidates.
func RunInspect(
	ctx context.Context,
	useCase stegoUseCase.StegoUseCase,
	texts TextStore,
	logger *slog.Logger,
	writer io.Writer,
	inPath string,
	format string,
	bruteforceTop int,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	text, err := texts.ReadText(ctx, inPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}

	report, err := useCase.Inspect(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to inspect: %w", err)
	}

	if report.TrailingMarkers > 0 {
		logger.Warn("payload overflows its cover",
			slog.String("in", inPath),
			slog.Int("trailing_markers", report.TrailingMarkers),
		)
	}

	var candidates []domain.XORCandidate
	if bruteforceTop > 0 {
		candidates, err = useCase.BruteForceXOR(ctx, text, bruteforceTop)
		if err != nil {
			return fmt.Errorf("failed to brute force: %w", err)
		}
	}

	if format == formatJSON {
		return writeJSON(writer, inspectOutput{InspectionReport: report, XORCandidates: candidates})
	}

	_, err = fmt.Fprintf(writer,
		"File:             %s\n"+
			"Markers:          %d (ones: %d, zeros: %d)\n"+
			"Cover length:     %d\n"+
			"Trailing markers: %d\n"+
			"Byte aligned:     %t\n"+
			"Payload present:  %t\n",
		inPath,
		report.MarkerCount, report.OneCount, report.ZeroCount,
		report.CoverLength,
		report.TrailingMarkers,
		report.ByteAligned,
		report.HasPayload(),
	)
	if err != nil || len(candidates) == 0 {
		return err
	}

	if _, err := fmt.Fprintln(writer, "\nXOR candidates:"); err != nil {
		return err
	}
	for _, c := range candidates {
		if _, err := fmt.Fprintf(writer, "  key 0x%02x  score %.2f  %q\n", c.Key, c.Score, c.Text); err != nil {
			return err
		}
	}
	return nil
}

package usecase

import (
	"context"
	"time"

	"github.com/allisson/stegotext/internal/metrics"
	"github.com/allisson/stegotext/internal/stego/domain"
)

const metricsDomain = "stego"

// record writes the operation counter and duration histogram for one call.
func record(ctx context.Context, m metrics.BusinessMetrics, operation string, start time.Time, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}

	m.RecordOperation(ctx, metricsDomain, operation, status)
	m.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// stegoUseCaseWithMetrics decorates StegoUseCase with metrics instrumentation.
type stegoUseCaseWithMetrics struct {
	next    StegoUseCase
	metrics metrics.BusinessMetrics
}

// NewStegoUseCaseWithMetrics wraps a StegoUseCase with metrics recording.
func NewStegoUseCaseWithMetrics(useCase StegoUseCase, m metrics.BusinessMetrics) StegoUseCase {
	return &stegoUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Encode records metrics for encode operations, including the payload size.
func (s *stegoUseCaseWithMetrics) Encode(ctx context.Context, input *domain.EncodeInput) (*domain.EncodeOutput, error) {
	start := time.Now()
	output, err := s.next.Encode(ctx, input)
	record(ctx, s.metrics, "stego_encode", start, err)
	if err == nil {
		s.metrics.RecordPayload(ctx, "stego_encode", output.BitCount, output.Overflow)
	}
	return output, err
}

// Decode records metrics for decode operations.
func (s *stegoUseCaseWithMetrics) Decode(ctx context.Context, input *domain.DecodeInput) (string, error) {
	start := time.Now()
	secret, err := s.next.Decode(ctx, input)
	record(ctx, s.metrics, "stego_decode", start, err)
	return secret, err
}

// Inspect records metrics for inspect operations.
func (s *stegoUseCaseWithMetrics) Inspect(ctx context.Context, stego string) (*domain.InspectionReport, error) {
	start := time.Now()
	report, err := s.next.Inspect(ctx, stego)
	record(ctx, s.metrics, "stego_inspect", start, err)
	return report, err
}

// BruteForceXOR records metrics for XOR brute-force runs.
func (s *stegoUseCaseWithMetrics) BruteForceXOR(
	ctx context.Context,
	stego string,
	top int,
) ([]domain.XORCandidate, error) {
	start := time.Now()
	candidates, err := s.next.BruteForceXOR(ctx, stego, top)
	record(ctx, s.metrics, "stego_bruteforce", start, err)
	return candidates, err
}

// keyUseCaseWithMetrics decorates KeyUseCase with metrics instrumentation.
type keyUseCaseWithMetrics struct {
	next    KeyUseCase
	metrics metrics.BusinessMetrics
}

// NewKeyUseCaseWithMetrics wraps a KeyUseCase with metrics recording.
func NewKeyUseCaseWithMetrics(useCase KeyUseCase, m metrics.BusinessMetrics) KeyUseCase {
	return &keyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for key creation operations.
func (k *keyUseCaseWithMetrics) Create(ctx context.Context, name string) (*domain.StoredKey, domain.Key, error) {
	start := time.Now()
	storedKey, key, err := k.next.Create(ctx, name)
	record(ctx, k.metrics, "key_create", start, err)
	return storedKey, key, err
}

// Get records metrics for key retrieval operations.
func (k *keyUseCaseWithMetrics) Get(ctx context.Context, name string) (domain.Key, error) {
	start := time.Now()
	key, err := k.next.Get(ctx, name)
	record(ctx, k.metrics, "key_get", start, err)
	return key, err
}

// List records metrics for key listing operations.
func (k *keyUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*domain.StoredKey, error) {
	start := time.Now()
	keys, err := k.next.List(ctx, offset, limit)
	record(ctx, k.metrics, "key_list", start, err)
	return keys, err
}

// Delete records metrics for key deletion operations.
func (k *keyUseCaseWithMetrics) Delete(ctx context.Context, name string) error {
	start := time.Now()
	err := k.next.Delete(ctx, name)
	record(ctx, k.metrics, "key_delete", start, err)
	return err
}

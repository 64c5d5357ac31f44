package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Operation outcomes used as the status label.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// payloadBuckets spans a few bytes up to the default 1 MiB secret limit, in bits.
var payloadBuckets = []float64{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576, 8388608}

// BusinessMetrics records use case operations.
type BusinessMetrics interface {
	// RecordOperation counts one operation. domain is "stego" or "key"; operation
	// names look like "stego_encode" or "key_create".
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration observes how long an operation took.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordPayload observes the number of payload bits an operation embedded
	// or recovered, and how many of them overflowed past the cover text.
	RecordPayload(ctx context.Context, operation string, bits, overflow int)
}

type businessMetrics struct {
	operations metric.Int64Counter
	durations  metric.Float64Histogram
	payload    metric.Int64Histogram
	overflow   metric.Int64Counter
}

// NewBusinessMetrics creates the business instruments on provider.
func NewBusinessMetrics(provider *Provider) (BusinessMetrics, error) {
	meter := provider.MeterProvider().Meter(provider.Namespace())

	operations, err := meter.Int64Counter(
		provider.name("operations_total"),
		metric.WithDescription("Total number of business operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durations, err := meter.Float64Histogram(
		provider.name("operation_duration_seconds"),
		metric.WithDescription("Duration of business operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	payload, err := meter.Int64Histogram(
		provider.name("payload_bits"),
		metric.WithDescription("Payload bits embedded or recovered per operation"),
		metric.WithUnit("{bit}"),
		metric.WithExplicitBucketBoundaries(payloadBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create payload histogram: %w", err)
	}

	overflow, err := meter.Int64Counter(
		provider.name("overflow_bits_total"),
		metric.WithDescription("Payload bits appended after the last cover character"),
		metric.WithUnit("{bit}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create overflow counter: %w", err)
	}

	return &businessMetrics{
		operations: operations,
		durations:  durations,
		payload:    payload,
		overflow:   overflow,
	}, nil
}

func operationAttrs(domain, operation, status string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operations.Add(ctx, 1, operationAttrs(domain, operation, status))
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durations.Record(ctx, duration.Seconds(), operationAttrs(domain, operation, status))
}

func (b *businessMetrics) RecordPayload(ctx context.Context, operation string, bits, overflow int) {
	attrs := metric.WithAttributes(attribute.String("operation", operation))
	b.payload.Record(ctx, int64(bits), attrs)
	if overflow > 0 {
		b.overflow.Add(ctx, int64(overflow), attrs)
	}
}

// NoOpBusinessMetrics is used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {}

func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}

func (n *NoOpBusinessMetrics) RecordPayload(ctx context.Context, operation string, bits, overflow int) {}

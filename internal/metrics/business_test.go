package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMetricLine checks that the Prometheus output contains a metric matching
// the given name, partial label pattern and value. The exporter adds scope
// labels, so labels are matched as a regular expression.
func assertMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func TestBusinessMetrics_Operations(t *testing.T) {
	provider := newTestProvider(t, "biz_test")
	bm, err := NewBusinessMetrics(provider)
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordOperation(ctx, "key", "key_create", StatusSuccess)
	bm.RecordOperation(ctx, "key", "key_create", StatusSuccess)
	bm.RecordOperation(ctx, "key", "key_create", StatusError)
	bm.RecordOperation(ctx, "stego", "stego_encode", StatusSuccess)
	bm.RecordDuration(ctx, "key", "key_create", 50*time.Millisecond, StatusSuccess)
	bm.RecordDuration(ctx, "key", "key_create", 60*time.Millisecond, StatusSuccess)
	bm.RecordDuration(ctx, "stego", "stego_decode", 20*time.Millisecond, StatusSuccess)

	output := scrape(t, provider)

	assertMetricLine(t, output, `biz_test_operations_total`,
		`domain="key".*operation="key_create".*status="success"`, `2`)
	assertMetricLine(t, output, `biz_test_operations_total`,
		`domain="key".*operation="key_create".*status="error"`, `1`)
	assertMetricLine(t, output, `biz_test_operations_total`,
		`domain="stego".*operation="stego_encode".*status="success"`, `1`)
	assertMetricLine(t, output, `biz_test_operation_duration_seconds_count`,
		`domain="key".*operation="key_create".*status="success"`, `2`)
	assertMetricLine(t, output, `biz_test_operation_duration_seconds_count`,
		`domain="stego".*operation="stego_decode".*status="success"`, `1`)
}

func TestBusinessMetrics_Payload(t *testing.T) {
	provider := newTestProvider(t, "payload_test")
	bm, err := NewBusinessMetrics(provider)
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordPayload(ctx, "stego_encode", 96, 0)
	bm.RecordPayload(ctx, "stego_encode", 40, 30)
	bm.RecordPayload(ctx, "stego_encode", 16, 14)

	output := scrape(t, provider)

	assertMetricLine(t, output, `payload_test_payload_bits_count`, `operation="stego_encode"`, `3`)
	assertMetricLine(t, output, `payload_test_payload_bits_sum`, `operation="stego_encode"`, `152`)
	assertMetricLine(t, output, `payload_test_overflow_bits_total`, `operation="stego_encode"`, `44`)
}

func TestNoOpBusinessMetrics(t *testing.T) {
	noOp := NewNoOpBusinessMetrics()
	ctx := context.Background()

	assert.NotPanics(t, func() {
		noOp.RecordOperation(ctx, "key", "key_create", StatusSuccess)
		noOp.RecordDuration(ctx, "stego", "stego_encode", time.Millisecond, StatusError)
		noOp.RecordPayload(ctx, "stego_encode", 96, 8)
	})
}

package metrics

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBizMetricLine checks that the exposition output contains a business metric matching the
// given name, partial label pattern, and value. Extra OTel scope labels are tolerated.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")

	require.NoError(t, err)
	assert.NotNil(t, bm)
}

func TestBusinessMetrics_Integration(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "cpfer")
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordOperation(ctx, "cpf", "cpf_generate", "success")
	bm.RecordOperation(ctx, "cpf", "cpf_generate", "success")
	bm.RecordOperation(ctx, "cpf", "cpf_generate", "error")
	bm.RecordOperation(ctx, "cpf", "cpf_validate", "invalid")

	bm.RecordDuration(ctx, "cpf", "cpf_generate", 5*time.Millisecond, "success")
	bm.RecordDuration(ctx, "cpf", "cpf_generate", 7*time.Millisecond, "success")
	bm.RecordDuration(ctx, "cpf", "cpf_validate", time.Millisecond, "invalid")

	var out bytes.Buffer
	require.NoError(t, provider.WriteText(&out))
	output := out.String()

	assertBizMetricLine(
		t,
		output,
		`cpfer_operations_total`,
		`domain="cpf".*operation="cpf_generate".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`cpfer_operations_total`,
		`domain="cpf".*operation="cpf_generate".*status="error"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`cpfer_operations_total`,
		`domain="cpf".*operation="cpf_validate".*status="invalid"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`cpfer_operation_duration_seconds_count`,
		`domain="cpf".*operation="cpf_generate".*status="success"`,
		`2`,
	)
}

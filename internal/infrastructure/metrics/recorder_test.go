package metrics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/bibbank/screening-service/internal/infrastructure/metrics"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	totals := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", m.Name)
			for _, dp := range sum.DataPoints {
				totals[m.Name] += dp.Value
			}
		}
	}
	return totals
}

func TestRecorder(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	rec, err := metrics.NewRecorder(provider)
	require.NoError(t, err)

	ctx := context.Background()
	rec.RiskAssessed(ctx, "LOW")
	rec.RiskAssessed(ctx, "CRITICAL")
	rec.DuplicateChecked(ctx, true)
	rec.QueryClassified(ctx, "search")
	rec.EventPublishFailed(ctx, "screening.risk.assessed")

	totals := collect(t, reader)
	assert.Equal(t, int64(2), totals["screening_risk_assessments"])
	assert.Equal(t, int64(1), totals["screening_duplicate_checks"])
	assert.Equal(t, int64(1), totals["screening_query_classifications"])
	assert.Equal(t, int64(1), totals["screening_event_publish_failures"])
}

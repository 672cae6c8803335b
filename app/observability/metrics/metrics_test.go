package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestNew_RecordsOnProvidedMeter(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := New(provider.Meter("test"))
	require.NoError(t, err)

	m.ItineraryRequestsTotal.Add(ctx, 2, otelmetric.WithAttributes(attribute.String("outcome", "success")))
	m.GenAICallErrorsTotal.Add(ctx, 1)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	names := map[string]bool{}
	for _, md := range rm.ScopeMetrics[0].Metrics {
		names[md.Name] = true
	}
	assert.True(t, names["itinerary_requests_total"])
	assert.True(t, names["genai_call_errors_total"])
}

func TestInitAppMetrics_Get(t *testing.T) {
	InitAppMetrics()
	m := Get()
	require.NotNil(t, m)

	InitAppMetrics()
	assert.Same(t, m, Get())
}

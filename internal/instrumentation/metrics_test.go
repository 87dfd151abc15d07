package instrumentation

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordInvocation(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordInvocation("stock_price")
	m.RecordInvocation("stock_price")
	m.RecordInvocation("stock_info")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.InvocationsTotal.WithLabelValues("stock_price")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InvocationsTotal.WithLabelValues("stock_info")))
}

func TestRecordErrorSplitsByKind(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordError("stock_price", "upstream")
	m.RecordError("stock_price", "upstream")
	m.RecordError("stock_price", "argument")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("stock_price", "upstream")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("stock_price", "argument")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("stock_price", "decode")))
}

func TestRecordUpstreamLatency(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordUpstreamLatency("stock_price", 0.120)
	m.RecordUpstreamLatency("stock_price", 0.480)
	m.RecordUpstreamLatency("get_aggregates", 1.2)

	assert.Equal(t, 2, testutil.CollectAndCount(m.UpstreamLatency))
}

func TestRecordIndexQuery(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordIndexQuery()
	m.RecordIndexQuery()
	m.RecordIndexQuery()

	assert.Equal(t, 3.0, testutil.ToFloat64(m.IndexQueries))
}

func TestMetricNamesOnRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)

	// Vector metrics only surface after the first observation.
	m.RecordInvocation("stock_price")
	m.RecordError("stock_price", "upstream")
	m.RecordUpstreamLatency("stock_price", 0.05)
	m.RecordIndexQuery()

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}

	for _, want := range []string{
		"polygonmcp_tool_invocations_total",
		"polygonmcp_tool_errors_total",
		"polygonmcp_upstream_request_seconds",
		"polygonmcp_ticker_index_queries_total",
	} {
		assert.True(t, names[want], "missing metric family %s", want)
	}
}

func TestNewMetricsRejectsDoubleRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	NewMetrics(registry)

	assert.Panics(t, func() { NewMetrics(registry) })
}

package instrumentation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the MCP server.
type Metrics struct {
	InvocationsTotal *prometheus.CounterVec
	ErrorsTotal      *prometheus.CounterVec
	UpstreamLatency  *prometheus.HistogramVec
	IndexQueries     prometheus.Counter
}

// NewMetrics creates and registers all Prometheus metrics on the given
// registerer. Tests pass a private prometheus.NewRegistry().
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Tool invocations by tool name
		InvocationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "polygonmcp_tool_invocations_total",
			Help: "Total number of tool invocations by tool name",
		}, []string{"tool"}),

		// Failed invocations by tool name and error kind
		ErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "polygonmcp_tool_errors_total",
			Help: "Total number of failed tool invocations by tool name and error kind",
		}, []string{"tool", "kind"}),

		// Upstream request latency
		UpstreamLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "polygonmcp_upstream_request_seconds",
			Help:    "Upstream request latency in seconds by tool name",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		}, []string{"tool"}),

		// Ticker similarity lookups
		IndexQueries: factory.NewCounter(prometheus.CounterOpts{
			Name: "polygonmcp_ticker_index_queries_total",
			Help: "Total number of ticker similarity lookups",
		}),
	}
}

// RecordInvocation increments the invocation counter for a tool.
func (m *Metrics) RecordInvocation(tool string) {
	m.InvocationsTotal.WithLabelValues(tool).Inc()
}

// RecordError increments the error counter for a tool and error kind.
func (m *Metrics) RecordError(tool string, kind string) {
	m.ErrorsTotal.WithLabelValues(tool, kind).Inc()
}

// RecordUpstreamLatency records the duration of one upstream request.
func (m *Metrics) RecordUpstreamLatency(tool string, seconds float64) {
	m.UpstreamLatency.WithLabelValues(tool).Observe(seconds)
}

// RecordIndexQuery increments the ticker lookup counter.
func (m *Metrics) RecordIndexQuery() {
	m.IndexQueries.Inc()
}

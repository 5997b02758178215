package telemetry

import (
	"lensboard/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric struct
type Metric struct {
	HttpRequestsTotal     *prometheus.CounterVec
	HttpRequestDuration   *prometheus.HistogramVec
	UpstreamRequestsTotal *prometheus.CounterVec
	UpstreamUp            prometheus.Gauge
}

// NewMetric 建立所有指標；未啟用時回傳空集合，呼叫端需自行判 nil
func NewMetric(config *config.Configuration) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	return &Metric{
		HttpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),
		HttpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: buckets,
		}, []string{"endpoint"}),
		UpstreamRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "langfuse_requests_total",
			Help: "Outbound requests to the Langfuse API",
		}, []string{"status"}),
		UpstreamUp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "langfuse_up",
			Help: "Whether the Langfuse API answered the last reachability probe",
		}),
	}
}

package httpdeco

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the request metrics of a server.
type Metrics struct {
	registry *prometheus.Registry
	duration *prometheus.HistogramVec
}

// NewMetrics returns request metrics registered in their own registry,
// with the given namespace.
func NewMetrics(namespace string) *Metrics {
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests.",
			Buckets:   []float64{.005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"handler", "code", "method"},
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(duration)

	return &Metrics{
		registry: registry,
		duration: duration,
	}
}

// WithMetrics observes the duration of the requests served by the
// decorated handler, labeled with the given handler name.
func (m *Metrics) WithMetrics(handler string) Decorator {
	return func(h http.Handler) http.Handler {
		observer := m.duration.MustCurryWith(prometheus.Labels{
			"handler": handler,
		})

		return promhttp.InstrumentHandlerDuration(observer, h)
	}
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

package render

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors updated by a Renderer.
// A nil *Metrics records nothing.
type Metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderErrors   prometheus.Counter
	renderBytes    prometheus.Histogram
	renderDuration prometheus.Histogram
}

// NewMetrics registers the render collectors on reg under namespace.
// A nil reg uses prometheus.DefaultRegisterer. Registering twice on the same
// registry panics, as with promauto.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Total number of element trees rendered, by root tag",
		}, []string{"tag"}),

		renderErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_errors_total",
			Help:      "Total number of renders that failed",
		}),

		renderBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_bytes",
			Help:      "Size of rendered output in bytes",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8), // 64B to 1MB
		}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Render duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) observe(tag string, n int64, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.rendersTotal.WithLabelValues(tag).Inc()
	if err != nil {
		m.renderErrors.Inc()
		return
	}
	m.renderBytes.Observe(float64(n))
	m.renderDuration.Observe(d.Seconds())
}

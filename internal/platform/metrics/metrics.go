package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the process metrics behind one Prometheus registry so
// tests can build isolated instances instead of sharing global state.
type Registry struct {
	registry *prometheus.Registry

	HTTPRequests       *prometheus.CounterVec
	CatalogEvents      prometheus.Gauge
	PatternsDiscovered prometheus.Counter
	ScanDuration       prometheus.Summary
}

func New(serviceName string) *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "senkron",
			Name:        "http_requests_total",
			Help:        "HTTP requests by route and status code.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"route", "code"}),
		CatalogEvents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "senkron",
			Name:        "catalog_events",
			Help:        "Events currently held in the catalog.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),
		PatternsDiscovered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "senkron",
			Name:        "patterns_discovered_total",
			Help:        "Meta-patterns produced by trigger discovery.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),
		ScanDuration: prometheus.NewSummary(prometheus.SummaryOpts{
			Namespace:   "senkron",
			Name:        "scan_duration_seconds",
			Help:        "Duration of worker trigger scans.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		r.HTTPRequests,
		r.CatalogEvents,
		r.PatternsDiscovered,
		r.ScanDuration,
	)
	return r
}

// Handler exposes the registry for the /metrics route.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// SetCatalogSize tracks the catalog event count after imports.
func (r *Registry) SetCatalogSize(total int) {
	r.CatalogEvents.Set(float64(total))
}

// ObserveScan records one scan run.
func (r *Registry) ObserveScan(started time.Time, discovered int) {
	r.ScanDuration.Observe(time.Since(started).Seconds())
	r.PatternsDiscovered.Add(float64(discovered))
}

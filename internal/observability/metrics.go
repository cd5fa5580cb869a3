package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects the Prometheus metrics exposed by the dashboard.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	datasetRecords  prometheus.Gauge
	datasetCampaign prometheus.Gauge
	datasetAge      prometheus.Gauge
	live            prometheus.Gauge
	lastTick        prometheus.Gauge
}

// NewMetrics initialises the registry and base metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "insights_http_requests_total",
		Help: "HTTP requests by route and status code.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "insights_http_request_duration_seconds",
		Help:    "HTTP request duration per route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	records := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "insights_dataset_records",
		Help: "Raw records in the active synthetic dataset.",
	})
	campaigns := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "insights_dataset_campaigns",
		Help: "Campaigns in the active synthetic dataset.",
	})
	generated := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "insights_dataset_generated_timestamp_seconds",
		Help: "Unix time the active dataset was generated.",
	})
	live := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "insights_realtime_enabled",
		Help: "1 while the real-time toggle is on.",
	})
	lastTick := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "insights_realtime_last_tick_timestamp_seconds",
		Help: "Unix time of the most recent live-mode re-stamp.",
	})
	registry.MustRegister(requests, duration, records, campaigns, generated, live, lastTick)
	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:   requests,
		requestDuration: duration,
		datasetRecords:  records,
		datasetCampaign: campaigns,
		datasetAge:      generated,
		live:            live,
		lastTick:        lastTick,
	}
}

// Handler returns the http.Handler serving /metrics.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Middleware records metrics for every HTTP request.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(&recorder, r)
		route := routePattern(r)
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// ObserveDataset publishes the size and age of the active dataset.
func (m *Metrics) ObserveDataset(records, campaigns int, generatedAt time.Time) {
	if m == nil {
		return
	}
	m.datasetRecords.Set(float64(records))
	m.datasetCampaign.Set(float64(campaigns))
	if !generatedAt.IsZero() {
		m.datasetAge.Set(float64(generatedAt.Unix()))
	}
}

// ObserveTick records a ticker re-stamp. Matches the marketing.Ticker OnTick hook.
func (m *Metrics) ObserveTick(at time.Time) {
	if m == nil {
		return
	}
	m.lastTick.Set(float64(at.Unix()))
}

// SetLive mirrors the real-time toggle.
func (m *Metrics) SetLive(enabled bool) {
	if m == nil {
		return
	}
	if enabled {
		m.live.Set(1)
		return
	}
	m.live.Set(0)
}

// Registerer exposes the registry for custom metric registration.
func (m *Metrics) Registerer() prometheus.Registerer {
	if m == nil {
		return prometheus.DefaultRegisterer
	}
	return m.registry
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func routePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unknown"
}

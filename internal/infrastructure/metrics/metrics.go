// Package metrics colectores Prometheus del servicio.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/nyx-os/internal/application/ports"
)

var _ ports.OCRObserver = (*Metrics)(nil)

// Resultados de una extracción OCR.
const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeFormat  = "formato"
	OutcomeTimeout = "timeout"
	OutcomeStale   = "descartado"
)

// Metrics registro propio (no el global) para poder crear varios en tests.
type Metrics struct {
	Registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	ocrResults   *prometheus.CounterVec
}

// New crea y registra los colectores.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "nyx",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Peticiones HTTP en curso.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nyx",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Peticiones HTTP atendidas.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nyx",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duración de las peticiones HTTP.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms a ~10s
		}, []string{"method", "path"}),
		ocrResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nyx",
			Subsystem: "ocr",
			Name:      "extractions_total",
			Help:      "Extracciones de tickets por origen y resultado.",
		}, []string{"source", "outcome"}),
	}
	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpInFlight, m.httpRequests, m.httpDuration, m.ocrResults,
	)
	return m
}

// ObserveOCR implementa ports.OCRObserver.
func (m *Metrics) ObserveOCR(source, outcome string) {
	m.ocrResults.WithLabelValues(source, outcome).Inc()
}

// InFlight incrementa el gauge y devuelve la función que lo decrementa.
func (m *Metrics) InFlight() func() {
	m.httpInFlight.Inc()
	return m.httpInFlight.Dec
}

// ObserveHTTP registra una petición terminada. path debe ser la ruta plantilla.
func (m *Metrics) ObserveHTTP(method, path string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// Handler expone el registro en formato de texto de Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

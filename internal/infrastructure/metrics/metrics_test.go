package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nyx-os/internal/infrastructure/metrics"
)

func TestObserveOCR(t *testing.T) {
	m := metrics.New()
	m.ObserveOCR("captura", metrics.OutcomeOK)
	m.ObserveOCR("captura", metrics.OutcomeOK)
	m.ObserveOCR("api", metrics.OutcomeFormat)

	n, err := testutil.GatherAndCount(m.Registry, "nyx_ocr_extractions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestHandler_ExponeSeries(t *testing.T) {
	m := metrics.New()
	done := m.InFlight()
	m.ObserveHTTP("GET", "/api/menu", 200, 15*time.Millisecond)
	done()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `nyx_http_requests_total{method="GET",path="/api/menu",status="200"} 1`)
	assert.Contains(t, string(body), "nyx_http_inflight_requests 0")
}

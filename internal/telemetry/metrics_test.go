package telemetry

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_JobAndSourceCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.JobRun("ssl", "ok", time.Second)
	m.JobRun("ssl", "skipped", 0)
	m.JobRecords("ssl", 3, 1, 2)
	m.SourceLookup("certificate_expiry", "ssllabs", false)
	m.SourceLookup("certificate_expiry", "tls-socket", true)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.jobRuns.WithLabelValues("ssl", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.jobRuns.WithLabelValues("ssl", "skipped")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.jobRecords.WithLabelValues("ssl", "succeeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.jobRecords.WithLabelValues("ssl", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sourceLookups.WithLabelValues("certificate_expiry", "ssllabs", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sourceLookups.WithLabelValues("certificate_expiry", "tls-socket", "hit")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.JobRun("x", "ok", time.Second)
	m.SourceLookup("a", "b", true)
	h := m.Middleware(http.NotFoundHandler())
	assert.NotNil(t, h)
}

func TestMetrics_MiddlewareUsesRoutePattern(t *testing.T) {
	m := New(prometheus.NewRegistry())
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/domains/{id}", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/domains/42", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/domains/{id}", "418")))
}

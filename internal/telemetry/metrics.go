// Package telemetry holds the prometheus collectors for jobs, source lookups
// and the HTTP API. A nil *Metrics is valid and records nothing.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	jobRuns         *prometheus.CounterVec
	jobRecords      *prometheus.CounterVec
	jobDuration     *prometheus.HistogramVec
	sourceLookups   *prometheus.CounterVec
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	promFactory := promauto.With(reg)
	return &Metrics{
		jobRuns: promFactory.NewCounterVec(prometheus.CounterOpts{
			Name: "domainwatch_job_runs_total",
			Help: "Job runs labelled by job and outcome (ok, failed, skipped)",
		}, []string{"job", "outcome"}),
		jobRecords: promFactory.NewCounterVec(prometheus.CounterOpts{
			Name: "domainwatch_job_records_total",
			Help: "Records handled by job runs labelled by outcome (succeeded, failed, skipped)",
		}, []string{"job", "outcome"}),
		jobDuration: promFactory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "domainwatch_job_duration_seconds",
			Help:    "Wall time of job runs",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300, 600, 1800},
		}, []string{"job"}),
		sourceLookups: promFactory.NewCounterVec(prometheus.CounterOpts{
			Name: "domainwatch_source_lookups_total",
			Help: "Source adapter lookups labelled by fact, source and outcome (hit, miss)",
		}, []string{"fact", "source", "outcome"}),
		requestsTotal: promFactory.NewCounterVec(prometheus.CounterOpts{
			Name: "domainwatch_http_requests_total",
			Help: "API requests labelled by route and status code",
		}, []string{"method", "route", "status"}),
		requestDuration: promFactory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "domainwatch_http_request_duration_seconds",
			Help:    "API request latency",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) JobRun(job, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.jobRuns.WithLabelValues(job, outcome).Inc()
	if outcome != "skipped" {
		m.jobDuration.WithLabelValues(job).Observe(d.Seconds())
	}
}

func (m *Metrics) JobRecords(job string, succeeded, failed, skipped int) {
	if m == nil {
		return
	}
	m.jobRecords.WithLabelValues(job, "succeeded").Add(float64(succeeded))
	m.jobRecords.WithLabelValues(job, "failed").Add(float64(failed))
	m.jobRecords.WithLabelValues(job, "skipped").Add(float64(skipped))
}

// SourceLookup matches the sources.Observer signature.
func (m *Metrics) SourceLookup(fact, source string, hit bool) {
	if m == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.sourceLookups.WithLabelValues(fact, source, outcome).Inc()
}

// Middleware records request counts and latency by chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

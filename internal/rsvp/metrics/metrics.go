// Package metrics owns the Prometheus collectors for the RSVP service.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "yup"

// Metrics is a private registry plus the collectors the service records to.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	responses            *prometheus.CounterVec
	notificationFailures *prometheus.CounterVec
	invitationDeliveries *prometheus.CounterVec
	housekeepingRuns     *prometheus.CounterVec
	housekeepingAffected *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),

		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~2.5s
		}, []string{"method", "route"}),

		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rsvp",
			Name:      "responses_total",
			Help:      "RSVP submissions stored, by response type.",
		}, []string{"type"}),
		notificationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notify",
			Name:      "failures_total",
			Help:      "Notifications that could not be delivered, by kind.",
		}, []string{"kind"}),
		invitationDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rsvp",
			Name:      "invitation_deliveries_total",
			Help:      "Invitation delivery attempts, by resulting status.",
		}, []string{"status"}),
		housekeepingRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "housekeeping",
			Name:      "runs_total",
			Help:      "Housekeeping job runs.",
		}, []string{"job", "success"}),
		housekeepingAffected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "housekeeping",
			Name:      "rows_affected_total",
			Help:      "Rows changed by housekeeping jobs.",
		}, []string{"job"}),
	}

	m.Registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.responses,
		m.notificationFailures,
		m.invitationDeliveries,
		m.housekeepingRuns,
		m.housekeepingAffected,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// InstrumentHandler records request counts and latency. It must sit
// directly around the ServeMux so the matched route pattern is visible.
func (m *Metrics) InstrumentHandler(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		m.httpInFlight.Inc()
		defer m.httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		route := routeLabel(r.Pattern)
		method := strings.ToUpper(r.Method)
		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(rec.status)).Inc()
		m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) RecordResponse(responseType string) {
	if m == nil {
		return
	}
	m.responses.WithLabelValues(responseType).Inc()
}

func (m *Metrics) RecordNotificationFailure(kind string) {
	if m == nil {
		return
	}
	m.notificationFailures.WithLabelValues(kind).Inc()
}

func (m *Metrics) RecordInvitationDelivery(status string) {
	if m == nil {
		return
	}
	m.invitationDeliveries.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordHousekeeping(job string, affected int64, success bool) {
	if m == nil {
		return
	}
	m.housekeepingRuns.WithLabelValues(job, strconv.FormatBool(success)).Inc()
	if affected > 0 {
		m.housekeepingAffected.WithLabelValues(job).Add(float64(affected))
	}
}

// routeLabel strips the method from a ServeMux pattern ("GET /v1/events/{slug}").
func routeLabel(pattern string) string {
	if pattern == "" {
		return "unmatched"
	}
	if _, path, ok := strings.Cut(pattern, " "); ok {
		return path
	}
	return pattern
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	return r.ResponseWriter.Write(b)
}

// Package metrics exposes Prometheus instrumentation for the API.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics records request counts and latency per route.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the request metrics on the provided registerer.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		return &HTTPMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Completed HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	reg.MustRegister(requests, duration)
	return &HTTPMetrics{requests: requests, duration: duration}
}

// ObserveRequest records one completed request.
func (m *HTTPMetrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	m.requests.WithLabelValues(method, normalizeRoute(route), strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, normalizeRoute(route)).Observe(elapsed.Seconds())
}

// MailMetrics counts outbound notification emails.
type MailMetrics struct {
	sent   *prometheus.CounterVec
	failed *prometheus.CounterVec
}

// NewMailMetrics registers the mail counters on the provided registerer.
func NewMailMetrics(reg prometheus.Registerer) *MailMetrics {
	if reg == nil {
		return &MailMetrics{}
	}
	sent := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mail_sent_total",
		Help: "Emails accepted by the SMTP server, by kind.",
	}, []string{"kind"})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mail_failed_total",
		Help: "Emails that could not be delivered, by kind.",
	}, []string{"kind"})
	reg.MustRegister(sent, failed)
	return &MailMetrics{sent: sent, failed: failed}
}

// IncSent increments the delivered counter for the given mail kind.
func (m *MailMetrics) IncSent(kind string) {
	if m == nil || m.sent == nil {
		return
	}
	m.sent.WithLabelValues(normalizeRoute(kind)).Inc()
}

// IncFailed increments the failure counter for the given mail kind.
func (m *MailMetrics) IncFailed(kind string) {
	if m == nil || m.failed == nil {
		return
	}
	m.failed.WithLabelValues(normalizeRoute(kind)).Inc()
}

func normalizeRoute(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

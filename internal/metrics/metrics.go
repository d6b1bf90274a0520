package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors exposed at /metrics.
type Metrics struct {
	// HTTPRequestsTotal counts handled requests by route, method and status.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration observes request latency by route and method.
	HTTPRequestDuration *prometheus.HistogramVec

	// AppointmentsCreated counts appointments stored successfully.
	AppointmentsCreated prometheus.Counter

	// AppointmentConflicts counts bookings rejected because the slot was taken.
	AppointmentConflicts prometheus.Counter

	// NotificationsSent counts delivered notifications per channel.
	NotificationsSent *prometheus.CounterVec

	// NotificationsFailed counts failed notifications per channel.
	NotificationsFailed *prometheus.CounterVec

	// UploadsTotal counts image uploads by result (stored, rejected, failed).
	UploadsTotal *prometheus.CounterVec

	// UploadedBytes counts bytes written to file storage.
	UploadedBytes prometheus.Counter

	// RateLimited counts requests rejected by the rate limiter.
	RateLimited prometheus.Counter

	// LiveFeedClients is the number of connected admin live feed sockets.
	LiveFeedClients prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"route", "method", "status"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),

		AppointmentsCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "appointments_created_total",
				Help:      "Total number of appointments created",
			},
		),

		AppointmentConflicts: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "appointment_conflicts_total",
				Help:      "Total number of bookings rejected for an occupied slot",
			},
		),

		NotificationsSent: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_sent_total",
				Help:      "Total number of notifications delivered",
			},
			[]string{"channel"},
		),

		NotificationsFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_failed_total",
				Help:      "Total number of notifications that failed",
			},
			[]string{"channel"},
		),

		UploadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "uploads_total",
				Help:      "Total number of image uploads by result",
			},
			[]string{"result"},
		),

		UploadedBytes: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "uploaded_bytes_total",
				Help:      "Total number of bytes stored by uploads",
			},
		),

		RateLimited: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limited_total",
				Help:      "Total number of requests rejected by the rate limiter",
			},
		),

		LiveFeedClients: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "live_feed_clients",
				Help:      "Current number of connected admin live feed clients",
			},
		),
	}
}

// The helpers below accept a nil receiver so callers can run without metrics.

func (m *Metrics) ObserveRequest(route, method, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(route, method, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(route, method).Observe(seconds)
}

func (m *Metrics) AppointmentCreated() {
	if m == nil {
		return
	}
	m.AppointmentsCreated.Inc()
}

func (m *Metrics) AppointmentConflict() {
	if m == nil {
		return
	}
	m.AppointmentConflicts.Inc()
}

func (m *Metrics) NotificationResult(channel string, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.NotificationsFailed.WithLabelValues(channel).Inc()
		return
	}
	m.NotificationsSent.WithLabelValues(channel).Inc()
}

func (m *Metrics) UploadResult(result string, size int) {
	if m == nil {
		return
	}
	m.UploadsTotal.WithLabelValues(result).Inc()
	if result == "stored" {
		m.UploadedBytes.Add(float64(size))
	}
}

func (m *Metrics) RequestRateLimited() {
	if m == nil {
		return
	}
	m.RateLimited.Inc()
}

func (m *Metrics) LiveFeedConnected(delta float64) {
	if m == nil {
		return
	}
	m.LiveFeedClients.Add(delta)
}

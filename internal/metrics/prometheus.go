package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "endpoint", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint", "status"},
	)

	// RateLimited counts requests rejected by the per-client limiter.
	RateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Requests rejected with 429 by the rate limiter.",
		},
		[]string{"endpoint"},
	)

	// AppointmentsSubmitted counts appointment requests from the contact form.
	AppointmentsSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "samparc_appointments_submitted_total",
		Help: "Appointment requests accepted from the public site.",
	})

	// ChatReplies counts chatbot answers.
	ChatReplies = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "samparc_chat_replies_total",
		Help: "Replies produced by the chat assistant.",
	})

	// Logins counts sign-in attempts by role and outcome.
	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "samparc_logins_total",
			Help: "Sign-in attempts by role and outcome.",
		},
		[]string{"role", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(RateLimited)
	prometheus.MustRegister(AppointmentsSubmitted)
	prometheus.MustRegister(ChatReplies)
	prometheus.MustRegister(Logins)
}

// RecordRequest records the metrics for one HTTP request.
func RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

func classifyStatus(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 300 && statusCode < 400:
		return "3xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500 && statusCode < 600:
		return "5xx"
	}
	return "unknown"
}

// Handler exposes the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Package metrics exposes the site's Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Contact outcomes.
const (
	OutcomeSuccess    = "success"
	OutcomeSpam       = "spam"
	OutcomeInvalid    = "invalid"
	OutcomeTransport  = "transport_error"
	OutcomeRejected   = "rejected"
	OutcomeAbandoned  = "abandoned"
	OutcomeInternal   = "internal_error"
	OutcomeNotEnabled = "not_configured"
)

var (
	namespace = "bdgc"
	subsystem = "site"

	contactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "contact_submissions_total",
			Help:      "Contact form submissions by outcome",
		},
		[]string{"outcome"},
	)

	relayDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "relay_duration_seconds",
			Help:      "Time taken by the outbound form relay call",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 15},
		},
	)

	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	rateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "rate_limited_total",
			Help:      "Requests refused by the rate limiter",
		},
		[]string{"scope"},
	)
)

func IncContact(outcome string) {
	contactSubmissions.WithLabelValues(outcome).Inc()
}

func ObserveRelay(d time.Duration) {
	relayDuration.Observe(d.Seconds())
}

func IncRateLimited(scope string) {
	rateLimited.WithLabelValues(scope).Inc()
}

// Middleware counts requests per matched route. Unmatched paths share one
// label so the series count stays bounded.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler serves the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

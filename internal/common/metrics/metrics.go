package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "paygate_gateway",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "paygate_gateway",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "paygate_gateway",
			Subsystem: "registration",
			Name:      "submissions_total",
			Help:      "Registration submissions by outcome",
		},
		[]string{"outcome"},
	)

	mappingsRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "paygate_gateway",
			Subsystem: "networks",
			Name:      "mappings_refresh_total",
			Help:      "Background mappings refreshes by status",
		},
		[]string{"status"},
	)
)

// RecordSubmission counts one submission pipeline run by its outcome.
func RecordSubmission(outcome string) {
	submissionsTotal.WithLabelValues(outcome).Inc()
}

// RecordMappingsRefresh counts one background refresh run.
func RecordMappingsRefresh(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	mappingsRefreshTotal.WithLabelValues(status).Inc()
}

// GinMiddleware records request counts and durations per route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(
			c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status()),
		).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).
			Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

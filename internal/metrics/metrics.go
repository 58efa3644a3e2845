// Package metrics provides Prometheus metrics collection for the multilingual site.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// MessageResolutionsTotal counts dictionary resolutions by locale and outcome.
	// Unsupported locales are folded into a single "invalid" label.
	MessageResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "message_resolutions_total",
			Help: "Total number of locale message resolutions",
		},
		[]string{"locale", "status"},
	)

	// MessageResolutionDuration tracks how long one resolution takes.
	MessageResolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "message_resolution_duration_seconds",
			Help:    "Locale message resolution duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		},
	)

	// MessageFileLoadsTotal counts individual message file reads by category and result.
	MessageFileLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "message_file_loads_total",
			Help: "Total number of message file loads",
		},
		[]string{"category", "result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			// Unmatched routes share one label to keep cardinality bounded.
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordResolution records metrics for one locale resolution.
func RecordResolution(duration time.Duration, locale, status string) {
	MessageResolutionDuration.Observe(duration.Seconds())
	MessageResolutionsTotal.WithLabelValues(locale, status).Inc()
}

// RecordFileLoad records the outcome of one message file load.
func RecordFileLoad(category string, ok bool) {
	result := "success"
	if !ok {
		result = "failure"
	}
	MessageFileLoadsTotal.WithLabelValues(category, result).Inc()
}

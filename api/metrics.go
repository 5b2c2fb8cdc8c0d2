package api

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MetricRequestsTotal counts handled requests by route and status
	MetricRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chromix_http_requests_total",
		Help: "Total HTTP requests by route and status code",
	}, []string{"route", "status"})

	// MetricRequestDuration tracks handler latency
	MetricRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chromix_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// MetricSchemesGenerated counts harmony schemes computed by kind
	MetricSchemesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chromix_schemes_generated_total",
		Help: "Total harmony schemes generated by kind",
	}, []string{"kind"})

	// MetricInvalidColors counts rejected color inputs
	MetricInvalidColors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chromix_invalid_colors_total",
		Help: "Total requests rejected for a malformed color",
	})

	// MetricFavoriteToggles counts favorite additions and removals
	MetricFavoriteToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chromix_favorite_toggles_total",
		Help: "Total favorite changes by action",
	}, []string{"action"})
)

func observeRequest(route string, status int, started time.Time) {
	MetricRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	MetricRequestDuration.WithLabelValues(route).Observe(time.Since(started).Seconds())
}

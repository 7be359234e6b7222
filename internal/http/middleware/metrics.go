package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTP traffic collectors. The path label is the registered Gin route, not
// the raw URL, to keep cardinality bounded.
var (
	httpReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_inflight",
			Help: "Current number of in-flight HTTP requests.",
		},
	)
)

// Game-specific collectors, incremented from the handlers.
var (
	// ImageSourceServed counts round images served per fallback tier
	// (original, silhouette, placeholder). A rising placeholder share is the
	// primary signal of AniList trouble.
	ImageSourceServed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_image_source_total",
			Help: "Round images served, by fallback source.",
		},
		[]string{"source"},
	)

	// ScoreSubmissions counts accepted score submissions by difficulty.
	ScoreSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_score_submissions_total",
			Help: "Accepted score submissions, by difficulty.",
		},
		[]string{"difficulty"},
	)
)

func init() {
	prometheus.MustRegister(httpReqs, httpLat, httpInflight, ImageSourceServed, ScoreSubmissions)
}

// Metrics instruments requests with the HTTP collectors. Mount
// promhttp.Handler() on /metrics alongside it.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpInflight.Inc()
		defer httpInflight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		httpReqs.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpLat.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

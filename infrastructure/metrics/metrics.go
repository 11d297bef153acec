package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters and histograms are registered on the default registry; the
// router exposes them via promhttp on /metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventstream_http_requests_total",
		Help: "HTTP requests processed, by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "eventstream_http_request_duration_seconds",
		Help:    "HTTP request latency, by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	VideoViewsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventstream_video_views_recorded_total",
		Help: "Playback views successfully written to the store.",
	})

	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventstream_logins_total",
		Help: "Login attempts, by outcome.",
	}, []string{"outcome"})
)

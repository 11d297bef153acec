package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"eventstream/infrastructure/metrics"
)

// Metrics records per-request counters and latency keyed by route template,
// not raw path, so path parameters do not explode the label space.
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request.Method
		metrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

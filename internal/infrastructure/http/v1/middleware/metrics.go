package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"driveledger/internal/infrastructure/metrics"
)

// Metrics middleware records request counts and latency per route. The route
// template (c.FullPath) keeps label cardinality bounded; unmatched paths are
// grouped under "unmatched".
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"driveledger/pkg/logger"
)

// Logger middleware logs one line per request. Server errors log at error
// level and client errors at warn, so a log level of warn still surfaces
// every failed request.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if query := c.Request.URL.RawQuery; query != "" {
			fields = append(fields, "query", query)
		}
		if errs := c.Errors.ByType(gin.ErrorTypePrivate).String(); errs != "" {
			fields = append(fields, "errors", errs)
		}

		entry := log.WithContext(c.Request.Context())
		switch {
		case status >= http.StatusInternalServerError:
			entry.Errorw("http request", fields...)
		case status >= http.StatusBadRequest:
			entry.Warnw("http request", fields...)
		default:
			entry.Infow("http request", fields...)
		}
	}
}

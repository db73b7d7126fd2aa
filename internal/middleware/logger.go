package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/gbcepulse/internal/logger"
)

// RequestLogger logs method, path, status code, latency, client IP, and
// the request ID injected by RequestID().
//
// Example log output:
//
//	request_id=123e4567-... method=POST path=/api/v1/stocks/POP/trades status=201 latency_ms=0
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		rid, _ := c.Get(RequestIDKey)

		logger.L().Info().
			Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Int64("latency_ms", latency.Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

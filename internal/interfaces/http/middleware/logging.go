package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shiken-app/shiken/internal/shared/logger"
)

// RequestLogging logs one structured line per request.
func RequestLogging(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Infow("request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}

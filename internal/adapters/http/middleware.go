package httpadapter

import (
	"time"

	"github.com/gin-gonic/gin"

	"svw.info/brainbreak/internal/platform/logger"
)

// RequestLogger logs method, path, status, bytes, and duration per request.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}

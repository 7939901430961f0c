package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"bugtrail/internal/shared/constants"
	"bugtrail/internal/shared/logger"
)

// Logger logs every completed request with method, path, status and latency.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
		}

		if requestID := c.GetHeader(constants.HeaderXRequestID); requestID != "" {
			args = append(args, "request_id", requestID)
		}

		if userID, exists := c.Get(constants.ContextKeyUserID); exists {
			args = append(args, "user_id", userID)
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("HTTP request completed with server error", args...)
		case status >= 400:
			log.Warnw("HTTP request completed with client error", args...)
		default:
			log.Debugw("HTTP request completed", args...)
		}
	}
}

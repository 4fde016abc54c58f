package middleware

import (
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/logger"
)

// Logger emits one structured line per request, leveled by status class
// so 5xx responses surface at error while routine traffic stays at debug.
func Logger(log logger.Interface) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		fields := []any{
			"method", param.Method,
			"path", param.Path,
			"status", param.StatusCode,
			"latency", param.Latency,
			"client_ip", param.ClientIP,
			"user_agent", param.Request.UserAgent(),
		}
		if param.ErrorMessage != "" {
			fields = append(fields, "error", param.ErrorMessage)
		}

		switch {
		case param.StatusCode >= 500:
			log.Errorw("request completed", fields...)
		case param.StatusCode >= 400:
			log.Warnw("request completed", fields...)
		default:
			log.Debugw("request completed", fields...)
		}

		return ""
	})
}

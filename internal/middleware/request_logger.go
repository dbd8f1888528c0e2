package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs each HTTP request with structured fields.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		dur := time.Since(start)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("url", c.Request.URL.String()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", dur),
			zap.Int("bytes", c.Writer.Size()),
		}
		if rid, ok := GetRequestID(c); ok {
			fields = append(fields, zap.String("request_id", rid))
		}
		if user, ok := GetIdentity(c); ok {
			fields = append(fields, zap.String("user", user.Principal))
		}
		log.Info("request", fields...)
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// RequestID ensures each request carries a request ID. If trustHeader
// is true, an inbound X-Request-ID is reused; otherwise a new one is
// generated for every request.
func RequestID(trustHeader bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := ""
		if trustHeader {
			rid = c.GetHeader("X-Request-ID")
		}
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

// GetRequestID returns the request id set by RequestID, if any.
func GetRequestID(c *gin.Context) (string, bool) {
	rid := c.GetString(requestIDKey)
	return rid, rid != ""
}

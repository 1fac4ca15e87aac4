package middleware

import (
	"hr-platform-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with a UUID, echoed in responses and logs.
// An incoming X-Request-ID is honored so upstream proxies can correlate.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(string(domain.KeyRequestID), reqID)
		c.Writer.Header().Set("X-Request-ID", reqID)
		c.Next()
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ContextRequestID = "requestID"

const requestIDHeader = "X-Request-ID"

// RequestID tags each request with an id that flows into audit entries.
// An inbound X-Request-ID is honoured so upstream proxies can correlate.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ContextRequestID, id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()
	}
}

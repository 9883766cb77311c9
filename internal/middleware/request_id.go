package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextRequestID = "requestID"

	requestIDHeader = "X-Request-Id"
)

// RequestID propagates the caller's request id or mints a fresh one,
// echoing it back in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		c.Writer.Header().Set(requestIDHeader, reqID)
		c.Set(ContextRequestID, reqID)

		c.Next()
	}
}

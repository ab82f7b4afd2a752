package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-backoffice/pkg/log"
)

const headerRequestID = "X-Request-ID"

// RequestID propagates or assigns a request id and attaches it to the
// logging context.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(headerRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const errCodeBodyTooLarge = "body_too_large"

// MaxBodySize rejects requests that declare a body larger than maxBytes and
// caps undeclared (chunked) bodies at the same size. The API is read-only,
// so the limit can be tiny.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			respondError(c, http.StatusRequestEntityTooLarge, errCodeBodyTooLarge, "request body too large")
			return
		}

		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}

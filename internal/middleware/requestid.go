package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDKey is the gin context key for the request ID.
	RequestIDKey = "request_id"

	// ClientRequestIDKey holds the caller's own X-Request-ID, if any.
	ClientRequestIDKey = "client_request_id"

	// RequestIDHeader is the HTTP header used to propagate the request ID.
	RequestIDHeader = "X-Request-ID"
)

// maxClientRequestID bounds how much of a caller-supplied ID is kept for logs.
const maxClientRequestID = 128

// RequestID assigns every request a time-ordered server UUID. A caller's
// X-Request-ID is never trusted as the canonical ID; it is kept under
// ClientRequestIDKey for correlation only.
func RequestID(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := newRequestID()

		if clientID := c.GetHeader(RequestIDHeader); clientID != "" {
			if len(clientID) > maxClientRequestID {
				clientID = clientID[:maxClientRequestID]
			}

			c.Set(ClientRequestIDKey, clientID)
			log.WithFields(logrus.Fields{
				"request_id":        id,
				"client_request_id": clientID,
			}).Debug("client request id recorded")
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func newRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}

	return uuid.NewString()
}

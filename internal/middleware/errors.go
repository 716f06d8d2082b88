package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/futbolpath/futbolpath/internal/httputil"
	"github.com/futbolpath/futbolpath/internal/metrics"
)

const errCodeRateLimited = "rate_limited"

// respondError counts the error and writes the shared error body.
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()
	httputil.RespondError(c, status, code, message)
}

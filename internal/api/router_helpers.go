package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/futbolpath/futbolpath/internal/middleware"
)

// ginLogger logs one line per request. Health probes log at debug level.
func ginLogger(log *logrus.Logger, quiet ...string) gin.HandlerFunc {
	quietPaths := make(map[string]struct{}, len(quiet))
	for _, p := range quiet {
		quietPaths[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if rid, exists := c.Get(middleware.RequestIDKey); exists {
			fields["request_id"] = rid
		}
		if cid := c.GetString(middleware.ClientRequestIDKey); cid != "" {
			fields["client_request_id"] = cid
		}

		entry := log.WithFields(fields)
		if _, ok := quietPaths[c.FullPath()]; ok {
			entry.Debug("request")

			return
		}

		entry.Info("request")
	}
}

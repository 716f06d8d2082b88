package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/futbolpath/futbolpath/internal/models"
)

// PathHandler serves shortest path queries.
type PathHandler struct {
	finder PathFinder
	log    *logrus.Logger
}

// NewPathHandler creates a PathHandler.
func NewPathHandler(finder PathFinder, log *logrus.Logger) *PathHandler {
	registerValidators()

	return &PathHandler{finder: finder, log: log}
}

type pathQuery struct {
	From string `form:"from" binding:"required,playerid"`
	To   string `form:"to" binding:"required,playerid"`
}

// Find handles GET /api/v1/path?from=&to=.
func (h *PathHandler) Find(c *gin.Context) {
	var q pathQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, bindingMessage(err))

		return
	}

	// Both values passed the playerid validator.
	from, _ := models.ParsePlayerID(q.From)
	to, _ := models.ParsePlayerID(q.To)

	res, err := h.finder.FindShortestPath(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			respondError(c, http.StatusGatewayTimeout, ErrCodeTimeout, "path query timed out")

			return
		}

		h.log.WithError(err).WithFields(logrus.Fields{"from": from, "to": to}).Error("finding shortest path")
		respondError(c, http.StatusServiceUnavailable, ErrCodeUnavailable, "teammate graph unavailable")

		return
	}

	c.JSON(http.StatusOK, res)
}

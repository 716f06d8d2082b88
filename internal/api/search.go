package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SearchHandler serves player name search.
type SearchHandler struct {
	searcher PlayerSearcher
	log      *logrus.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(searcher PlayerSearcher, log *logrus.Logger) *SearchHandler {
	registerValidators()

	return &SearchHandler{searcher: searcher, log: log}
}

// Limits above the service cap are accepted and clamped by the service.
type searchQuery struct {
	Q     string `form:"q" binding:"max=200"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Players handles GET /api/v1/search?q=&limit=.
func (h *SearchHandler) Players(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, bindingMessage(err))

		return
	}

	res, err := h.searcher.SearchPlayers(c.Request.Context(), q.Q, q.Limit)
	if err != nil {
		h.log.WithError(err).Error("searching players")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, res)
}

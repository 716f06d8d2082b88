package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GraphHandler serves cached graph diagnostics.
type GraphHandler struct {
	graph GraphStatter
}

// NewGraphHandler creates a GraphHandler.
func NewGraphHandler(graph GraphStatter) *GraphHandler {
	return &GraphHandler{graph: graph}
}

// Stats handles GET /api/v1/graph/stats.
func (h *GraphHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.graph.Stats())
}

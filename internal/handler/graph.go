package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scamgraph/internal/models"
	"scamgraph/internal/repository"
)

type GraphHandler interface {
	GetGraph(c *gin.Context)
}

type graphHandler struct {
	graphRepo repository.GraphRepository
	logger    *zap.Logger
}

func NewGraphHandler(graphRepo repository.GraphRepository, logger *zap.Logger) GraphHandler {
	return &graphHandler{graphRepo: graphRepo, logger: logger}
}

// GetGraph handles GET /api/graph: the full node and edge set for
// visualization clients.
func (h *graphHandler) GetGraph(c *gin.Context) {
	nodes, edges, err := h.graphRepo.Graph(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load graph", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if nodes == nil {
		nodes = []*models.Node{}
	}
	if edges == nil {
		edges = []*models.Edge{}
	}
	c.JSON(http.StatusOK, gin.H{"nodes": nodes, "edges": edges})
}

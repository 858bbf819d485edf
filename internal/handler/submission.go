package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scamgraph/internal/models"
	"scamgraph/internal/pipeline"
	"scamgraph/internal/repository"
)

type SubmissionHandler interface {
	Submit(c *gin.Context)
	ListSubmissions(c *gin.Context)
}

type submissionHandler struct {
	pipeline       *pipeline.Pipeline
	submissionRepo repository.SubmissionRepository
	graphRepo      repository.GraphRepository
	logger         *zap.Logger
	pageSize       int
}

func NewSubmissionHandler(p *pipeline.Pipeline, submissionRepo repository.SubmissionRepository, graphRepo repository.GraphRepository, logger *zap.Logger, pageSize int) SubmissionHandler {
	return &submissionHandler{
		pipeline:       p,
		submissionRepo: submissionRepo,
		graphRepo:      graphRepo,
		logger:         logger,
		pageSize:       pageSize,
	}
}

// SubmitRequest is the body of POST /api/submit.
type SubmitRequest struct {
	Text string                `json:"text"`
	Type models.SubmissionType `json:"type"`
}

// Submit handles POST /api/submit: classify the text, link it into the
// similarity graph, persist everything, return the full result.
func (h *submissionHandler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.pipeline.Classify(c.Request.Context(), req.Text, req.Type)
	if err != nil {
		if errors.Is(err, pipeline.ErrEmptyText) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
			return
		}
		if errors.Is(err, pipeline.ErrInvalidType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission type"})
			return
		}
		h.logger.Error("Classification failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Submission and node are applied first; if either fails the request
	// fails. Edges come last and are best-effort: a partial edge write never
	// rolls back the already-classified submission.
	if err := h.submissionRepo.Save(c.Request.Context(), result.Submission); err != nil {
		h.logger.Error("Failed to save submission", zap.String("submission_id", result.Submission.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if err := h.graphRepo.SaveNode(c.Request.Context(), &result.Node); err != nil {
		h.logger.Error("Failed to save node", zap.String("node_id", result.Node.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if err := h.graphRepo.SaveEdges(c.Request.Context(), result.Edges); err != nil {
		h.logger.Error("Failed to save some similarity edges", zap.String("submission_id", result.Submission.ID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"submission": result.Submission,
		"node":       result.Node,
		"edges":      result.Edges,
		"message": fmt.Sprintf("Submission classified as %s with risk score %d",
			result.Submission.RiskCategory, result.Submission.RiskScore),
	})
}

// ListSubmissions handles GET /api/submissions: recent submissions, newest
// first, capped at the configured page size.
func (h *submissionHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.submissionRepo.List(c.Request.Context(), h.pageSize)
	if err != nil {
		h.logger.Error("Failed to list submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if submissions == nil {
		submissions = []*models.Submission{}
	}
	c.JSON(http.StatusOK, submissions)
}

// Package handler provides HTTP handlers for score endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/judging_rounds/internal/response"
	"github.com/festy23/judging_rounds/internal/score/model"
	"github.com/festy23/judging_rounds/internal/score/service"
)

// Handler handles HTTP requests for score endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new score handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// RecordScore handles POST /score/record request.
func (h *Handler) RecordScore(c *gin.Context) {
	var req model.RecordScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	score, err := h.service.RecordScore(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, h.logger, "RecordScore", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"score": score})
}

// ListScores handles GET /score/list request.
func (h *Handler) ListScores(c *gin.Context) {
	roundID := c.Query("round_id")
	if roundID == "" {
		response.InvalidRequest(c, "round_id parameter is required")
		return
	}

	resp, err := h.service.ListScoresForRound(c.Request.Context(), roundID)
	if err != nil {
		response.FromError(c, h.logger, "ListScores", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/judging_rounds/internal/response"
	"github.com/festy23/judging_rounds/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetJudgeWorkload handles GET /statistics/judges request.
func (h *Handler) GetJudgeWorkload(c *gin.Context) {
	roundID := c.Query("round_id")
	if roundID == "" {
		response.InvalidRequest(c, "round_id parameter is required")
		return
	}

	resp, err := h.service.GetJudgeWorkload(c.Request.Context(), roundID)
	if err != nil {
		response.FromError(c, h.logger, "GetJudgeWorkload", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

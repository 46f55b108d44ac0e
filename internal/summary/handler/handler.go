// Package handler provides HTTP handlers for summary endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/judging_rounds/internal/response"
	"github.com/festy23/judging_rounds/internal/summary/service"
)

// Handler handles HTTP requests for summary endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new summary handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetSummary handles GET /summary/get request.
func (h *Handler) GetSummary(c *gin.Context) {
	roundID := c.Query("round_id")
	if roundID == "" {
		response.InvalidRequest(c, "round_id parameter is required")
		return
	}

	resp, err := h.service.Summarize(c.Request.Context(), roundID)
	if err != nil {
		response.FromError(c, h.logger, "GetSummary", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

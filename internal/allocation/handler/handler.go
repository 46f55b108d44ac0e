// Package handler provides HTTP handlers for allocation endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/judging_rounds/internal/allocation/model"
	"github.com/festy23/judging_rounds/internal/allocation/service"
	"github.com/festy23/judging_rounds/internal/response"
)

// Handler handles HTTP requests for allocation endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new allocation handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// AutoAllocate handles POST /allocation/auto request.
func (h *Handler) AutoAllocate(c *gin.Context) {
	var req model.AutoAllocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.AutoAllocate(c.Request.Context(), req.RoundID)
	if err != nil {
		response.FromError(c, h.logger, "AutoAllocate", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListAllocations handles GET /allocation/list request.
func (h *Handler) ListAllocations(c *gin.Context) {
	roundID := c.Query("round_id")
	if roundID == "" {
		response.InvalidRequest(c, "round_id parameter is required")
		return
	}

	resp, err := h.service.ListAllocations(c.Request.Context(), roundID)
	if err != nil {
		response.FromError(c, h.logger, "ListAllocations", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

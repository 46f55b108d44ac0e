// Package handler provides HTTP handlers for participation endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/judging_rounds/internal/participation/model"
	"github.com/festy23/judging_rounds/internal/participation/service"
	"github.com/festy23/judging_rounds/internal/response"
)

// Handler handles HTTP requests for participation endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new participation handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// SetParticipation handles POST /participation/set request.
func (h *Handler) SetParticipation(c *gin.Context) {
	var req model.SetParticipationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	p, err := h.service.SetParticipation(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, h.logger, "SetParticipation", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"participation": p})
}

// ListParticipatingTeams handles GET /participation/teams request.
func (h *Handler) ListParticipatingTeams(c *gin.Context) {
	roundID := c.Query("round_id")
	if roundID == "" {
		response.InvalidRequest(c, "round_id parameter is required")
		return
	}

	resp, err := h.service.ListParticipatingTeams(c.Request.Context(), roundID)
	if err != nil {
		response.FromError(c, h.logger, "ListParticipatingTeams", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

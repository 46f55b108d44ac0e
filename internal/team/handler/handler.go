// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/judging_rounds/internal/response"
	teamModel "github.com/festy23/judging_rounds/internal/team/model"
	"github.com/festy23/judging_rounds/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// AddTeam handles POST /team/add request.
func (h *Handler) AddTeam(c *gin.Context) {
	var req teamModel.AddTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.AddTeam(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, h.logger, "AddTeam", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"team": resp})
}

// GetTeam handles GET /team/get request.
func (h *Handler) GetTeam(c *gin.Context) {
	teamID := c.Query("team_id")
	if teamID == "" {
		response.InvalidRequest(c, "team_id parameter is required")
		return
	}

	resp, err := h.service.GetTeam(c.Request.Context(), teamID)
	if err != nil {
		response.FromError(c, h.logger, "GetTeam", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListTeams handles GET /team/list request.
func (h *Handler) ListTeams(c *gin.Context) {
	resp, err := h.service.ListTeams(c.Request.Context())
	if err != nil {
		response.FromError(c, h.logger, "ListTeams", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

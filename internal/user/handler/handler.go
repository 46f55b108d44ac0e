// Package handler provides HTTP handlers for user endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/judging_rounds/internal/response"
	"github.com/festy23/judging_rounds/internal/user/model"
	"github.com/festy23/judging_rounds/internal/user/service"
)

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// AddUser handles POST /users/add request.
func (h *Handler) AddUser(c *gin.Context) {
	var req model.AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	user, err := h.service.AddUser(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, h.logger, "AddUser", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// ListJudges handles GET /users/judges request.
func (h *Handler) ListJudges(c *gin.Context) {
	resp, err := h.service.ListJudges(c.Request.Context())
	if err != nil {
		response.FromError(c, h.logger, "ListJudges", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAllocations handles GET /users/getAllocations request.
func (h *Handler) GetAllocations(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		response.InvalidRequest(c, "user_id parameter is required")
		return
	}

	resp, err := h.service.GetAllocations(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, h.logger, "GetAllocations", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

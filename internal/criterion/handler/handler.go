// Package handler provides HTTP handlers for criterion endpoints.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/judging_rounds/internal/criterion/model"
	"github.com/festy23/judging_rounds/internal/criterion/service"
	"github.com/festy23/judging_rounds/internal/response"
)

// Handler handles HTTP requests for criterion endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new criterion handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateCriterion handles POST /criterion/add request.
func (h *Handler) CreateCriterion(c *gin.Context) {
	var req model.CreateCriterionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	criterion, err := h.service.CreateCriterion(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, h.logger, "CreateCriterion", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"criterion": criterion})
}

// ListCriteria handles GET /criterion/list request.
func (h *Handler) ListCriteria(c *gin.Context) {
	resp, err := h.service.ListCriteria(c.Request.Context())
	if err != nil {
		response.FromError(c, h.logger, "ListCriteria", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SetRoundCriterion handles POST /criterion/setForRound request.
func (h *Handler) SetRoundCriterion(c *gin.Context) {
	var req model.SetRoundCriterionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	rc, err := h.service.SetRoundCriterion(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, h.logger, "SetRoundCriterion", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"round_criterion": rc})
}

// ListRoundCriteria handles GET /criterion/forRound request.
func (h *Handler) ListRoundCriteria(c *gin.Context) {
	roundID := c.Query("round_id")
	if roundID == "" {
		response.InvalidRequest(c, "round_id parameter is required")
		return
	}

	activeOnly := false
	if raw := c.Query("active_only"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response.InvalidRequest(c, "active_only must be a boolean")
			return
		}
		activeOnly = parsed
	}

	resp, err := h.service.ListRoundCriteria(c.Request.Context(), roundID, activeOnly)
	if err != nil {
		response.FromError(c, h.logger, "ListRoundCriteria", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

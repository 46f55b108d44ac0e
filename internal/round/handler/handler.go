// Package handler provides HTTP handlers for round endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/judging_rounds/internal/response"
	roundModel "github.com/festy23/judging_rounds/internal/round/model"
	"github.com/festy23/judging_rounds/internal/round/service"
)

// Handler handles HTTP requests for round endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new round handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateRound handles POST /round/create request.
func (h *Handler) CreateRound(c *gin.Context) {
	var req roundModel.CreateRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	round, err := h.service.CreateRound(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, h.logger, "CreateRound", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"round": round})
}

// GetRound handles GET /round/get request.
func (h *Handler) GetRound(c *gin.Context) {
	roundID := c.Query("round_id")
	if roundID == "" {
		response.InvalidRequest(c, "round_id parameter is required")
		return
	}

	round, err := h.service.GetRound(c.Request.Context(), roundID)
	if err != nil {
		response.FromError(c, h.logger, "GetRound", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"round": round})
}

// ListRounds handles GET /round/list request.
func (h *Handler) ListRounds(c *gin.Context) {
	resp, err := h.service.ListRounds(c.Request.Context())
	if err != nil {
		response.FromError(c, h.logger, "ListRounds", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SetStatus handles POST /round/setStatus request.
// An unknown status literal is a malformed request; other status
// conflicts are reported as 409.
func (h *Handler) SetStatus(c *gin.Context) {
	var req roundModel.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	round, err := h.service.SetRoundStatus(c.Request.Context(), req.RoundID, req.Status)
	if err != nil {
		if errors.Is(err, roundModel.ErrUnknownStatus) {
			response.Error(c, response.CodeInvalidStatus, err.Error(), http.StatusBadRequest)
			return
		}
		response.FromError(c, h.logger, "SetStatus", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"round": round})
}

// DeleteRound handles POST /round/delete request.
func (h *Handler) DeleteRound(c *gin.Context) {
	var req roundModel.DeleteRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, "invalid request body")
		return
	}

	if err := h.service.DeleteRound(c.Request.Context(), req.RoundID); err != nil {
		response.FromError(c, h.logger, "DeleteRound", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"round_id": req.RoundID, "deleted": true})
}

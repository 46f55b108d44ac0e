// Package response writes the JSON error envelope shared by all handlers.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/judging_rounds/internal/apperr"
)

// Error codes returned in the envelope.
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeNotFound            = "NOT_FOUND"
	CodeInvalidStatus       = "INVALID_STATUS"
	CodeConstraintViolation = "CONSTRAINT_VIOLATION"
	CodeStorageFailure      = "STORAGE_FAILURE"
	CodeInternal            = "INTERNAL_ERROR"
)

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine-readable code and a human-readable message.
type ErrorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}

// Error writes an error envelope with the given status code.
func Error(c *gin.Context, code, message string, statusCode int) {
	c.JSON(statusCode, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// NotFound writes a 404 envelope.
func NotFound(c *gin.Context, message string) {
	Error(c, CodeNotFound, message, http.StatusNotFound)
}

// InvalidRequest writes a 400 envelope.
func InvalidRequest(c *gin.Context, message string) {
	Error(c, CodeInvalidRequest, message, http.StatusBadRequest)
}

// FromError maps err to an envelope by its kind. Errors without a kind are
// logged and reported as internal errors without exposing their text.
func FromError(c *gin.Context, logger *zap.SugaredLogger, op string, err error) {
	kind := apperr.Kind(err)
	switch {
	case errors.Is(kind, apperr.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(kind, apperr.ErrInvalidArgument):
		InvalidRequest(c, err.Error())
	case errors.Is(kind, apperr.ErrInvalidStatus):
		Error(c, CodeInvalidStatus, err.Error(), http.StatusConflict)
	case errors.Is(kind, apperr.ErrConstraintViolation):
		logger.Warnw(op+" constraint violation", "error", err)
		Error(c, CodeConstraintViolation, apperr.Message(err), http.StatusConflict)
	case errors.Is(kind, apperr.ErrStorageFailure):
		logger.Errorw(op+" storage failure", "error", err)
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: ErrorBody{
			Code:      CodeStorageFailure,
			Message:   "storage unavailable, retry later",
			Retryable: true,
		}})
	default:
		logger.Errorw(op+" failed", "error", err)
		Error(c, CodeInternal, "internal server error", http.StatusInternalServerError)
	}
}

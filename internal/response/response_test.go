package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/judging_rounds/internal/apperr"
)

func serve(t *testing.T, err error) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		FromError(c, zap.NewNop().Sugar(), "Test", err)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
		retryable  bool
	}{
		{
			name:       "not found",
			err:        apperr.New(apperr.ErrNotFound, "round not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   CodeNotFound,
			wantMsg:    "round not found",
		},
		{
			name:       "invalid argument",
			err:        apperr.New(apperr.ErrInvalidArgument, "round_id is required"),
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeInvalidRequest,
			wantMsg:    "round_id is required",
		},
		{
			name:       "invalid status",
			err:        apperr.New(apperr.ErrInvalidStatus, "round is archived"),
			wantStatus: http.StatusConflict,
			wantCode:   CodeInvalidStatus,
			wantMsg:    "round is archived",
		},
		{
			name:       "constraint violation hides driver text",
			err:        apperr.Storage("insert", errors.New("UNIQUE constraint failed: rounds.round_id")),
			wantStatus: http.StatusConflict,
			wantCode:   CodeConstraintViolation,
			wantMsg:    "constraint violation",
		},
		{
			name:       "storage failure is retryable",
			err:        apperr.Storage("insert", errors.New("connection refused")),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   CodeStorageFailure,
			wantMsg:    "storage unavailable, retry later",
			retryable:  true,
		},
		{
			name:       "unclassified",
			err:        fmt.Errorf("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   CodeInternal,
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serve(t, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMsg, body.Error.Message)
			assert.Equal(t, tt.retryable, body.Error.Retryable)
		})
	}
}

func TestNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	NotFound(c, "team not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"team not found"}}`, w.Body.String())
}

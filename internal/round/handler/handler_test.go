package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/judging_rounds/internal/apperr"
	"github.com/festy23/judging_rounds/internal/response"
	roundModel "github.com/festy23/judging_rounds/internal/round/model"
	"github.com/festy23/judging_rounds/internal/round/service"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) CreateRound(ctx context.Context, req *roundModel.CreateRoundRequest) (*roundModel.Round, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roundModel.Round), args.Error(1)
}

func (m *mockService) GetRound(ctx context.Context, roundID string) (*roundModel.Round, error) {
	args := m.Called(ctx, roundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roundModel.Round), args.Error(1)
}

func (m *mockService) ListRounds(ctx context.Context) (*roundModel.ListRoundsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roundModel.ListRoundsResponse), args.Error(1)
}

func (m *mockService) SetRoundStatus(ctx context.Context, roundID, status string) (*roundModel.Round, error) {
	args := m.Called(ctx, roundID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roundModel.Round), args.Error(1)
}

func (m *mockService) DeleteRound(ctx context.Context, roundID string) error {
	args := m.Called(ctx, roundID)
	return args.Error(0)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(svc service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(svc, zap.NewNop().Sugar())
	r.POST("/round/create", h.CreateRound)
	r.GET("/round/get", h.GetRound)
	r.GET("/round/list", h.ListRounds)
	r.POST("/round/setStatus", h.SetStatus)
	r.POST("/round/delete", h.DeleteRound)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()
	var resp response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandler_CreateRound(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(mockSvc)
		req := &roundModel.CreateRoundRequest{RoundID: "r1", Name: "Heats"}
		mockSvc.On("CreateRound", mock.Anything, req).Return(&roundModel.Round{
			RoundID: "r1", Name: "Heats", Status: roundModel.StatusOpen, MaxJudgesPerTeam: 2, MaxTeamsPerJudge: 5,
		}, nil)

		w := doJSON(router, http.MethodPost, "/round/create", req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp map[string]roundModel.Round
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "r1", resp["round"].RoundID)
		assert.Equal(t, roundModel.StatusOpen, resp["round"].Status)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(mockSvc)

		w := doJSON(router, http.MethodPost, "/round/create", map[string]string{"name": "x"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.CodeInvalidRequest, decodeError(t, w).Error.Code)
		mockSvc.AssertNotCalled(t, "CreateRound", mock.Anything, mock.Anything)
	})

	t.Run("duplicate", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(mockSvc)
		mockSvc.On("CreateRound", mock.Anything, mock.Anything).Return(nil, roundModel.ErrRoundExists)

		w := doJSON(router, http.MethodPost, "/round/create", &roundModel.CreateRoundRequest{RoundID: "r1", Name: "x"})

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, response.CodeConstraintViolation, resp.Error.Code)
		assert.Equal(t, "round already exists", resp.Error.Message)
	})
}

func TestHandler_GetRound(t *testing.T) {
	t.Run("missing parameter", func(t *testing.T) {
		router := setupRouter(new(mockService))

		w := doJSON(router, http.MethodGet, "/round/get", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(mockSvc)
		mockSvc.On("GetRound", mock.Anything, "r9").Return(nil, roundModel.ErrRoundNotFound)

		w := doJSON(router, http.MethodGet, "/round/get?round_id=r9", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, response.CodeNotFound, decodeError(t, w).Error.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(mockSvc)
		mockSvc.On("GetRound", mock.Anything, "r1").
			Return(nil, apperr.Storage("get round", errors.New("connection refused")))

		w := doJSON(router, http.MethodGet, "/round/get?round_id=r1", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, response.CodeStorageFailure, resp.Error.Code)
		assert.True(t, resp.Error.Retryable)
	})
}

func TestHandler_ListRounds(t *testing.T) {
	mockSvc := new(mockService)
	router := setupRouter(mockSvc)
	mockSvc.On("ListRounds", mock.Anything).Return(&roundModel.ListRoundsResponse{
		Rounds: []roundModel.Round{{RoundID: "r1"}, {RoundID: "r2"}},
	}, nil)

	w := doJSON(router, http.MethodGet, "/round/list", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp roundModel.ListRoundsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Rounds, 2)
}

func TestHandler_SetStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(mockSvc)
		mockSvc.On("SetRoundStatus", mock.Anything, "r1", "closed").
			Return(&roundModel.Round{RoundID: "r1", Status: roundModel.StatusClosed}, nil)

		w := doJSON(router, http.MethodPost, "/round/setStatus", &roundModel.SetStatusRequest{RoundID: "r1", Status: "closed"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"closed"`)
	})

	t.Run("unknown status is a bad request", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(mockSvc)
		mockSvc.On("SetRoundStatus", mock.Anything, "r1", "paused").Return(nil, roundModel.ErrUnknownStatus)

		w := doJSON(router, http.MethodPost, "/round/setStatus", &roundModel.SetStatusRequest{RoundID: "r1", Status: "paused"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.CodeInvalidStatus, decodeError(t, w).Error.Code)
	})

	t.Run("round not found", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(mockSvc)
		mockSvc.On("SetRoundStatus", mock.Anything, "r9", "closed").Return(nil, roundModel.ErrRoundNotFound)

		w := doJSON(router, http.MethodPost, "/round/setStatus", &roundModel.SetStatusRequest{RoundID: "r9", Status: "closed"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		router := setupRouter(new(mockService))

		w := doJSON(router, http.MethodPost, "/round/setStatus", map[string]string{"round_id": "r1"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.CodeInvalidRequest, decodeError(t, w).Error.Code)
	})
}

func TestHandler_DeleteRound(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(mockSvc)
		mockSvc.On("DeleteRound", mock.Anything, "r1").Return(nil)

		w := doJSON(router, http.MethodPost, "/round/delete", &roundModel.DeleteRoundRequest{RoundID: "r1"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"round_id":"r1","deleted":true}`, w.Body.String())
	})

	t.Run("unexpected error", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(mockSvc)
		mockSvc.On("DeleteRound", mock.Anything, "r1").Return(errors.New("boom"))

		w := doJSON(router, http.MethodPost, "/round/delete", &roundModel.DeleteRoundRequest{RoundID: "r1"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, response.CodeInternal, decodeError(t, w).Error.Code)
	})
}

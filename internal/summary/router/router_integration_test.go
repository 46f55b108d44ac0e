package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festy23/judging_rounds/internal/testutil"
)

func TestIntegration_GetSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.NewSQLiteDB(t)
	r := gin.New()
	RegisterRoutes(r, db, testutil.Logger())
	testutil.SeedRound(t, db, "r1", 2, 3)
	testutil.SeedTeam(t, db, "T1")
	testutil.SeedTeam(t, db, "T2")
	testutil.SeedParticipation(t, db, "r1", "T1", true)
	testutil.SeedParticipation(t, db, "r1", "T2", true)
	testutil.SeedUser(t, db, "J1", "judge")
	testutil.SeedCriterion(t, db, "c1", 10)
	alloc := testutil.SeedAllocation(t, db, "r1", "T2", "J1")
	testutil.SeedScore(t, db, alloc, "c1", 5, 10)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/summary/get?round_id=r1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Teams []struct {
			TeamID       string   `json:"team_id"`
			AverageScore *float64 `json:"average_score"`
		} `json:"teams"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Teams, 2)
	assert.Equal(t, "T2", resp.Teams[0].TeamID)
	assert.Nil(t, resp.Teams[1].AverageScore)
	assert.Contains(t, w.Body.String(), `"average_score":null`)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/summary/get?round_id=nope", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

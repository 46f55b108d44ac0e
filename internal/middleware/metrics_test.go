package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/festy23/judging_rounds/internal/metrics"
)

func TestMetrics_LabelsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	r := gin.New()
	r.Use(Metrics(metrics.New(reg)))
	r.GET("/round/get", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, q := range []string{"r1", "r2", "r3"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/round/get?round_id="+q, nil))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	expected := `
# HELP http_requests_total Total number of HTTP requests by method, route and status.
# TYPE http_requests_total counter
http_requests_total{method="GET",route="/round/get",status="200"} 3
http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "http_requests_total"))
}

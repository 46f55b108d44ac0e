package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/festy23/judging_rounds/internal/metrics"
)

// Metrics returns a middleware that records request counts and latency.
// Requests are labelled by route template so ids in query strings do not
// create new series.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveHTTP(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

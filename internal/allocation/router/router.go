// Package router provides allocation module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/judging_rounds/internal/allocation/handler"
	"github.com/festy23/judging_rounds/internal/allocation/repository"
	"github.com/festy23/judging_rounds/internal/allocation/service"
	"github.com/festy23/judging_rounds/internal/metrics"
)

// RegisterRoutes registers allocation module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, m *metrics.Metrics, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, m, logger)
	h := handler.New(svc, logger)

	r.POST("/allocation/auto", h.AutoAllocate)
	r.GET("/allocation/list", h.ListAllocations)
}

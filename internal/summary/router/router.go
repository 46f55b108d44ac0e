// Package router provides summary module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/judging_rounds/internal/summary/handler"
	"github.com/festy23/judging_rounds/internal/summary/service"
)

// RegisterRoutes registers summary module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	svc := service.New(db, logger)
	h := handler.New(svc, logger)

	r.GET("/summary/get", h.GetSummary)
}

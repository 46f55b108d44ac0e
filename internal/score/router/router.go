// Package router provides score module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/judging_rounds/internal/score/handler"
	"github.com/festy23/judging_rounds/internal/score/repository"
	"github.com/festy23/judging_rounds/internal/score/service"
)

// RegisterRoutes registers score module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	r.POST("/score/record", h.RecordScore)
	r.GET("/score/list", h.ListScores)
}

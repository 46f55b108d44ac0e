// Package router provides participation module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/judging_rounds/internal/participation/handler"
	"github.com/festy23/judging_rounds/internal/participation/repository"
	"github.com/festy23/judging_rounds/internal/participation/service"
)

// RegisterRoutes registers participation module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	r.POST("/participation/set", h.SetParticipation)
	r.GET("/participation/teams", h.ListParticipatingTeams)
}

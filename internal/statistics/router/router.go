// Package router provides statistics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	roundRepository "github.com/festy23/judging_rounds/internal/round/repository"
	"github.com/festy23/judging_rounds/internal/statistics/handler"
	"github.com/festy23/judging_rounds/internal/statistics/repository"
	"github.com/festy23/judging_rounds/internal/statistics/service"
)

// RegisterRoutes registers statistics module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, roundRepository.New(db, logger), logger)
	h := handler.New(svc, logger)

	r.GET("/statistics/judges", h.GetJudgeWorkload)
}

// Package router provides criterion module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/judging_rounds/internal/criterion/handler"
	"github.com/festy23/judging_rounds/internal/criterion/repository"
	"github.com/festy23/judging_rounds/internal/criterion/service"
)

// RegisterRoutes registers criterion module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	r.POST("/criterion/add", h.CreateCriterion)
	r.GET("/criterion/list", h.ListCriteria)
	r.POST("/criterion/setForRound", h.SetRoundCriterion)
	r.GET("/criterion/forRound", h.ListRoundCriteria)
}

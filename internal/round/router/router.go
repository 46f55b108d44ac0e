// Package router provides round module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/judging_rounds/internal/config"
	"github.com/festy23/judging_rounds/internal/round/handler"
	"github.com/festy23/judging_rounds/internal/round/repository"
	"github.com/festy23/judging_rounds/internal/round/service"
)

// RegisterRoutes registers round module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, defaults config.RoundConfig, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, defaults, logger)
	h := handler.New(svc, logger)

	r.POST("/round/create", h.CreateRound)
	r.GET("/round/get", h.GetRound)
	r.GET("/round/list", h.ListRounds)
	r.POST("/round/setStatus", h.SetStatus)
	r.POST("/round/delete", h.DeleteRound)
}

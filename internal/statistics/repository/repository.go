// Package repository provides data access layer for statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/judging_rounds/internal/apperr"
	"github.com/festy23/judging_rounds/internal/statistics/model"
	userModel "github.com/festy23/judging_rounds/internal/user/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetJudgeWorkload returns allocation and score counts in a round for every judge.
	GetJudgeWorkload(ctx context.Context, roundID string) ([]model.JudgeWorkload, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetJudgeWorkload returns allocation and score counts in a round for every judge.
// Judges without allocations are listed with zero counts.
func (r *repository) GetJudgeWorkload(ctx context.Context, roundID string) ([]model.JudgeWorkload, error) {
	r.logger.Debugw("GetJudgeWorkload called", "round_id", roundID)

	var stats []model.JudgeWorkload

	err := r.db.WithContext(ctx).
		Table("users").
		Select(`
			users.user_id,
			users.username,
			COUNT(DISTINCT allocations.id) as allocation_count,
			COUNT(scores.id) as score_count
		`).
		Joins("LEFT JOIN allocations ON allocations.judge_id = users.user_id AND allocations.round_id = ?", roundID).
		Joins("LEFT JOIN scores ON scores.allocation_id = allocations.id").
		Where("users.role = ?", userModel.RoleJudge).
		Group("users.user_id, users.username").
		Order("allocation_count DESC, users.user_id ASC").
		Scan(&stats).Error

	if err != nil {
		r.logger.Errorw("GetJudgeWorkload database error", "round_id", roundID, "error", err)
		return nil, apperr.Storage("judge workload", err)
	}

	if stats == nil {
		stats = []model.JudgeWorkload{}
	}

	r.logger.Debugw("GetJudgeWorkload completed", "round_id", roundID, "count", len(stats))
	return stats, nil
}

// Package repository provides data access layer for score module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/judging_rounds/internal/apperr"
	"github.com/festy23/judging_rounds/internal/score/model"
)

// Repository defines the interface for score data access operations.
type Repository interface {
	// FindAllocationID returns the id of the allocation linking judge and team in a round.
	FindAllocationID(ctx context.Context, roundID, teamID, judgeID string) (int64, error)

	// Upsert writes a score, replacing any earlier value for the same allocation and criterion.
	Upsert(ctx context.Context, score *model.Score) error

	// ListByRound returns every score of a round ordered by team_id, judge_id, criterion_id.
	ListByRound(ctx context.Context, roundID string) ([]model.ScoreView, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new score repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// FindAllocationID returns the id of the allocation linking judge and team in a round.
func (r *repository) FindAllocationID(ctx context.Context, roundID, teamID, judgeID string) (int64, error) {
	var row struct{ ID int64 }
	err := r.db.WithContext(ctx).
		Table("allocations").
		Select("id").
		Where("round_id = ? AND team_id = ? AND judge_id = ?", roundID, teamID, judgeID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, model.ErrNotAllocated
		}
		r.logger.Errorw("FindAllocationID database error",
			"round_id", roundID,
			"team_id", teamID,
			"judge_id", judgeID,
			"error", err,
		)
		return 0, apperr.Storage("find allocation", err)
	}

	return row.ID, nil
}

// Upsert writes a score, replacing any earlier value for the same allocation and criterion.
func (r *repository) Upsert(ctx context.Context, score *model.Score) error {
	r.logger.Debugw("Upsert called",
		"allocation_id", score.AllocationID,
		"criterion_id", score.CriterionID,
		"value", score.Value,
	)

	now := time.Now()
	score.CreatedAt = now
	score.UpdatedAt = now

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "allocation_id"}, {Name: "criterion_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "max_value", "updated_at"}),
		}).
		Create(score).Error
	if err != nil {
		r.logger.Errorw("Upsert database error",
			"allocation_id", score.AllocationID,
			"criterion_id", score.CriterionID,
			"error", err,
		)
		return apperr.Storage("upsert score", err)
	}

	return nil
}

// ListByRound returns every score of a round ordered by team_id, judge_id, criterion_id.
func (r *repository) ListByRound(ctx context.Context, roundID string) ([]model.ScoreView, error) {
	r.logger.Debugw("ListByRound called", "round_id", roundID)

	var views []model.ScoreView
	err := r.db.WithContext(ctx).
		Table("scores s").
		Select(`a.team_id AS team_id,
			a.judge_id AS judge_id,
			s.criterion_id AS criterion_id,
			s.value AS value,
			s.max_value AS max_value`).
		Joins("JOIN allocations a ON a.id = s.allocation_id").
		Where("a.round_id = ?", roundID).
		Order("a.team_id ASC, a.judge_id ASC, s.criterion_id ASC").
		Scan(&views).Error
	if err != nil {
		r.logger.Errorw("ListByRound database error", "round_id", roundID, "error", err)
		return nil, apperr.Storage("list scores", err)
	}

	if views == nil {
		views = []model.ScoreView{}
	}
	return views, nil
}

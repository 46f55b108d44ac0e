// Package repository provides data access layer for allocation module.
package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/judging_rounds/internal/allocation/allocator"
	"github.com/festy23/judging_rounds/internal/allocation/model"
	"github.com/festy23/judging_rounds/internal/apperr"
	userModel "github.com/festy23/judging_rounds/internal/user/model"
)

const insertBatchSize = 200

// Repository defines the interface for allocation data access operations.
type Repository interface {
	// ListParticipatingTeamIDs returns ids of teams participating in a round ordered by team_id.
	ListParticipatingTeamIDs(ctx context.Context, roundID string) ([]string, error)

	// ListJudgeIDs returns ids of all users holding the judge role ordered by user_id.
	ListJudgeIDs(ctx context.Context) ([]string, error)

	// ReplaceAllocations deletes every allocation of a round and inserts pairs in their place.
	ReplaceAllocations(ctx context.Context, roundID string, pairs []allocator.Pair) (int, error)

	// ListByRound returns allocations of a round ordered by team_id, judge_id.
	ListByRound(ctx context.Context, roundID string) ([]model.Allocation, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new allocation repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// ListParticipatingTeamIDs returns ids of teams participating in a round ordered by team_id.
func (r *repository) ListParticipatingTeamIDs(ctx context.Context, roundID string) ([]string, error) {
	r.logger.Debugw("ListParticipatingTeamIDs called", "round_id", roundID)

	var ids []string
	err := r.db.WithContext(ctx).
		Table("participations").
		Where("round_id = ? AND is_participating = ?", roundID, true).
		Order("team_id ASC").
		Pluck("team_id", &ids).Error
	if err != nil {
		r.logger.Errorw("ListParticipatingTeamIDs database error", "round_id", roundID, "error", err)
		return nil, apperr.Storage("list participating teams", err)
	}

	return ids, nil
}

// ListJudgeIDs returns ids of all users holding the judge role ordered by user_id.
func (r *repository) ListJudgeIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Table("users").
		Where("role = ?", userModel.RoleJudge).
		Order("user_id ASC").
		Pluck("user_id", &ids).Error
	if err != nil {
		r.logger.Errorw("ListJudgeIDs database error", "error", err)
		return nil, apperr.Storage("list judges", err)
	}

	return ids, nil
}

// ReplaceAllocations deletes every allocation of a round and inserts pairs in their place.
// Scores of the deleted allocations are removed by cascade. The two steps share
// one transaction; inside an outer transaction they run under a savepoint.
func (r *repository) ReplaceAllocations(ctx context.Context, roundID string, pairs []allocator.Pair) (int, error) {
	r.logger.Debugw("ReplaceAllocations called", "round_id", roundID, "pairs", len(pairs))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deleted := tx.Where("round_id = ?", roundID).Delete(&model.Allocation{})
		if deleted.Error != nil {
			return deleted.Error
		}

		if len(pairs) == 0 {
			return nil
		}

		now := time.Now()
		rows := make([]model.Allocation, 0, len(pairs))
		for _, p := range pairs {
			rows = append(rows, model.Allocation{
				RoundID:   roundID,
				TeamID:    p.TeamID,
				JudgeID:   p.JudgeID,
				CreatedAt: now,
			})
		}

		return tx.CreateInBatches(rows, insertBatchSize).Error
	})
	if err != nil {
		r.logger.Errorw("ReplaceAllocations database error", "round_id", roundID, "error", err)
		return 0, apperr.Storage("replace allocations", err)
	}

	return len(pairs), nil
}

// ListByRound returns allocations of a round ordered by team_id, judge_id.
func (r *repository) ListByRound(ctx context.Context, roundID string) ([]model.Allocation, error) {
	var allocations []model.Allocation
	err := r.db.WithContext(ctx).
		Where("round_id = ?", roundID).
		Order("team_id ASC, judge_id ASC").
		Find(&allocations).Error
	if err != nil {
		r.logger.Errorw("ListByRound database error", "round_id", roundID, "error", err)
		return nil, apperr.Storage("list allocations", err)
	}

	if allocations == nil {
		allocations = []model.Allocation{}
	}
	return allocations, nil
}
